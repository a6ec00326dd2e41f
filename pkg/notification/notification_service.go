package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/internal/utils/mailing"
	"Fridgify-Backend/pkg/product"
	"Fridgify-Backend/pkg/user"

	"github.com/google/uuid"
)

// Products expiring within this window are reported, same threshold the
// chat bot uses when it underlines items.
const expiryWarningWindow = 3 * 24 * time.Hour

type (
	NotificationService interface {
		NotifyExpiringProducts(ctx context.Context, userID string) (domain.NotifyExpiringResponse, error)
	}

	notificationService struct {
		productRepository product.ProductRepository
		userRepository    user.UserRepository
		sendMail          func(toEmail, subject, body string) error
	}
)

func NewNotificationService(productRepository product.ProductRepository, userRepository user.UserRepository) NotificationService {
	return &notificationService{
		productRepository: productRepository,
		userRepository:    userRepository,
		sendMail:          mailing.SendMail,
	}
}

func (s *notificationService) NotifyExpiringProducts(ctx context.Context, userID string) (domain.NotifyExpiringResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.NotifyExpiringResponse{}, domain.ErrParseUUID
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.NotifyExpiringResponse{}, err
	}
	if owner == nil {
		return domain.NotifyExpiringResponse{}, domain.ErrUserNotFound
	}

	threshold := time.Now().Add(expiryWarningWindow)
	products, err := s.productRepository.GetExpiringByUser(ctx, userID, threshold)
	if err != nil {
		return domain.NotifyExpiringResponse{}, err
	}
	if len(products) == 0 {
		return domain.NotifyExpiringResponse{Count: 0}, nil
	}

	var body strings.Builder
	body.WriteString("<p>Products expiring within 3 days:</p><ul>")
	for _, p := range products {
		fmt.Fprintf(&body, "<li>%s — %s</li>", p.Name, p.ExpiryDate.Format("02-01-2006"))
	}
	body.WriteString("</ul>")

	if err := s.sendMail(owner.Email, "Products expiring soon", body.String()); err != nil {
		return domain.NotifyExpiringResponse{}, err
	}

	return domain.NotifyExpiringResponse{Count: len(products)}, nil
}
