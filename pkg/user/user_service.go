package user

import (
	"context"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/entities"
	"Fridgify-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, string, error)
		Refresh(ctx context.Context, refreshToken string) (domain.RefreshResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	existing, err := s.userRepository.FindUserByLoginOrEmail(ctx, req.Login, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if existing != nil {
		if existing.Login == req.Login {
			return domain.RegisterResponse{}, domain.ErrLoginTaken
		}
		return domain.RegisterResponse{}, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Login:    req.Login,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		Login: user.Login,
		Email: user.Email,
	}, nil
}

// Login returns the response body and the refresh token separately.
// The refresh token travels only in an HTTP-only cookie, never in JSON.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, string, error) {
	user, err := s.userRepository.GetUserByLogin(ctx, req.Login)
	if err != nil {
		return domain.LoginResponse{}, "", err
	}
	// Unknown login and wrong password answer identically.
	if user == nil {
		return domain.LoginResponse{}, "", domain.ErrCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return domain.LoginResponse{}, "", domain.ErrCredentialsInvalid
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID.String(), user.Login)
	if err != nil {
		return domain.LoginResponse{}, "", err
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID.String(), user.Login)
	if err != nil {
		return domain.LoginResponse{}, "", err
	}

	return domain.LoginResponse{
		Access:    accessToken,
		ExpiresIn: int(jwt.AccessTokenLifetime.Seconds()),
		UserID:    user.ID.String(),
	}, refreshToken, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (domain.RefreshResponse, error) {
	userID, login, err := s.jwtService.GetUserByRefreshToken(refreshToken)
	if err != nil {
		return domain.RefreshResponse{}, err
	}

	accessToken, err := s.jwtService.GenerateAccessToken(userID, login)
	if err != nil {
		return domain.RefreshResponse{}, err
	}

	return domain.RefreshResponse{
		Access:    accessToken,
		ExpiresIn: int(jwt.AccessTokenLifetime.Seconds()),
	}, nil
}
