package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Fridgify-Backend/domain"
	"Fridgify-Backend/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

type stubUserService struct {
	refreshErr error
}

func (s *stubUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	return domain.RegisterResponse{}, nil
}

func (s *stubUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, string, error) {
	return domain.LoginResponse{}, "", nil
}

func (s *stubUserService) Refresh(ctx context.Context, refreshToken string) (domain.RefreshResponse, error) {
	return domain.RefreshResponse{}, s.refreshErr
}

func refreshStatus(t *testing.T, refreshErr error, withCookie bool) int {
	t.Helper()
	app := fiber.New()
	h := handlers.NewUserHandler(&stubUserService{refreshErr: refreshErr}, nil)
	app.Post("/refresh", h.Refresh)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "some-token"})
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	return res.StatusCode
}

func TestRefreshStatusCodes(t *testing.T) {
	if got := refreshStatus(t, nil, true); got != fiber.StatusOK {
		t.Fatalf("valid refresh: want 200, got %d", got)
	}
	if got := refreshStatus(t, nil, false); got != fiber.StatusUnauthorized {
		t.Fatalf("missing cookie: want 401, got %d", got)
	}
	if got := refreshStatus(t, domain.ErrTokenInvalid, true); got != fiber.StatusUnauthorized {
		t.Fatalf("invalid token: want 401, got %d", got)
	}
	if got := refreshStatus(t, domain.ErrTokenExpired, true); got != fiber.StatusUnauthorized {
		t.Fatalf("expired token: want 401, got %d", got)
	}
	// A signing or infrastructure failure is not the caller's fault.
	if got := refreshStatus(t, errors.New("sign: key unavailable"), true); got != fiber.StatusInternalServerError {
		t.Fatalf("unexpected error: want 500, got %d", got)
	}
}
