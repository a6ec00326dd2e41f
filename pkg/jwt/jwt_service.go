package jwt

import (
	"errors"
	"fmt"
	"time"

	"Fridgify-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

const (
	AccessTokenLifetime  = time.Minute * 60
	RefreshTokenLifetime = time.Hour * 24 * 7
)

type (
	JWTService interface {
		GenerateAccessToken(userID string, login string) (string, error)
		GenerateRefreshToken(userID string, login string) (string, error)
		ValidateAccessToken(token string) (*jwt.Token, error)
		ValidateRefreshToken(token string) (*jwt.Token, error)
		GetUserByAccessToken(token string) (string, string, error)
		GetUserByRefreshToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Login  string `json:"login"`
		jwt.RegisteredClaims
	}

	// Access and refresh tokens are signed with distinct secrets so a
	// compromised access key cannot mint refresh tokens, and vice versa.
	jwtService struct {
		accessSecret  string
		refreshSecret string
		issuer        string
	}
)

func NewJWTService(accessSecret, refreshSecret string) JWTService {
	return &jwtService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		issuer:        "FRIDGIFY",
	}
}

func (j *jwtService) generate(userID, login, secret string, lifetime time.Duration) (string, error) {
	claims := jwtUserClaim{
		userID,
		login,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (j *jwtService) GenerateAccessToken(userID string, login string) (string, error) {
	return j.generate(userID, login, j.accessSecret, AccessTokenLifetime)
}

func (j *jwtService) GenerateRefreshToken(userID string, login string) (string, error) {
	return j.generate(userID, login, j.refreshSecret, RefreshTokenLifetime)
}

func (j *jwtService) keyFunc(secret string) jwt.Keyfunc {
	return func(t_ *jwt.Token) (any, error) {
		if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
		}
		return []byte(secret), nil
	}
}

func (j *jwtService) ValidateAccessToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.keyFunc(j.accessSecret))
}

func (j *jwtService) ValidateRefreshToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.keyFunc(j.refreshSecret))
}

func userFromToken(t_Token *jwt.Token, err error) (string, string, error) {
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.UserID, claims.Login, nil
}

func (j *jwtService) GetUserByAccessToken(token string) (string, string, error) {
	return userFromToken(j.ValidateAccessToken(token))
}

func (j *jwtService) GetUserByRefreshToken(token string) (string, string, error) {
	return userFromToken(j.ValidateRefreshToken(token))
}
