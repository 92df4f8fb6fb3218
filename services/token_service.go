package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"postable/config"
	"postable/models"
)

const tokenTTL = time.Hour

// Claims is the token payload: the caller's identity and role, nothing
// else.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(userID string, role models.UserRole) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type tokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(userID string, role models.UserRole) (string, error) {
	now := time.Now()

	claims := &Claims{
		ID:   userID,
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.AuthenticationError(models.CodeTokenExpired, "token expired")
		}
		return nil, models.AuthenticationError(models.CodeTokenInvalid, "invalid token")
	}

	if !token.Valid {
		return nil, models.AuthenticationError(models.CodeTokenInvalid, "invalid token")
	}

	return claims, nil
}
