package services

import (
	"errors"
	"time"

	"campaign-prediction-api/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements the single-credential access model: whoever holds
// the configured service key can exchange it for a short-lived token that
// grants full read/write access. There are no per-user identities.
type AuthService struct {
	serviceKeyHash []byte
	jwtSecret      []byte
	expiryH        int
}

func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.ServiceKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		serviceKeyHash: hash,
		jwtSecret:      []byte(cfg.JWTSecret),
		expiryH:        cfg.ExpiryHours,
	}, nil
}

func (s *AuthService) VerifyServiceKey(key string) bool {
	return bcrypt.CompareHashAndPassword(s.serviceKeyHash, []byte(key)) == nil
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) GenerateToken() (string, error) {
	claims := Claims{
		Role: "service",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(
				time.Duration(s.expiryH) * time.Hour,
			)),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != "service" {
		return nil, errors.New("unexpected role claim")
	}
	return claims, nil
}
