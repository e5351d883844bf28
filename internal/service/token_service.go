package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/traitlab/darkmirror/config"
	"github.com/traitlab/darkmirror/internal/apperr"
)

// Claims is the session token payload: user id, admin flag, and the
// registered expiry. Tokens are stateless; expiry is the only revocation.
type Claims struct {
	UserID  uint `json:"uid"`
	IsAdmin bool `json:"admin"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Sign(userID uint, isAdmin bool) (token string, expiresIn int64, err error)
	Parse(token string) (*Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *tokenService) Sign(userID uint, isAdmin bool) (string, int64, error) {
	now := s.now()
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.ttl.Seconds()), nil
}

func (s *tokenService) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperr.Unauthorized("invalid or expired session token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperr.Unauthorized("invalid session token")
	}
	return claims, nil
}
