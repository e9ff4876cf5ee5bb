// Package jwt issues and validates the HMAC-signed access/refresh token
// pair used by the API. Access and refresh tokens are signed with
// separate secrets so a leaked refresh secret cannot mint access tokens.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"typ"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

type HMACService struct {
	accessSecret  []byte
	refreshSecret []byte

	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *HMACService {
	return &HMACService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	if len(s.accessSecret) == 0 || s.accessTTL <= 0 {
		return "", ErrTokenInvalid
	}
	return s.sign(TokenTypeAccess, userID, email, s.accessSecret, s.accessTTL)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	if len(s.refreshSecret) == 0 || s.refreshTTL <= 0 {
		return "", ErrTokenInvalid
	}
	return s.sign(TokenTypeRefresh, userID, "", s.refreshSecret, s.refreshTTL)
}

// ValidateToken accepts tokens of either type: the type is not known
// until the claims are read, so both secrets are tried in turn.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	claims, accessErr := s.parse(tokenString, s.accessSecret)
	if accessErr == nil {
		return claims, nil
	}

	claims, refreshErr := s.parse(tokenString, s.refreshSecret)
	if refreshErr == nil {
		return claims, nil
	}

	if errors.Is(accessErr, ErrTokenExpired) || errors.Is(refreshErr, ErrTokenExpired) {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) sign(tokenType string, userID uuid.UUID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := s.now().UTC()

	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(secret)
}

func (s *HMACService) parse(tokenString string, secret []byte) (Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)

	var c Claims
	tok, err := parser.ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.TokenType != TokenTypeAccess && c.TokenType != TokenTypeRefresh {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
