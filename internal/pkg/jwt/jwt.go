package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// Service issues and validates the API's bearer tokens. A token stays
// refreshable after expiry until refreshWindow has passed since it was
// issued.
type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	refreshWindow time.Duration
}

func NewService(secretKey string, tokenDuration, refreshWindow time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		refreshWindow: refreshWindow,
	}
}

// RefreshWindow is how long after issuance a token stays refreshable.
// Revocations must last at least this long to stick.
func (s *Service) RefreshWindow() time.Duration {
	return s.refreshWindow
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti feeds the logout denylist
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString, true)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseForRefresh accepts tokens that expired, as long as the issue time is
// still inside the refresh window. The signature is always verified.
func (s *Service) ParseForRefresh(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString, false)
	if err != nil {
		return nil, err
	}
	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > s.refreshWindow {
		return nil, ErrExpiredToken
	}
	return claims, nil
}

func (s *Service) parse(tokenString string, checkExpiry bool) (*Claims, error) {
	opts := []jwt.ParserOption{}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
