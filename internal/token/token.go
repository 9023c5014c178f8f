package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "petitionpay/pkg/domain-errors"
)

// Actor is the authenticated admin identity performing an operation.
// It is derived per-request from the bearer credential and never persisted.
type Actor struct {
	Name string
	Code string
}

// Claims represents the JWT claims for admin access tokens.
type Claims struct {
	AdminName string `json:"adminName"`
	AdminCode string `json:"adminCode"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

func NewService(signingKey string, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue signs a token for the given admin, expiring after the configured TTL.
func (s *Service) Issue(adminName, adminCode string) (string, error) {
	now := time.Now()
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminName: adminName,
		AdminCode: adminCode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})

	signedToken, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// Verify validates a token string and returns the actor it identifies.
// Expired credentials are reported distinctly from malformed or forged ones
// so callers can branch on "log in again" vs "fix the header".
func (s *Service) Verify(tokenString string) (*Actor, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return &Actor{Name: claims.AdminName, Code: claims.AdminCode}, nil
}

// VerifyClaims is Verify but keeps the raw claims, for callers that need the
// token id (revocation) or expiry.
func (s *Service) VerifyClaims(tokenString string) (*Claims, error) {
	return s.parse(tokenString)
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeTokenExpired, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return claims, nil
}
