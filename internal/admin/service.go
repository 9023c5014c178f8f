package admin

import (
	"context"
	"errors"
	"log/slog"

	"petitionpay/internal/platform/metrics"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/platform/sentinel"
)

// TokenIssuer mints a signed credential for an authenticated admin.
type TokenIssuer interface {
	Issue(adminName, adminCode string) (string, error)
}

// LoginResult carries the signed credential back to the dashboard.
type LoginResult struct {
	Token     string
	AdminName string
}

// Service authenticates admins against the roster and mints tokens.
type Service struct {
	store   Store
	issuer  TokenIssuer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, issuer TokenIssuer, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		issuer:  issuer,
		logger:  logger,
		metrics: m,
	}
}

// Login exchanges an admin code for a signed token. The code is the only
// credential; an unknown code is unauthorized, not "not found", so the
// response does not reveal whether a roster entry exists.
func (s *Service) Login(ctx context.Context, code string) (*LoginResult, error) {
	if code == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "admin code is required")
	}

	a, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementAuthFailures()
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid admin code")
		}
		s.logger.ErrorContext(ctx, "admin lookup failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "login failed")
	}

	tok, err := s.issuer.Issue(a.Name, a.Code)
	if err != nil {
		s.logger.ErrorContext(ctx, "token signing failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "login failed")
	}

	s.metrics.IncrementLogins()
	s.logger.InfoContext(ctx, "admin logged in", "admin", a.Name)

	return &LoginResult{Token: tok, AdminName: a.Name}, nil
}
