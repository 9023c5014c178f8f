package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"petitionpay/internal/admin"
	"petitionpay/internal/platform/middleware"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/platform/httputil"
)

// LoginService exchanges an admin code for a signed token.
type LoginService interface {
	Login(ctx context.Context, code string) (*admin.LoginResult, error)
}

// TokenRevoker invalidates a token id for the remainder of its lifetime.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthHandler serves login, token verification, and logout.
type AuthHandler struct {
	login       LoginService
	revocations TokenRevoker
	logger      *slog.Logger
}

// NewAuthHandler constructs the auth handler. revocations may be nil, which
// turns logout into a client-side-only operation.
func NewAuthHandler(login LoginService, revocations TokenRevoker, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		login:       login,
		revocations: revocations,
		logger:      logger,
	}
}

// Register mounts the unauthenticated auth routes.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

// RegisterProtected mounts the routes that require a verified bearer token.
func (h *AuthHandler) RegisterProtected(r chi.Router) {
	r.Get("/verify", h.handleVerify)
	r.Post("/verify", h.handleVerify)
	r.Post("/logout", h.handleLogout)
}

type loginRequest struct {
	AdminCode string `json:"adminCode"`
}

type loginResponse struct {
	Token     string `json:"token"`
	AdminName string `json:"adminName"`
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[loginRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	res, err := h.login.Login(ctx, req.AdminCode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		AdminName: res.AdminName,
	})
}

type verifyResponse struct {
	Valid bool       `json:"valid"`
	User  verifyUser `json:"user"`
}

type verifyUser struct {
	AdminName string `json:"adminName"`
}

// handleVerify only runs after RequireAuth has accepted the token, so the
// body is a plain confirmation of the identity already in the context.
func (h *AuthHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())
	if actor == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no token provided or token format is incorrect"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, verifyResponse{
		Valid: true,
		User:  verifyUser{AdminName: actor.Name},
	})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	claims := middleware.GetBearerClaims(ctx)
	if claims == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no token provided or token format is incorrect"))
		return
	}

	if h.revocations != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := h.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
				h.logger.ErrorContext(ctx, "failed to revoke token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "logout failed"))
				return
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
