package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"petitionpay/internal/token"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/platform/httputil"
)

// TokenVerifier validates a bearer credential and yields the actor it identifies.
// Verification is a pure function of the credential at request time.
type TokenVerifier interface {
	VerifyClaims(tokenString string) (*token.Claims, error)
}

// RevocationChecker reports whether a token id has been revoked.
// A nil checker disables the check.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type actorKey struct{}
type bearerKey struct{}

// GetActor retrieves the authenticated actor from the context.
func GetActor(ctx context.Context) *token.Actor {
	if actor, ok := ctx.Value(actorKey{}).(*token.Actor); ok {
		return actor
	}
	return nil
}

// GetBearerClaims retrieves the verified token claims from the context.
func GetBearerClaims(ctx context.Context) *token.Claims {
	if claims, ok := ctx.Value(bearerKey{}).(*token.Claims); ok {
		return claims
	}
	return nil
}

// RequireAuth is the single verifier used by every authenticated endpoint.
// It rejects absent or malformed credentials with 401 and expired ones with
// 403, then stores the actor identity in the request context.
func RequireAuth(verifier TokenVerifier, revocations RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			raw, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || raw == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no token provided or token format is incorrect"))
				return
			}

			claims, err := verifier.VerifyClaims(raw)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - token rejected",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, err)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						"error", err,
						"request_id", requestID,
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to validate token"))
					return
				}
				if revoked {
					logger.WarnContext(ctx, "unauthorized access - token revoked",
						"jti", claims.ID,
						"request_id", requestID,
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "token has been revoked"))
					return
				}
			}

			actor := &token.Actor{Name: claims.AdminName, Code: claims.AdminCode}
			ctx = context.WithValue(ctx, actorKey{}, actor)
			ctx = context.WithValue(ctx, bearerKey{}, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
