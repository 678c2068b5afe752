package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	id "cobalt/pkg/domain"
	"cobalt/pkg/requestcontext"
)

// Viewer is the authenticated account a request acts for.
type Viewer struct {
	AccountID     id.AccountID
	RoleID        id.RoleID
	InstitutionID id.InstitutionID
}

// TokenValidator turns a bearer token into a viewer.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Viewer, error)
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// Authenticate populates the viewer from a bearer token when one is present.
// Requests without an Authorization header continue anonymously; a header that does not
// hold a valid token is rejected.
func Authenticate(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - malformed authorization header",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			viewer, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithAccountID(ctx, viewer.AccountID)
			ctx = requestcontext.WithRoleID(ctx, viewer.RoleID)
			if !viewer.InstitutionID.IsNil() {
				ctx = requestcontext.WithInstitutionID(ctx, viewer.InstitutionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireViewer rejects anonymous requests. Mount it after Authenticate.
func RequireViewer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if requestcontext.AccountID(ctx).IsNil() {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
