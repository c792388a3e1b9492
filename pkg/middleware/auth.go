package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"

	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/httpapi"
)

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authorize validates the bearer token and attaches the authenticated user
// to the request context. Token issuance is handled by the auth service, not
// here.
func Authorize() mux.MiddlewareFunc {
	conf := configuration.Use()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "Authentication required", nil)
				return
			}

			claims := &tokenClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(conf.JWTSecret), nil
			})
			if err != nil || !parsed.Valid || claims.Email == "" {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "Invalid token", nil)
				return
			}

			ctx := composables.WithUser(r.Context(), composables.User{
				Email: strings.ToLower(claims.Email),
				Role:  claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose authenticated user is not an
// administrator. Must run after Authorize.
func RequireAdmin() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := composables.UseUser(r.Context())
			if err != nil {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "Authentication required", nil)
				return
			}
			if !user.IsAdmin() {
				_ = httpapi.WriteError(w, http.StatusForbidden, "Admin access required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
