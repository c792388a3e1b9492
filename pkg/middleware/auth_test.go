package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/configuration"
)

func signToken(t *testing.T, email, role string) string {
	t.Helper()
	claims := &tokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configuration.Use().JWTSecret))
	require.NoError(t, err)
	return token
}

func TestAuthorize_ValidTokenAttachesUser(t *testing.T) {
	var gotUser composables.User
	handler := Authorize()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := composables.UseUser(r.Context())
		require.NoError(t, err)
		gotUser = user
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "Foo@Bar.COM", "attendee"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "foo@bar.com", gotUser.Email)
	require.False(t, gotUser.IsAdmin())
}

func TestAuthorize_MissingToken(t *testing.T) {
	handler := Authorize()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_RejectsAttendee(t *testing.T) {
	handler := Authorize()(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for non-admin")
	})))

	req := httptest.NewRequest(http.MethodPost, "/admin/uploadSessions", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user@example.com", "attendee"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	handler := Authorize()(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodPost, "/admin/uploadSessions", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin@example.com", "admin"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
}
