package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/middleware"
)

var secret = []byte("test-secret")

func sign(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func protected(t *testing.T, roles ...string) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := middleware.GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		w.Header().Set("X-User", id)
		w.WriteHeader(http.StatusNoContent)
	})
	return middleware.Authenticate(secret)(middleware.Authorize(roles...)(ok))
}

func call(h http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	valid := jwt.MapClaims{"user_id": 42, "role": "organizer", "exp": time.Now().Add(time.Hour).Unix()}

	rec := call(protected(t, middleware.RoleOrganizer), "Bearer "+sign(t, valid, secret))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("X-User"))

	tests := map[string]struct {
		auth string
		code int
	}{
		"missing header": {"", http.StatusUnauthorized},
		"wrong scheme":   {"Basic abc", http.StatusUnauthorized},
		"bad signature":  {"Bearer " + sign(t, valid, []byte("other")), http.StatusUnauthorized},
		"expired": {"Bearer " + sign(t, jwt.MapClaims{
			"user_id": 1, "role": "organizer", "exp": time.Now().Add(-time.Hour).Unix(),
		}, secret), http.StatusUnauthorized},
		"wrong role": {"Bearer " + sign(t, jwt.MapClaims{
			"user_id": "u1", "role": "player", "exp": time.Now().Add(time.Hour).Unix(),
		}, secret), http.StatusForbidden},
		"no role": {"Bearer " + sign(t, jwt.MapClaims{
			"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix(),
		}, secret), http.StatusUnauthorized},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := call(protected(t, middleware.RoleOrganizer), tt.auth)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
