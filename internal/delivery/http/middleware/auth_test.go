package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	userID string
	err    error
	token  string
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	f.token = token
	return f.userID, f.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newHandler := func(verifier *fakeVerifier) (http.HandlerFunc, *string) {
		var gotUserID string
		next := func(w http.ResponseWriter, r *http.Request) {
			id, _ := UserIDFromContext(r.Context())
			gotUserID = id
			w.WriteHeader(http.StatusOK)
		}
		return RequireAuth(verifier, logger)(next), &gotUserID
	}

	t.Run("valid token sets user in context", func(t *testing.T) {
		verifier := &fakeVerifier{userID: "u-1"}
		handler, gotUserID := newHandler(verifier)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "tok-123", verifier.token)
		assert.Equal(t, "u-1", *gotUserID)
	})

	t.Run("missing header is a 401", func(t *testing.T) {
		handler, gotUserID := newHandler(&fakeVerifier{userID: "u-1"})
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, *gotUserID)
	})

	t.Run("non-bearer scheme is a 401", func(t *testing.T) {
		handler, _ := newHandler(&fakeVerifier{userID: "u-1"})
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("empty bearer token is a 401", func(t *testing.T) {
		verifier := &fakeVerifier{userID: "u-1"}
		handler, _ := newHandler(verifier)
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer ")
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, verifier.token)
	})

	t.Run("rejected token is a 401", func(t *testing.T) {
		handler, gotUserID := newHandler(&fakeVerifier{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer tok-old")
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, *gotUserID)
	})
}
