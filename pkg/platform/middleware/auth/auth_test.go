package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "studyhub/pkg/domain"
	"studyhub/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func serve(v JWTValidator, header string) (*httptest.ResponseRecorder, id.UserID) {
	var seen id.UserID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	RequireAuth(v, logger)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireAuth(t *testing.T) {
	userID := id.UserID(uuid.New())

	t.Run("valid token sets user id", func(t *testing.T) {
		rec, seen := serve(stubValidator{claims: &JWTClaims{UserID: userID}}, "Bearer good")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, seen)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := serve(stubValidator{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`, rec.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec, _ := serve(stubValidator{}, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, _ := serve(stubValidator{err: errors.New("bad signature")}, "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		rec, _ := serve(stubValidator{claims: &JWTClaims{}}, "Bearer empty")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
