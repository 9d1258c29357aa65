package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

type stubClaims struct{ userID uuid.UUID }

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

func protected(t *testing.T, validator TokenValidator) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		seen = userID
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	handler, seen := protected(t, &stubValidator{userID: userID})

	req := httptest.NewRequest("GET", "/profiles", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, _ := protected(t, &stubValidator{userID: uuid.New()})

	req := httptest.NewRequest("GET", "/profiles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler, _ := protected(t, &stubValidator{userID: uuid.New()})

	for _, header := range []string{"sometoken", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/profiles", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler, _ := protected(t, &stubValidator{userID: uuid.New()})

	req := httptest.NewRequest("GET", "/profiles", nil)
	req.Header.Set("Authorization", "bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler, _ := protected(t, &stubValidator{err: errors.New("expired")})

	req := httptest.NewRequest("GET", "/profiles", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/profiles", nil)

	_, err := GetUserID(req)

	assert.Error(t, err)
}
