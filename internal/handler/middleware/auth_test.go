//go:build unit

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	claims *jwt.Claims
	err    error
	seen   string
}

func (f *fakeValidator) Validate(_ context.Context, token string) (*jwt.Claims, error) {
	f.seen = token
	return f.claims, f.err
}

func setupRouter(validator *fakeValidator, recorder *audit.Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.NewAuthMiddleware(validator, recorder)

	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func perform(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token passes claims through", func(t *testing.T) {
		userID := uuid.New()
		validator := &fakeValidator{claims: &jwt.Claims{UserID: userID}}
		recorder := audit.NewRecorder()
		router := setupRouter(validator, recorder)

		rec := perform(router, "Bearer good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "good-token", validator.seen)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Empty(t, recorder.Events())
	})

	t.Run("missing header", func(t *testing.T) {
		validator := &fakeValidator{}
		recorder := audit.NewRecorder()
		router := setupRouter(validator, recorder)

		rec := perform(router, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), middleware.InvalidTokenMessage)

		events := recorder.Events()
		require.Len(t, events, 1)
		assert.Equal(t, audit.CategoryAuth, events[0].Category)
		assert.Equal(t, "Authenticate", events[0].Operation)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		validator := &fakeValidator{}
		router := setupRouter(validator, audit.NewRecorder())

		rec := perform(router, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, validator.seen)
	})

	t.Run("rejected token", func(t *testing.T) {
		validator := &fakeValidator{err: errs.ErrInvalidToken}
		recorder := audit.NewRecorder()
		router := setupRouter(validator, recorder)

		rec := perform(router, "Bearer revoked")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), middleware.InvalidTokenMessage)
		require.Len(t, recorder.Events(), 1)
	})
}
