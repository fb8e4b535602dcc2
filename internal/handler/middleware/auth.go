package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/pkg/jwt"
	"coworking-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey = "user_id"
	ctxClaimsKey = "jwt_claims"
	ctxTokenKey  = "bearer_token"
)

// InvalidTokenMessage is the canonical auth rejection body, shared with the
// token_invalid endpoint.
const InvalidTokenMessage = "Invalid or expired token"

type AuthMiddleware struct {
	tokenValidator commands.TokenValidator
	sink           audit.Sink
}

func NewAuthMiddleware(tokenValidator commands.TokenValidator, sink audit.Sink) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		sink:           sink,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			m.reject(c, "missing bearer token")
			return
		}

		claims, err := m.tokenValidator.Validate(c.Request.Context(), token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			m.reject(c, err.Error())
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxClaimsKey, claims)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, reason string) {
	body := response.Error(InvalidTokenMessage)
	payload, _ := json.Marshal(gin.H{"response": body, "reason": reason})
	m.sink.Record(c.Request.Context(), audit.CategoryAuth, "Authenticate", string(payload))

	c.JSON(http.StatusUnauthorized, body)
	c.Abort()
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
