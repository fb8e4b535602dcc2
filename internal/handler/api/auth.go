package api

import (
	"errors"
	"net/http"

	"coworking-booking/internal/audit"
	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/rules"
	"coworking-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	sink         audit.Sink
}

func NewAuthHandler(authCommands commands.AuthCommands, sink audit.Sink) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		sink:         sink,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthSuccess
// @Failure 401 {object} resdto.Message
// @Failure 422 {object} resdto.FieldFailure
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = reqdto.LoginRequest{}
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		h.rejectAuth(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, resdto.Authorised("", result.User, result.Token))
}

// @Summary Register account
// @Description Create an account and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 200 {object} resdto.AuthSuccess
// @Failure 422 {object} resdto.FieldFailure
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = reqdto.RegisterRequest{}
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		h.rejectAuth(c, "Register", err)
		return
	}

	c.JSON(http.StatusOK, resdto.Authorised("User created successfully", result.User, result.Token))
}

// @Summary Logout
// @Description Revoke the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Message
// @Failure 401 {object} resdto.Message
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		h.rejectAuth(c, "Logout", errs.ErrInvalidToken)
		return
	}

	if err := h.authCommands.Logout(c.Request.Context(), claims); err != nil {
		h.rejectAuth(c, "Logout", err)
		return
	}

	c.JSON(http.StatusOK, resdto.Success("Successfully logged out"))
}

// @Summary Refresh token
// @Description Revoke the presented token and issue a fresh one
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AuthSuccess
// @Failure 401 {object} resdto.Message
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	// Expired tokens stay refreshable inside the refresh window, so this
	// endpoint reads the bearer token itself instead of using RequireAuth.
	token := middleware.BearerToken(c)
	if token == "" {
		h.rejectAuth(c, "Refresh", errs.ErrInvalidToken)
		return
	}

	result, err := h.authCommands.Refresh(c.Request.Context(), token)
	if err != nil {
		h.rejectAuth(c, "Refresh", err)
		return
	}

	c.JSON(http.StatusOK, resdto.Authorised("", result.User, result.Token))
}

// @Summary Invalid token
// @Description Canonical rejection body for invalid or expired tokens
// @Tags auth
// @Produce json
// @Failure 401 {object} resdto.Message
// @Router /token_invalid [get]
func (h *AuthHandler) TokenInvalid(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, resdto.Error(middleware.InvalidTokenMessage))
}

func (h *AuthHandler) rejectAuth(c *gin.Context, operation string, err error) {
	var vErr *rules.ValidationError
	var body any
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &vErr):
		status = http.StatusUnprocessableEntity
		body = resdto.Invalid(invalidDataMessage, vErr.Fields)
	case errs.Is(err, errs.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body = resdto.Error("Invalid email or password")
	case errs.Is(err, errs.ErrInvalidToken):
		status = http.StatusUnauthorized
		body = resdto.Error(middleware.InvalidTokenMessage)
	default:
		body = resdto.Error("Internal server error")
	}

	recordRejection(c, h.sink, audit.CategoryAuth, operation, body)
	httperr.AbortWithError(c, status, err, body)
}
