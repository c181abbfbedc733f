package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devconnector/backend/internal/middleware"
	"github.com/devconnector/backend/internal/service"
	"github.com/devconnector/backend/internal/types"
)

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please enter a valid email",
	"Password": "Enter password with 8 or more characters",
}

var loginMessages = map[string]string{
	"Email":    "Please enter a valid email",
	"Password": "Please enter password",
}

// AuthHandler serves registration, login and the authenticated-user lookup.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("", middleware.Auth(h.auth), h.Me)
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}
}

// Me returns the authenticated user, without the password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		respondError(c, http.StatusUnauthorized, types.ErrorItem{Msg: "No Token"})
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "User not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Register creates an account and answers with a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingErrors(err, registerMessages)...)
		return
	}

	_, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(c, http.StatusBadRequest, types.ErrorItem{Msg: "User already registered", Value: req.Email})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Login answers with a session token. Unknown email and wrong password
// produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, bindingErrors(err, loginMessages)...)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, types.ErrorItem{Msg: "Invalid Credentials", Value: req.Email})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
