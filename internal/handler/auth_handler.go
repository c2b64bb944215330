package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/middleware"
	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	limiter     *middleware.LoginRateLimiter
}

func NewAuthHandler(authService *service.AuthService, limiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if !h.limiter.Allow(c.ClientIP()) {
		utils.Error(c, 429, "TOO_MANY_ATTEMPTS", "Too many login attempts, try again later")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.limiter.Reset(c.ClientIP())

	utils.Success(c, 200, "Login successful", result)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		SessionID    string `json:"sessionId" binding:"required"`
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.SessionID, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, 200, "Token refreshed", result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString("session_id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Logged out", nil)
}

func (h *AuthHandler) RequestEmailVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.RequestEmailVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, 200, "Verification email sent", nil)
}

func (h *AuthHandler) ConfirmEmailVerification(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.authService.ConfirmEmailVerification(c.Request.Context(), req.Token); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, 200, "Email verified", nil)
}
