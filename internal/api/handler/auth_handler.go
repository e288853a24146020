package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yash6314/invigilationMailService/internal/dto"
	"github.com/yash6314/invigilationMailService/internal/service"
	"github.com/yash6314/invigilationMailService/pkg/response"
)

// AuthHandler handles operator login and logout.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates the operator account.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "username and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 10002, "invalid credentials")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	expUnix := c.GetInt64("token_exp")
	if jti == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, time.Unix(expUnix, 0)); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "logged out")
}
