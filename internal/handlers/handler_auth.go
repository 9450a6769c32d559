package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := &authHandler{authService: authService}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	logger.Info("User logged in", slog.String("role", resp.Role))
	c.JSON(http.StatusOK, resp)
}
