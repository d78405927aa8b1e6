package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/andikarp/hris-backend/internal/core/ports/services"
	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/andikarp/hris-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// refresh are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// 5 attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limit := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/refresh", limit, h.refresh)
	}
}

// registerAuthProtectedRoutes sets up the authenticated /auth routes.
func registerAuthProtectedRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.GET("/profile", h.profile)
		auth.PUT("/change-password", h.changePassword)
	}
}

// login godoc
// @Summary Authenticate an employee
// @Description Verifies credentials and issues an access and refresh token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	logger.Info("Employee logged in", slog.String("email", req.Email))
	c.JSON(http.StatusOK, tokens)
}

// refresh godoc
// @Summary Refresh the access token
// @Description Rotates the refresh token and issues a new access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to refresh token")
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// profile godoc
// @Summary Get the authenticated employee's profile
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *authHandler) profile(c *gin.Context) {
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	employee, err := h.authService.GetProfile(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// changePassword godoc
// @Summary Change the authenticated employee's password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 204 "Password changed"
// @Failure 400 {object} ErrorResponse "Invalid request or wrong current password"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/change-password [put]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), employeeID, req); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("employee_id", employeeID))
	c.Status(http.StatusNoContent)
}
