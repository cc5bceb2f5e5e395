package handler

import (
	"net/http"

	"hospital-bed-booking/internal/config"
	"hospital-bed-booking/internal/middleware"
	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/service"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService *service.AuthService
	auth        config.AuthConfig
	secure      bool
	log         *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		auth:        cfg.Auth,
		secure:      cfg.Server.GinMode == gin.ReleaseMode,
		log:         log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=patient hospital admin"`
}

// RegisterForm describes the registration form
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"roles": []option{
			{Value: string(models.RolePatient), Label: "Patient"},
			{Value: string(models.RoleHospital), Label: "Hospital"},
			{Value: string(models.RoleAdmin), Label: "Admin"},
		},
	})
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondError(c, h.log, err, "Not found")
		return
	}

	utils.CreatedResponse(c, "Registration successful. Please login.", user)
}

// LoginForm describes the login form
func (h *AuthHandler) LoginForm(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"fields": []string{"email", "password"}})
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err, "Not found")
		return
	}

	// Access token for browser clients, refresh token HttpOnly
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.AccessToken, int(h.auth.AccessTokenExpiry.Seconds()), "/", "", h.secure, true)
	c.SetCookie(refreshCookie, session.RefreshToken, int(h.auth.RefreshTokenExpiry.Seconds()), "/", "", h.secure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in",
		"data":    session,
	})
}

// Refresh generates a new access token from the refresh token cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, h.log, err, "Not found")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, accessToken, int(h.auth.AccessTokenExpiry.Seconds()), "/", "", h.secure, true)
	utils.SuccessResponse(c, gin.H{"access_token": accessToken})
}

// Logout revokes the refresh token and clears both cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookie)
	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		respondError(c, h.log, err, "Not found")
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
	utils.MessageResponse(c, "Logged out")
}

// Me returns the logged in user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.log, err, "User not found")
		return
	}
	utils.SuccessResponse(c, user)
}
