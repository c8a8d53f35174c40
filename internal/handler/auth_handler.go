package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job_portal/internal/middleware"
	"job_portal/internal/model"
	"job_portal/internal/service"
	"job_portal/internal/session"
)

// AuthHandler handles registration, login and session state requests
type AuthHandler struct {
	service service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger}
}

// CheckAuth reports the current session state. Served on both
// /check-auth and /check_login; the frontend uses them interchangeably.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)

	identity, err := h.service.Authenticate(c.Request.Context(), token)
	if err != nil {
		h.logger.Error("failed to check session", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Lỗi server")
		return
	}

	if identity == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": identity})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Thiếu username hoặc password")
		return
	}
	if req.Username == "" || req.Password == "" {
		sendError(c, http.StatusBadRequest, "Thiếu username hoặc password")
		return
	}

	_, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			sendError(c, http.StatusBadRequest, "Tài khoản đã tồn tại")
		case errors.Is(err, service.ErrInvalidRole):
			sendError(c, http.StatusBadRequest, "Role không hợp lệ")
		default:
			h.logger.Error("failed to register user", zap.String("username", req.Username), zap.Error(err))
			sendError(c, http.StatusInternalServerError, "Lỗi server")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đăng ký thành công"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Thiếu username hoặc password")
		return
	}
	if req.Username == "" || req.Password == "" {
		sendError(c, http.StatusBadRequest, "Thiếu username hoặc password")
		return
	}

	identity, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			sendError(c, http.StatusBadRequest, "Tài khoản không tồn tại")
		case errors.Is(err, service.ErrWrongPassword):
			sendError(c, http.StatusUnauthorized, "Sai mật khẩu")
		default:
			h.logger.Error("failed to log in user", zap.String("username", req.Username), zap.Error(err))
			sendError(c, http.StatusInternalServerError, "Lỗi server")
		}
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(session.TTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đăng nhập thành công",
		"user":    identity,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		h.logger.Error("failed to log out", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Lỗi server")
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đăng xuất thành công"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.GET("/check-auth", h.CheckAuth)
	rg.GET("/check_login", h.CheckAuth)
	rg.POST("/register", h.Register)
	rg.POST("/user_login", h.Login)
	rg.POST("/logout", h.Logout)
}
