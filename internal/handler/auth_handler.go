// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/config"
	"campus-bot-go/internal/middleware"
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/log"
)

// AuthHandler 负责处理登录、注册与登出请求。
type AuthHandler struct {
	authService service.AuthService
	sessionCfg  config.SessionConfig
}

// NewAuthHandler 创建一个新的 AuthHandler 实例。
func NewAuthHandler(authService service.AuthService, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, sessionCfg: sessionCfg}
}

// Index 处理根路径，跳转到登录页。
func (h *AuthHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage 返回登录表单的字段说明（页面渲染不在服务端范围内）。
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "POST login_type (student|moderator) with credentials",
	})
}

// LoginRequest 定义了登录表单的字段。
// 学生凭 college_id 登录，管理员凭 mod_id 登录。
type LoginRequest struct {
	LoginType string `form:"login_type" binding:"required"`
	CollegeID string `form:"college_id"`
	ModID     string `form:"mod_id"`
	Password  string `form:"password" binding:"required"`
}

// Login 处理登录请求，成功时设置会话 cookie。
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnf("Login: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "login_type and password are required",
		})
		return
	}

	switch req.LoginType {
	case model.KindStudent:
		sessionToken, user, err := h.authService.LoginStudent(req.CollegeID, req.Password)
		if err != nil {
			log.Warnf("Login: student authentication failed for '%s', error: %v", req.CollegeID, err)
			// 未知学号与密码错误统一返回同一条消息
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid college ID or password",
			})
			return
		}
		h.setSessionCookie(c, sessionToken)
		log.Infof("Student '%s' logged in successfully", user.CollegeID)
		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": "Login successful",
			"data":    gin.H{"name": user.Name, "kind": model.KindStudent},
		})

	case model.KindModerator:
		sessionToken, mod, err := h.authService.LoginModerator(req.ModID, req.Password)
		if err != nil {
			log.Warnf("Login: moderator authentication failed for '%s', error: %v", req.ModID, err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid moderator ID or password",
			})
			return
		}
		h.setSessionCookie(c, sessionToken)
		log.Infof("Moderator '%s' logged in successfully", mod.ModID)
		c.JSON(http.StatusOK, gin.H{
			"code":    http.StatusOK,
			"message": "Login successful",
			"data":    gin.H{"name": mod.Name, "kind": model.KindModerator},
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "Unknown login type",
		})
	}
}

// RegisterPage 返回注册表单的字段说明。
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "POST name, college_id and password to register",
	})
}

// RegisterRequest 定义了学生注册表单的字段。
type RegisterRequest struct {
	Name      string `form:"name" binding:"required"`
	CollegeID string `form:"college_id" binding:"required"`
	Password  string `form:"password" binding:"required"`
}

// Register 处理学生注册请求。
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnf("Register: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "name, college_id and password are required",
		})
		return
	}

	user, err := h.authService.Register(req.Name, req.CollegeID, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCollegeID) {
			c.JSON(http.StatusConflict, gin.H{
				"code":    http.StatusConflict,
				"message": "College ID already exists",
			})
			return
		}
		log.Error("Register: failed to create user", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Registration failed",
		})
		return
	}

	log.Infof("User '%s' registered successfully", user.CollegeID)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "Registration successful! Please login.",
	})
}

// Logout 处理登出请求：无条件清除会话 cookie 并吊销令牌。
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionToken := c.GetString("sessionToken")

	if err := h.authService.Logout(sessionToken); err != nil {
		log.Error("Logout: failed to revoke session token", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Logout failed",
		})
		return
	}

	c.SetCookie(h.sessionCfg.CookieName, "", -1, "/", "", false, true)

	if identity, ok := middleware.IdentityFrom(c); ok {
		log.Infof("%s '%s' logged out successfully", identity.Kind, identity.Name)
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "You have been logged out successfully",
	})
}

// setSessionCookie 将会话令牌写入 HttpOnly cookie。
func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionToken string) {
	maxAge := h.sessionCfg.ExpireHours * 3600
	c.SetCookie(h.sessionCfg.CookieName, sessionToken, maxAge, "/", "", false, true)
}
