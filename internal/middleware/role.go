package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStudent 检查当前会话属于学生。
// 此中间件必须在 SessionMiddleware 之后使用。
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "无法获取会话身份"})
			return
		}
		if !identity.IsStudent() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "Student session required",
			})
			return
		}
		c.Next()
	}
}

// RequireModerator 检查当前会话属于管理员。
// 此中间件必须在 SessionMiddleware 之后使用。
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "无法获取会话身份"})
			return
		}
		if !identity.IsModerator() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "Moderator session required",
			})
			return
		}
		c.Next()
	}
}
