// Package middleware 提供了处理 HTTP 请求的中间件。
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/model"
	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/token"
)

// identityKey 是已认证身份在 gin 上下文中的键。
const identityKey = "identity"

// SessionMiddleware 创建一个 Gin 中间件，用于会话认证。
// 它从会话 cookie 中提取令牌，验证签名与黑名单，
// 并将 SessionIdentity 注入请求上下文。
func SessionMiddleware(cookieName string, jwtManager *token.JWTManager, authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken, err := c.Cookie(cookieName)
		if err != nil || sessionToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Please login first",
			})
			return
		}

		// 已登出的令牌在黑名单中，视同无会话
		if authService.IsRevoked(c.Request.Context(), sessionToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Please login first",
			})
			return
		}

		claims, err := jwtManager.Verify(sessionToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid or expired session",
			})
			return
		}

		// 将身份与原始令牌存入上下文，供处理器与登出使用
		c.Set(identityKey, &model.SessionIdentity{
			ID:   claims.ID,
			Name: claims.Name,
			Kind: claims.Kind,
		})
		c.Set("sessionToken", sessionToken)

		c.Next()
	}
}

// IdentityFrom 从请求上下文中取出已认证身份。
func IdentityFrom(c *gin.Context) (*model.SessionIdentity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*model.SessionIdentity)
	return identity, ok
}
