package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"campus-bot-go/pkg/log"
)

// RequestLogger 是一个 Gin 中间件，记录每个请求的概要日志。
// 不记录请求体：登录与注册表单包含明文密码。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		log.Infow("HTTP Request Log",
			"statusCode", c.Writer.Status(),
			"latency", latency.String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
}
