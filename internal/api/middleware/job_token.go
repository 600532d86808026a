package middleware

import (
	"strings"

	"risingcreators/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JobTokenMiddleware 定时任务接口的共享密钥校验。
// secret 为空时不做校验，留给内网部署的调度器直接调用。
func JobTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || token == authHeader || token != secret {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		c.Next()
	}
}
