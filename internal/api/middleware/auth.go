package middleware

import (
	"context"
	"strings"

	"risingcreators/internal/pkg/redis"
	"risingcreators/internal/pkg/response"
	"risingcreators/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将操作者身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		// 已注销的 token 签名会被登记到 Redis
		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("roles", claims.Roles)

		newCtx := context.WithValue(c.Request.Context(), "operator_id", claims.OperatorID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
