package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipt-api/internal/presentation/http/dto/response"
	"github.com/sangkips/receipt-api/pkg/apperror"
	"github.com/sangkips/receipt-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Error(c, apperror.Wrap(apperror.ErrInvalidToken, err))
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}
