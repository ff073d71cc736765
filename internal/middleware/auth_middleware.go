// internal/middleware/auth_middleware.go
package middleware

import (
	"strings"

	"fleetmaint-service/internal/pkg/jwt"
	"fleetmaint-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier *jwt.Verifier
}

func NewAuthMiddleware(verifier *jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAdmin rejects requests without a valid bearer token carrying the
// admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			return
		}

		claims, err := m.verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			return
		}
		if claims.Role != "admin" {
			response.Error(c, 403, "admin role required", nil)
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}
