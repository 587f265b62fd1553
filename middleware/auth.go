package middleware

import (
	"strings"

	"boutic/response"
	"boutic/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gère l'authentification par token Bearer.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Vérifie le rôle si exigé
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Garde les infos utilisateur dans le contexte
		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}
