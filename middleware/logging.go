package middleware

import (
	"time"

	"boutic/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogMiddleware trace chaque requête dans le fichier de log du jour.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.LogInfo("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
