package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeMiddleware épure tout HTML des chaînes du corps JSON avant que
// la requête n'atteigne les contrôleurs. Un corps vide ou non-JSON passe
// tel quel, le binding se chargera de le rejeter.
func SanitizeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}
		if c.Request.Body == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if len(bytes.TrimSpace(body)) == 0 {
			c.Next()
			return
		}

		var payload interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			c.Next()
			return
		}

		cleaned, err := json.Marshal(sanitizeValue(payload))
		if err != nil {
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
		c.Request.ContentLength = int64(len(cleaned))
		c.Next()
	}
}

// sanitizeValue parcourt récursivement la valeur JSON et épure chaque chaîne.
func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return sanitizePolicy.Sanitize(val)
	case []interface{}:
		for i := range val {
			val[i] = sanitizeValue(val[i])
		}
		return val
	case map[string]interface{}:
		for k := range val {
			val[k] = sanitizeValue(val[k])
		}
		return val
	default:
		return v
	}
}
