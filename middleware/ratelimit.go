package middleware

import (
	"context"
	"sync"
	"time"

	"boutic/response"
	"boutic/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Fenêtre fixe : 100 requêtes par client sur 15 minutes, toutes routes
// ventes flash confondues, publiques comme admin.
const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 100
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

type memoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
}

func (l *memoryLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &rateWindow{count: 1, resetAt: now.Add(rateLimitWindow)}
		return true
	}

	w.count++
	return w.count <= rateLimitMax
}

// RateLimitMiddleware limite le débit par adresse cliente. Les compteurs
// vivent dans Redis quand la connexion a réussi, sinon en mémoire.
func RateLimitMiddleware(rdb *redis.Client) gin.HandlerFunc {
	fallback := &memoryLimiter{windows: make(map[string]*rateWindow)}

	return func(c *gin.Context) {
		key := "ratelimit:flash-sales:" + c.ClientIP()

		allowed := true
		if rdb != nil {
			count, err := services.IncrementWithWindow(context.Background(), rdb, key, rateLimitWindow)
			if err == nil {
				allowed = count <= rateLimitMax
			} else {
				allowed = fallback.allow(key, time.Now())
			}
		} else {
			allowed = fallback.allow(key, time.Now())
		}

		if !allowed {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
