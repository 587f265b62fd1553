package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IncrementWithWindow incrémente un compteur à fenêtre fixe dans Redis.
// La TTL n'est posée qu'à la première incrémentation de la fenêtre.
// Utilisé par le rate limiting des routes ventes flash.
func IncrementWithWindow(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
