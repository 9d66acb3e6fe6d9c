package redis

import (
	"context"
	"dentsched/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary node. The cache, the rate limiter and the
// booking lock all share this client.
func New(cfg *config.Config) *goRedis.Client {
	endpoint := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     endpoint.Addr(),
		Password: endpoint.Password,
		DB:       endpoint.DB,
		PoolSize: endpoint.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", endpoint.Addr()).Msg("failed to connect to redis")
	}

	log.Info().Str("addr", endpoint.Addr()).Int("db", endpoint.DB).Msg("connected to redis")

	return client
}
