package redis

import (
	"club/config"
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Store.Redis.Host, config.Store.Redis.Port),
		Password: config.Store.Redis.Password,
		DB:       config.Store.Redis.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.Store.Redis.DB).
		Str("host", config.Store.Redis.Host).
		Str("port", config.Store.Redis.Port).
		Msg("Connected to Redis")

	return client
}
