package redis

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/config"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Storage.Redis.Host, config.Storage.Redis.Port),
		Password: config.Storage.Redis.Password,
		DB:       config.Storage.Redis.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.Storage.Redis.DB).
		Str("host", config.Storage.Redis.Host).
		Str("port", config.Storage.Redis.Port).
		Msg("Connected to Redis")

	return client
}
