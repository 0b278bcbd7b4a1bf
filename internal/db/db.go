package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"inventario/internal/config"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
	connectTimeout         = 5 * time.Second
)

// ConnectWithRetry connects to MongoDB and verifies the connection
// with a ping, retrying a bounded number of times. An unreachable
// store at startup is fatal; there is nothing useful the service can
// do without it.
func ConnectWithRetry(cfg *config.Config) *mongo.Client {
	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
		if err == nil {
			pingErr := client.Ping(ctx, readpref.Primary())
			if pingErr == nil {
				cancel()
				return client
			}
			err = pingErr
		}
		cancel()

		log.Warn().
			Int("attempt", attempt).
			Int("max_attempts", defaultMaxAttempts).
			Err(err).
			Msg("mongo not ready")
		time.Sleep(defaultDelayBetweenTry)
	}

	log.Fatal().
		Int("attempts", defaultMaxAttempts).
		Err(err).
		Msg("could not connect to mongo")
	return nil
}
