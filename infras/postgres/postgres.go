package postgres

import (
	"club/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection wraps the single database handle used by the blob store.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	pg := config.Store.Postgres

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.Username, pg.Password, pg.Name, pg.SSLMode,
	)

	db, err := connect(dsn, pg.MaxRetry, pg.RetryWaitTime)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("host", net.JoinHostPort(pg.Host, pg.Port)).
			Str("database", pg.Name).
			Msg("Failed to connect to Postgres")
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)

	log.Info().
		Str("host", net.JoinHostPort(pg.Host, pg.Port)).
		Str("database", pg.Name).
		Msg("Connected to Postgres")

	return &Connection{DB: db}
}

func connect(dsn string, maxRetry, retryWaitSeconds int) (*sqlx.DB, error) {
	if maxRetry <= 0 {
		maxRetry = 1
	}

	var (
		db  *sqlx.DB
		err error
	)

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retry", maxRetry).
			Msg("Postgres connection attempt failed")

		time.Sleep(time.Duration(retryWaitSeconds) * time.Second)
	}

	return nil, fmt.Errorf("connecting to postgres after %d attempts: %w", maxRetry, err)
}
