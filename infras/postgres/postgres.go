package postgres

import (
	"context"
	"database/sql"
	"dentsched/config"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits reads onto a replica. Transactions always use Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg.Read, cfg),
		Write: connect("write", pg.Write, cfg),
	}
}

// connect retries until the database answers, then exits the process.
func connect(role string, endpoint config.PostgresEndpoint, cfg *config.Config) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := endpoint.URL(pg.Prefix, nil)
	logger := log.With().
		Str("role", role).
		Str("host", endpoint.Host).
		Str("db", pg.Prefix+endpoint.Name).
		Logger()

	attempts := max(pg.MaxRetry, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			logger.Info().Msg("connected to postgres")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("postgres unavailable, retrying")
		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Int("attempts", attempts).Msg("giving up on postgres")

	return nil
}

// WithTx runs fn inside a write transaction, committing on success and rolling back otherwise.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsErrorCode reports whether err carries one of the given SQLSTATE codes.
func IsErrorCode(err error, codes ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return slices.Contains(codes, string(pqErr.Code))
}
