package helper

//nolint:revive
import (
	"errors"
	"dentsched/config"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Action is a migration direction accepted by cmd/migrate.
type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionDrop   Action = "drop"
	ActionStepUp Action = "step-up"
)

var ErrUnknownAction = errors.New("unknown migration action, use 'up', 'down', 'drop' or 'step-up'")

func ParseAction(raw string) (Action, error) {
	switch action := Action(raw); action {
	case ActionUp, ActionDown, ActionDrop, ActionStepUp:
		return action, nil
	default:
		return "", ErrUnknownAction
	}
}

// DatabaseURL builds the golang-migrate URL for the write database.
func DatabaseURL(cfg *config.Config) string {
	var extra url.Values

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		extra = url.Values{"x-migrations-table": {table}}
	}

	return cfg.DB.Postgres.Write.URL(cfg.DB.Postgres.Prefix, extra)
}

func step(mig *migrate.Migrate, action Action) error {
	switch action {
	case ActionUp:
		return mig.Up() //nolint:wrapcheck
	case ActionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case ActionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case ActionDrop:
		return mig.Down() //nolint:wrapcheck
	}

	return ErrUnknownAction
}

// Migrate applies action to the scheduling schema.
func Migrate(cfg *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		if sourceErr, dbErr := mig.Close(); sourceErr != nil || dbErr != nil {
			log.Warn().AnErr("source", sourceErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	if err := step(mig, action); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", string(action)).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

	return nil
}
