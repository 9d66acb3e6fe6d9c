package timezone

import (
	"dentsched/config"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone

	loc, err := Load(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown clinic timezone, falling back to UTC")
	}

	Set(loc)
	log.Info().Str("timezone", loc.String()).Msg("clinic timezone initialized")
}

// Load resolves an IANA zone name. An empty name is UTC. On error it still
// returns UTC so callers can keep running.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, err //nolint:wrapcheck
	}

	return loc, nil
}

// Set replaces the clinic location. Tests use it to pin a zone.
func Set(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	location.Store(loc)
}

// GetLocation returns the clinic location, UTC before initialization.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now is the wall clock in clinic time.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as clinic-local when layout carries no zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
