package config_test

import (
	"dentsched/config"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, []int{7, 14, 30}, cfg.Scheduling.FollowUpOffsetDays)
	assert.Equal(t, 10, cfg.Lock.TTLSeconds)
	assert.Equal(t, "dentsched.booking", cfg.Kafka.Topic.Booking)
	assert.Equal(t, "6379", cfg.Cache.Redis.Primary.Port)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SCHEDULING_FOLLOW_UP_OFFSET_DAYS", "1,2")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "primary.db")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, cfg.Scheduling.FollowUpOffsetDays)
	assert.Equal(t, "primary.db", cfg.DB.Postgres.Write.Host)
	assert.True(t, cfg.App.RateLimiter.Enable)
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv("LOCK_TTL_SECONDS", "ten")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestPostgresEndpoint_URL(t *testing.T) {
	endpoint := config.PostgresEndpoint{
		Host:     "db",
		Port:     "5432",
		Username: "sched",
		Password: "s3cret",
		Name:     "dentsched",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://sched:s3cret@db:5432/dentsched?sslmode=require", endpoint.URL("", nil))
	assert.Equal(t,
		"postgres://sched:s3cret@db:5432/stg_dentsched?application_name=seed&sslmode=require",
		endpoint.URL("stg_", url.Values{"application_name": {"seed"}}),
	)
}

func TestRedisEndpoint_Addr(t *testing.T) {
	assert.Equal(t, "cache:6380", config.RedisEndpoint{Host: "cache", Port: "6380"}.Addr())
}
