package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dentsched/config"
	otelMocks "dentsched/infras/otel/mocks"
	cacheMocks "dentsched/shared/cache/mocks"
	"dentsched/shared/constant"
	"dentsched/transport/http/middleware"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func limitedRequest() *http.Request {
	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/v1/public/slots", nil)
	req.Header.Set(constant.RequestHeaderTenantID, "clinic-a")
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
	req.Header.Set(constant.RequestHeaderUserAgent, "kiosk")

	return req
}

const limiterKey = "limiter:clinic-a:10.0.0.1:kiosk"

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		setup         func(c *cacheMocks.MockRedisCache)
		expectStatus  int
		wantRemaining string
	}{
		{
			name:         "disabled",
			enable:       false,
			setup:        func(_ *cacheMocks.MockRedisCache) {},
			expectStatus: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), limiterKey, 60).Return(int64(1), nil)
			},
			expectStatus:  http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "last request in window",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), limiterKey, 60).Return(int64(2), nil)
			},
			expectStatus:  http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), limiterKey, 60).Return(int64(3), nil)
			},
			expectStatus: http.StatusTooManyRequests,
		},
		{
			name:   "cache down fails open",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), limiterKey, 60).Return(int64(0), errors.New("connection refused"))
			},
			expectStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), redisCache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, limitedRequest())

			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.wantRemaining != "" {
				assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
				assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
			}
		})
	}
}
