package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentsched/config"
	"dentsched/infras/jwt"
	otelMocks "dentsched/infras/otel/mocks"
	"dentsched/shared/constant"
	"dentsched/transport/http/middleware"
)

func authConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "dentsched"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 15

	return cfg
}

// chain wraps the handler as the admin group does: tenant, api key, auth, role.
func chain(cfg *config.Config, final http.Handler) http.Handler {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)
	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), otelMocks.NewOtel(), cfg)

	return app.Tenant(auth.APIKey(auth.Auth(auth.RequireRole(constant.RoleAdmin, constant.RoleSuperAdmin)(final))))
}

func token(t *testing.T, cfg *config.Config, role, tenantID string) string {
	t.Helper()

	signed, err := jwt.New(cfg).Issue(jwt.Identity{UserID: "user-1", Email: "desk@clinic.test", Role: role, TenantID: tenantID})
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestAdminChain(t *testing.T) {
	cfg := authConfig()

	tests := []struct {
		name         string
		tenant       string
		authz        string
		apiKey       string
		expectStatus int
		expectUser   string
	}{
		{name: "admin of the tenant", tenant: "clinic-a", authz: token(t, cfg, constant.RoleAdmin, "clinic-a"), expectStatus: http.StatusOK, expectUser: "user-1"},
		{name: "superadmin of another tenant", tenant: "clinic-a", authz: token(t, cfg, constant.RoleSuperAdmin, "hq"), expectStatus: http.StatusOK, expectUser: "user-1"},
		{name: "admin of another tenant", tenant: "clinic-a", authz: token(t, cfg, constant.RoleAdmin, "clinic-b"), expectStatus: http.StatusForbidden},
		{name: "plain user", tenant: "clinic-a", authz: token(t, cfg, constant.RoleUser, "clinic-a"), expectStatus: http.StatusForbidden},
		{name: "missing token", tenant: "clinic-a", expectStatus: http.StatusUnauthorized},
		{name: "garbage token", tenant: "clinic-a", authz: "Bearer nope", expectStatus: http.StatusUnauthorized},
		{name: "missing tenant", authz: token(t, cfg, constant.RoleAdmin, "clinic-a"), expectStatus: http.StatusBadRequest},
		{name: "malformed tenant", tenant: "clinic a!", authz: token(t, cfg, constant.RoleAdmin, "clinic-a"), expectStatus: http.StatusBadRequest},
		{name: "internal api key", tenant: "clinic-a", apiKey: "internal-key", expectStatus: http.StatusOK, expectUser: "internal"},
		{name: "wrong api key", tenant: "clinic-a", apiKey: "guess", expectStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotTenant string

			final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(constant.ContextKeyUserID).(string)
				gotTenant, _ = r.Context().Value(constant.ContextKeyTenantID).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/v1/admin/procedures", nil)
			if tt.tenant != "" {
				req.Header.Set(constant.RequestHeaderTenantID, tt.tenant)
			}

			if tt.authz != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.authz)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			chain(cfg, final).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.expectStatus == http.StatusOK {
				assert.Equal(t, tt.expectUser, gotUser)
				assert.Equal(t, tt.tenant, gotTenant)
			}
		})
	}
}
