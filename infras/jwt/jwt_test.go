package jwt_test

import (
	"dentsched/config"
	"dentsched/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "dentsched"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

var frontDesk = jwt.Identity{UserID: "user-1", Email: "front@clinic.test", Role: "admin", TenantID: "clinic-a"}

func TestIssueAndVerify(t *testing.T) {
	svc := newService("secret", 15)

	token, err := svc.Issue(frontDesk)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, frontDesk, claims.Identity)
	assert.Equal(t, "dentsched", claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_Rejects(t *testing.T) {
	valid, err := newService("secret", 15).Issue(frontDesk)
	require.NoError(t, err)

	expired, err := newService("secret", -1).Issue(frontDesk)
	require.NoError(t, err)

	anonymous, err := newService("secret", 15).Issue(jwt.Identity{Role: "admin"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr error
	}{
		{name: "wrong secret", secret: "other", token: valid, wantErr: jwt.ErrInvalidToken},
		{name: "expired", secret: "secret", token: expired, wantErr: jwt.ErrExpiredToken},
		{name: "no subject", secret: "secret", token: anonymous, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", secret: "secret", token: "not.a.token", wantErr: jwt.ErrInvalidToken},
		{
			name:    "alg none",
			secret:  "secret",
			token:   "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoidXNlci0xIiwicm9sZSI6InN1cGVyYWRtaW4ifQ.",
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(tt.secret, 15).Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, err := jwt.BearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Basic abc", "Bearer ", "bearer abc"} {
		_, err = jwt.BearerToken(header)
		assert.ErrorIs(t, err, jwt.ErrMissingToken, header)
	}
}
