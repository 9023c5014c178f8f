package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/petitionpay")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MAIL_USER", "legal-team@example.com")
	t.Setenv("MAIL_APP_PASSWORD", "app-password")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := FromEnv()

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultSMTPHost, cfg.SMTPHost)
	assert.Equal(t, DefaultSMTPPort, cfg.SMTPPort)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_TokenTTLOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "30m")

	cfg := FromEnv()
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestFromEnv_InvalidTokenTTLKeepsDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := FromEnv()
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
}

func TestValidate_FailsClosedOnMissingConfig(t *testing.T) {
	cases := []string{"DATABASE_URL", "JWT_SECRET", "MAIL_USER", "MAIL_APP_PASSWORD"}
	for _, name := range cases {
		t.Run("missing "+name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			err := FromEnv().Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestValidate_RedisOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_URL", "")

	require.NoError(t, FromEnv().Validate())
}
