package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://env")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("POLLER_INTERVAL", "1m")

	conf, err := LoadConfig([]string{"-a", "0.0.0.0:9000", "-d", "postgres://flag"})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", conf.RunAddress)
	// окружение приоритетнее флагов
	assert.Equal(t, "postgres://env", conf.DatabaseDSN)
	assert.Equal(t, "internal/db/migrations", conf.MigrationsDir)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.KafkaBrokers)
	assert.Equal(t, time.Minute, conf.PollerInterval)
	assert.Equal(t, 30*time.Second, conf.GatewayTimeout)
	assert.True(t, conf.GatewayFailOpen)
	assert.False(t, conf.ReleaseMode)
}

func TestLoadConfig_Validation(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "no dsn",
			env:     map[string]string{"JWT_SECRET": "secret"},
			wantErr: ErrEmptyDSN,
		}, {
			name:    "no jwt secret",
			env:     map[string]string{"DATABASE_URI": "postgres://"},
			wantErr: ErrEmptyJWTSecret,
		}, {
			name: "release without webhook secret",
			env: map[string]string{
				"DATABASE_URI": "postgres://",
				"JWT_SECRET":   "secret",
				"GIN_MODE":     "release",
			},
			wantErr: ErrWebhookSecretRequired,
		}, {
			name: "release with explicit skip",
			env: map[string]string{
				"DATABASE_URI":                 "postgres://",
				"JWT_SECRET":                   "secret",
				"GIN_MODE":                     "release",
				"WEBHOOK_INSECURE_SKIP_VERIFY": "true",
			},
		}, {
			name: "release with secret",
			env: map[string]string{
				"DATABASE_URI":   "postgres://",
				"JWT_SECRET":     "secret",
				"GIN_MODE":       "release",
				"WEBHOOK_SECRET": "whsec",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DATABASE_URI", "")
			t.Setenv("JWT_SECRET", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(nil)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
