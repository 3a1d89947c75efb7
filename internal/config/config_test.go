package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, domain.DefaultBookingsFile, cfg.Storage.BookingsFile)
	assert.Equal(t, domain.DefaultBookingTimeoutMillis, cfg.Parking.BookingTimeoutMillis)
	assert.Len(t, cfg.Parking.Slots, 4)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
jwt_secret = "test-secret"
token_ttl_minutes = 15

[parking]
slots = ["REGULAR", "REGULAR", "LARGE"]
booking_timeout_ms = 120000

[parking.rates]
regular = 12.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, int64(120_000), cfg.Parking.BookingTimeoutMillis)

	types := cfg.SlotTypes()
	require.Len(t, types, 3)
	assert.Equal(t, domain.SlotRegular, types[0])
	assert.Equal(t, domain.SlotLarge, types[2])

	tariff := cfg.Tariff()
	rate, known := tariff.RateFor(domain.SlotRegular)
	assert.True(t, known)
	assert.InDelta(t, 12.5, rate, 1e-9)
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing jwt_secret", `
[server]
http_port = 8080
`},
		{"bad port", `
[server]
http_port = 99999

[auth]
jwt_secret = "test-secret"
`},
		{"unknown slot type", `
[auth]
jwt_secret = "test-secret"

[parking]
slots = ["COMPACT", "MOTORCYCLE"]
`},
		{"zero timeout", `
[auth]
jwt_secret = "test-secret"

[parking]
booking_timeout_ms = 0
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
