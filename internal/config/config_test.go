package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)

	req.Equal(":8080", cfg.Addr)
	req.Equal("./static", cfg.StaticDir)
	req.Equal(100*time.Millisecond, cfg.RosterDelay)
	req.Equal(int64(64*1024), cfg.ReadLimit)
	req.Equal(10*time.Second, cfg.WriteWait)
	req.Equal(60*time.Second, cfg.PongWait)
	req.Empty(cfg.AllowedOrigins)
	req.Equal(5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	req := require.New(t)

	t.Setenv("ADDR", ":9999")
	t.Setenv("ROSTER_DELAY", "0s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	req.NoError(err)
	req.Equal(":9999", cfg.Addr)
	req.Zero(cfg.RosterDelay)
	req.Equal([]string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("WRITE_WAIT", "soonish")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsNonPositiveReadLimit(t *testing.T) {
	t.Setenv("READ_LIMIT", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestPingPeriod_FiresBeforePongDeadline(t *testing.T) {
	cfg := Config{PongWait: 60 * time.Second}
	require.Less(t, cfg.PingPeriod(), cfg.PongWait)
}
