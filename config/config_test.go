package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/uno-server/consts"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, ":9999", cfg.TcpAddr)
		require.Equal(t, ":9998", cfg.WsAddr)
		require.Equal(t, consts.MaxPlayers, cfg.MaxPlayers)
		require.Equal(t, consts.HandSize, cfg.HandSize)
		require.Equal(t, consts.AuthTimeout, cfg.AuthTimeout)
		require.Zero(t, cfg.TurnTimeout)
	})

	t.Run("environment_overrides", func(t *testing.T) {
		t.Setenv("UNO_MAX_PLAYERS", "6")
		t.Setenv("UNO_TURN_TIMEOUT", "15s")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, 6, cfg.MaxPlayers)
		require.Equal(t, 15*time.Second, cfg.TurnTimeout)
	})

	t.Run("dotenv_file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "uno.env")
		require.NoError(t, os.WriteFile(file, []byte("UNO_HAND_SIZE=5\nUNO_SEED=42\n"), 0o600))
		t.Setenv("UNO_HAND_SIZE", "")
		require.NoError(t, os.Unsetenv("UNO_HAND_SIZE"))
		t.Setenv("UNO_SEED", "")
		require.NoError(t, os.Unsetenv("UNO_SEED"))

		cfg, err := Load(file)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.HandSize)
		require.Equal(t, int64(42), cfg.Seed)
	})

	t.Run("malformed_value", func(t *testing.T) {
		t.Setenv("UNO_HAND_SIZE", "seven")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("invalid_bounds", func(t *testing.T) {
		t.Setenv("UNO_MIN_PLAYERS", "3")
		t.Setenv("UNO_MAX_PLAYERS", "2")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, consts.ErrorsInputInvalid)
	})

	t.Run("hands_larger_than_the_deck", func(t *testing.T) {
		t.Setenv("UNO_MAX_PLAYERS", "16")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, consts.ErrorsInputInvalid)
	})
}
