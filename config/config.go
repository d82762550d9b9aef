package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/game"
)

type Config struct {
	TcpAddr     string        `env:"UNO_TCP_ADDR" envDefault:":9999"`
	WsAddr      string        `env:"UNO_WS_ADDR" envDefault:":9998"`
	MinPlayers  int           `env:"UNO_MIN_PLAYERS" envDefault:"1"`
	MaxPlayers  int           `env:"UNO_MAX_PLAYERS" envDefault:"4"`
	HandSize    int           `env:"UNO_HAND_SIZE" envDefault:"7"`
	TurnTimeout time.Duration `env:"UNO_TURN_TIMEOUT" envDefault:"0s"`
	AuthTimeout time.Duration `env:"UNO_AUTH_TIMEOUT" envDefault:"3s"`
	RoomTTL     time.Duration `env:"UNO_ROOM_TTL" envDefault:"10m"`
	Seed        int64         `env:"UNO_SEED" envDefault:"0"`
	// Autoplay names the strategy that plays timed out turns: off, naive or good.
	Autoplay string `env:"UNO_AUTOPLAY" envDefault:"off"`
}

// Load reads dotenv files, when present, into the environment and parses it.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.MinPlayers < 1:
		return fmt.Errorf("UNO_MIN_PLAYERS %d: %w", c.MinPlayers, consts.ErrorsInputInvalid)
	case c.MaxPlayers < c.MinPlayers:
		return fmt.Errorf("UNO_MAX_PLAYERS %d below minimum %d: %w", c.MaxPlayers, c.MinPlayers, consts.ErrorsInputInvalid)
	case c.HandSize < 1:
		return fmt.Errorf("UNO_HAND_SIZE %d: %w", c.HandSize, consts.ErrorsInputInvalid)
	case c.MaxPlayers*c.HandSize > game.DeckSize:
		return fmt.Errorf("%d players with %d cards each exceed the %d card deck: %w", c.MaxPlayers, c.HandSize, game.DeckSize, consts.ErrorsInputInvalid)
	case c.TurnTimeout < 0 || c.AuthTimeout <= 0:
		return fmt.Errorf("timeouts must not be negative: %w", consts.ErrorsInputInvalid)
	}
	return nil
}
