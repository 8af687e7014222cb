package app

import (
	"errors"
	"fmt"
	"time"

	"snake/internal/domain"
)

const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

var ErrUnknownBackend = errors.New("unknown backend")

type Config struct {
	Backend string
	Seed    int64
	Mute    bool
	Verbose bool

	Game *domain.GameConfig
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendEbiten,
		Game:    domain.DefaultGameConfig(),
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Game == nil {
		return errors.New("missing game config")
	}
	return c.Game.Validate()
}

// ResolveSeed returns the configured seed, or a time based one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
