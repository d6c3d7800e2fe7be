package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"wall-duel/internal/game"
)

// Game holds the board parameters every new table starts with.
type Game struct {
	GridSize  int `env:"GRID_SIZE" envDefault:"10"`
	DarkCells int `env:"DARK_CELLS" envDefault:"10"`
	// Seed fixes the dark-cell draw of every new table. Zero draws a fresh
	// seed per table.
	Seed int64 `env:"SEED" envDefault:"0"`
}

func (g Game) Options() game.Options {
	return game.Options{Size: g.GridSize, DarkCells: g.DarkCells}
}

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	Game     Game
}

const envPrefix = "WALLDUEL_"

// Load reads WALLDUEL_* environment variables and validates the board
// parameters.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Game.Options().Validate(); err != nil {
		return Config{}, fmt.Errorf("game config: %w", err)
	}
	return cfg, nil
}

// Default is the configuration Load returns with an empty environment.
func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		Game: Game{
			GridSize:  game.DefaultGridSize,
			DarkCells: game.DefaultDarkCells,
		},
	}
}
