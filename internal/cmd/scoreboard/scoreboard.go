// Package scoreboard parses scoreboard command flags and launches the runtime.
package scoreboard

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/tantoak/internal/platform/cmd"
	scoreboardapp "github.com/louisbranch/tantoak/internal/services/scoreboard/app"
)

// EnvPrefix prefixes every scoreboard environment variable.
const EnvPrefix = "TANTOAK_SCOREBOARD_"

// Config holds scoreboard command configuration.
type Config struct {
	DBPath                string `env:"DB_PATH" envDefault:"data/scoreboard.db"`
	Ephemeral             bool   `env:"EPHEMERAL" envDefault:"false"`
	DefaultCeiling        int    `env:"DEFAULT_CEILING" envDefault:"20"`
	ResetRoundOnGamePoint bool   `env:"RESET_ROUND_ON_GAME_POINT" envDefault:"true"`
	Locale                string `env:"LOCALE" envDefault:"eu"`
	HealthPort            int    `env:"HEALTH_PORT" envDefault:"0"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigWithPrefix(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The scoreboard SQLite database path")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "Keep state in memory only")
	fs.IntVar(&cfg.DefaultCeiling, "default-ceiling", cfg.DefaultCeiling, "Round ceiling used when nothing is saved")
	fs.BoolVar(&cfg.ResetRoundOnGamePoint, "reset-round-on-game-point", cfg.ResetRoundOnGamePoint, "Clear round points when a game point is awarded")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Summary language (eu or en)")
	fs.IntVar(&cfg.HealthPort, "health-port", cfg.HealthPort, "The gRPC health server port (0 disables it)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.DefaultCeiling <= 0 {
		return Config{}, fmt.Errorf("default ceiling must be positive, got %d", cfg.DefaultCeiling)
	}
	if cfg.HealthPort < 0 {
		return Config{}, fmt.Errorf("health port must not be negative, got %d", cfg.HealthPort)
	}
	return cfg, nil
}

// Run starts the scoreboard runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScoreboard, func(ctx context.Context) error {
		return scoreboardapp.Run(ctx, scoreboardapp.RuntimeConfig{
			DBPath:                cfg.DBPath,
			Ephemeral:             cfg.Ephemeral,
			DefaultCeiling:        cfg.DefaultCeiling,
			ResetRoundOnGamePoint: cfg.ResetRoundOnGamePoint,
			Locale:                cfg.Locale,
			HealthPort:            cfg.HealthPort,
		})
	})
}
