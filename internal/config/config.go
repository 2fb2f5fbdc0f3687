package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"svw.info/battleship/internal/domain"
)

type Config struct {
	Addr     string            `mapstructure:"addr"`
	Log      LogConfig         `mapstructure:"log"`
	Board    BoardConfig       `mapstructure:"board"`
	Sessions SessionsConfig    `mapstructure:"sessions"`
	Fleet    []domain.ShipType `mapstructure:"fleet"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BoardConfig sets the default session size and the largest size a client
// may request.
type BoardConfig struct {
	Rows    int `mapstructure:"rows"`
	Cols    int `mapstructure:"cols"`
	MaxRows int `mapstructure:"maxRows"`
	MaxCols int `mapstructure:"maxCols"`
}

type SessionsConfig struct {
	Capacity int `mapstructure:"capacity"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("board.rows", 10)
	v.SetDefault("board.cols", 10)
	v.SetDefault("board.maxRows", 26)
	v.SetDefault("board.maxCols", 26)
	v.SetDefault("sessions.capacity", 256)
	v.SetDefault("fleet", fleetDefault())
}

func fleetDefault() []map[string]any {
	var out []map[string]any
	for _, s := range domain.DefaultFleet() {
		out = append(out, map[string]any{"name": s.Name, "length": s.Length})
	}
	return out
}

// Load reads .env, then an optional config file (YAML/JSON/TOML by extension),
// then BUDDY_* environment variables. An empty path skips the file and searches
// the working directory for battleship.yaml instead.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("BUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("battleship")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks board dimensions, capacity and fleet definitions.
func (c *Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Rows > c.Board.MaxRows || c.Board.Cols > c.Board.MaxCols {
		return fmt.Errorf("%w: default %dx%d exceeds board.maxRows/maxCols %dx%d",
			domain.ErrInvalidDimensions, c.Board.Rows, c.Board.Cols, c.Board.MaxRows, c.Board.MaxCols)
	}
	if c.Sessions.Capacity <= 0 {
		return fmt.Errorf("sessions.capacity must be positive, got %d", c.Sessions.Capacity)
	}
	if len(c.Fleet) == 0 {
		return fmt.Errorf("%w: fleet is empty", domain.ErrInvalidShipType)
	}
	if _, err := domain.NewCatalogue(c.Fleet...); err != nil {
		return err
	}
	return nil
}
