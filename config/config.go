package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"pegsolitaire/game"
	"pegsolitaire/meta"
)

// Config is the game setup shared by every command. Values come from flags,
// SOLITAIRE_* environment variables and an optional config file, in that
// order of precedence.
type Config struct {
	Shape    string
	Arm      int    // 0 picks the shape's default
	Empty    string // "row,col", empty for the shape's default hole
	LogLevel string
	Seed     uint64
	Games    int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("shape", "cross")
	v.SetDefault("arm", 0)
	v.SetDefault("empty", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("games", meta.DefaultGames)
}

// Load reads the configuration from v. When the "config" key names a file
// it is read first.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("solitaire")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	c := &Config{
		Shape:    v.GetString("shape"),
		Arm:      v.GetInt("arm"),
		Empty:    v.GetString("empty"),
		LogLevel: v.GetString("log-level"),
		Seed:     v.GetUint64("seed"),
		Games:    v.GetInt("games"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := game.ParseShape(c.Shape); err != nil {
		return err
	}
	if c.Arm < 0 {
		return fmt.Errorf("arm must not be negative, got %d", c.Arm)
	}
	if c.Empty != "" {
		if _, err := game.ParsePosition(c.Empty); err != nil {
			return err
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}

func (c *Config) GameShape() (game.Shape, error) {
	return game.ParseShape(c.Shape)
}

// ArmThickness resolves an unset arm to the default for the shape.
func (c *Config) ArmThickness(shape game.Shape) int {
	if c.Arm > 0 {
		return c.Arm
	}
	if shape == game.Triangle {
		return meta.DefaultTriangleArm
	}
	return meta.DefaultCrossArm
}

func (c *Config) Options() ([]game.Option, error) {
	if c.Empty == "" {
		return nil, nil
	}
	pos, err := game.ParsePosition(c.Empty)
	if err != nil {
		return nil, err
	}
	return []game.Option{game.WithEmpty(pos)}, nil
}

// NewModel starts a game as configured.
func (c *Config) NewModel() (*game.SolitaireModel, error) {
	shape, err := c.GameShape()
	if err != nil {
		return nil, err
	}
	options, err := c.Options()
	if err != nil {
		return nil, err
	}
	return game.NewModel(shape, c.ArmThickness(shape), options...)
}

// Level is the configured log level, info if it cannot be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
