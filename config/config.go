package config

import (
	"errors"
	"fmt"
	"strings"

	"perfectplay/game"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "PERFECTPLAY"

// Strategies a player can be controlled by
const (
	Human     = "human"
	Recursive = "recursive"
	Iterative = "iterative"
	Random    = "random"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnboundedSearch = errors.New("minimax search of chopsticks needs max_depth, positions repeat forever")
)

type Experiment struct {
	Name      string `mapstructure:"name"`
	Games     int    `mapstructure:"games"` // Per match up
	OutputDir string `mapstructure:"output_dir"`
}

type Config struct {
	Game        string     `mapstructure:"game"`
	StartNumber int        `mapstructure:"start_number"`
	BoardSize   int        `mapstructure:"board_size"`
	FirstPlayer string     `mapstructure:"first_player"`
	Player1     string     `mapstructure:"player1"`
	Player2     string     `mapstructure:"player2"`
	Seed        uint64     `mapstructure:"seed"` // 0 seeds from the clock
	MaxDepth    int        `mapstructure:"max_depth"`
	Goroutines  int        `mapstructure:"goroutines"`
	MaxTurns    int        `mapstructure:"max_turns"`
	LogLevel    string     `mapstructure:"log_level"`
	Experiment  Experiment `mapstructure:"experiment"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("game", string(game.SubtractSquare))
	v.SetDefault("start_number", 20)
	v.SetDefault("board_size", 2)
	v.SetDefault("first_player", string(game.P1))
	v.SetDefault("player1", Human)
	v.SetDefault("player2", Recursive)
	v.SetDefault("seed", 0)
	v.SetDefault("max_depth", 0)
	v.SetDefault("goroutines", 1)
	v.SetDefault("max_turns", 10000)
	v.SetDefault("log_level", "info")
	v.SetDefault("experiment.name", "engine_comparison")
	v.SetDefault("experiment.games", 10)
	v.SetDefault("experiment.output_dir", "experiments")
}

// Load layers defaults, the optional config file at path and PERFECTPLAY_* environment
// variables, in increasing priority. Flags bound to v override all three.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := game.ParseKind(c.Game); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := game.ParsePlayer(c.FirstPlayer); err != nil {
		return fmt.Errorf("%w: first_player: %w", ErrInvalidConfig, err)
	}
	for _, p := range []string{c.Player1, c.Player2} {
		switch p {
		case Human, Recursive, Iterative, Random:
		default:
			return fmt.Errorf("%w: unknown player %q, expected human, recursive, iterative or random", ErrInvalidConfig, p)
		}
	}
	if c.MaxDepth < 0 || c.Goroutines < 0 || c.MaxTurns < 0 {
		return fmt.Errorf("%w: max_depth, goroutines and max_turns cannot be negative", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewGame creates the configured game. Start number and board size are checked here.
func (c *Config) NewGame() (*game.Game, error) {
	kind, err := game.ParseKind(c.Game)
	if err != nil {
		return nil, err
	}
	first, err := game.ParsePlayer(c.FirstPlayer)
	if err != nil {
		return nil, err
	}
	return game.New(kind, first, game.Options{StartNumber: c.StartNumber, BoardSize: c.BoardSize})
}

// CheckSearchable fails for games whose positions can repeat unless a search depth limit is
// set. The search then ends with searcher.ErrDepthExceeded instead of running forever.
func (c *Config) CheckSearchable() error {
	kind, err := game.ParseKind(c.Game)
	if err != nil {
		return err
	}
	if kind == game.Chopsticks && c.MaxDepth == 0 {
		return ErrUnboundedSearch
	}
	return nil
}

// HasMinimaxPlayer reports whether either side is played by a search engine.
func (c *Config) HasMinimaxPlayer() bool {
	for _, p := range []string{c.Player1, c.Player2} {
		if p == Recursive || p == Iterative {
			return true
		}
	}
	return false
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
