package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the pacing and defaults of a match.
type Game struct {
	AIDelay         time.Duration `yaml:"ai-delay" env:"GAME_AI_DELAY" env-default:"1s"`
	RevealDelay     time.Duration `yaml:"reveal-delay" env:"GAME_REVEAL_DELAY" env-default:"1500ms"`
	DefaultStrategy string        `yaml:"default-strategy" env:"GAME_DEFAULT_STRATEGY" env-default:"balanced"`
	SessionTTL      time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Strategy returns the configured default strategy, or balanced when the
// configured name is unknown.
func (that *Game) Strategy() entity.Strategy {
	strategy := entity.Strategy(that.DefaultStrategy)
	if !strategy.IsValid() {
		return entity.StrategyBalanced
	}

	return strategy
}
