package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogOutput string    `yaml:"log-output" env:"LOG_OUTPUT" env-default:"stderr"`
	Players   Players   `yaml:"players"`
	Publisher Publisher `yaml:"publisher"`
	Redis     Redis     `yaml:"redis"`
}

// Players only names the two sides, the first is always X and the second O.
type Players struct {
	FirstName  string `yaml:"first-name" env:"PLAYER_ONE_NAME" env-default:"Player 1"`
	SecondName string `yaml:"second-name" env:"PLAYER_TWO_NAME" env-default:"Player 2"`
}

// Publisher turns on the Redis ply feed.
type Publisher struct {
	Enabled bool   `yaml:"enabled" env:"PUBLISHER_ENABLED" env-default:"false"`
	Channel string `yaml:"channel" env:"PUBLISHER_CHANNEL" env-default:"tictactoe:plies"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load - reads the YAML file at path with env overrides. A missing file is not
// an error, the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
