package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Console   Console   `yaml:"console"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Console struct {
	Prompt         string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"> "`
	HideLegalMoves bool   `yaml:"hide-legal-moves" env:"CONSOLE_HIDE_LEGAL_MOVES"`
}

// Telemetry - tracing is off while Endpoint is empty.
type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"sixes"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
