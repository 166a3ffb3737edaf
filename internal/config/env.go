package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultN is used when N is not set
const DefaultN = 10

// Env holds settings read straight from the process environment
type Env struct {
	N int `env:"N" envDefault:"10"`
}

// ParseEnv loads Env. A set but unparseable N is an error, never a fallback.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
