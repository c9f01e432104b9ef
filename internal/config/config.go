package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DbUrl string `env:"DB_URL,required"`
	Port  string `env:"PORT" envDefault:"8080"`

	JwtSecret    string `env:"JWT_SECRET,required"`
	JwtAlgorithm string `env:"JWT_ALGORITHM" envDefault:"HS256"`

	AccessTokenTTLMinutes int `env:"ACCESS_TOKEN_TTL_MINUTES" envDefault:"30"`
	RefreshTokenTTLDays   int `env:"REFRESH_TOKEN_TTL_DAYS" envDefault:"7"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

func New() (*Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		return nil, err
	}

	if strings.TrimSpace(conf.JwtSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be blank")
	}

	switch conf.JwtAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM: %q", conf.JwtAlgorithm)
	}

	if conf.AccessTokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL_MINUTES must be positive")
	}

	if conf.RefreshTokenTTLDays <= 0 {
		return nil, fmt.Errorf("REFRESH_TOKEN_TTL_DAYS must be positive")
	}

	return &conf, nil
}
