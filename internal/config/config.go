package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address    string        `env:"RUN_ADDRESS"  envDefault:"localhost:8080"`
	SiteURL    string        `env:"SITE_URL"     envDefault:"https://fin5.ru"`
	SessionTTL time.Duration `env:"SESSION_TTL"  envDefault:"1h"`
	LogLvl     string        `env:"LOG_LVL"      envDefault:"info"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.SiteURL, "s", cfg.SiteURL, "site URL the embeddable widget redirects to")
	flag.DurationVar(&cfg.SessionTTL, "t", cfg.SessionTTL, "idle session lifetime")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.SiteURL, "http://") && !strings.HasPrefix(cfg.SiteURL, "https://") {
		cfg.SiteURL = "https://" + cfg.SiteURL
	}

	return cfg
}
