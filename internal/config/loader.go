package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration and validates it. Environment variables win
// over the YAML file, which wins over env-default tags.
//
// The file path comes from CONFIG_PATH, defaulting to "./config.yaml".
// A missing default file is fine (env plus defaults is a complete
// configuration for local runs); a missing explicit CONFIG_PATH is an
// error, since the operator asked for a file that is not there.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config.Load stat %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load validate: %w", err)
	}

	return &cfg, nil
}
