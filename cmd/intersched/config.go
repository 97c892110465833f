package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/intersched/internal/api"
	"github.com/nikmy/intersched/internal/cache"
	"github.com/nikmy/intersched/internal/repo"
	"github.com/nikmy/intersched/internal/telegram"
	"github.com/nikmy/intersched/pkg/environment"
	"github.com/nikmy/intersched/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	HTTP        api.Config      `yaml:"HTTP"`
	Storage     repo.Config     `yaml:"Storage"`
	Cache       cache.Config    `yaml:"Cache"`
	Telegram    telegram.Config `yaml:"Telegram"`
}

type flags struct {
	config string
	env    string
	dotenv string
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "config.yaml", "path to config file")
	flag.StringVar(&f.env, "env", "", "environment (dev, prod), overrides config")
	flag.StringVar(&f.dotenv, "dotenv", ".env", "optional file with environment variables")
	flag.Parse()
	return f
}

// loadConfig reads the yaml config, expanding ${VAR} references from the
// process environment and the optional dotenv file.
func loadConfig(f flags) (*Config, error) {
	err := godotenv.Load(f.dotenv)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WrapFailf(err, "load %q", f.dotenv)
	}

	path, err := filepath.Abs(f.config)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", f.config)
	}

	var cfg Config
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	return &cfg, nil
}
