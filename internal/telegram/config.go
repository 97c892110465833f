package telegram

import "time"

type Config struct {
	Enabled      bool          `yaml:"enabled"`
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`
}
