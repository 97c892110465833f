package repo

import (
	"github.com/nikmy/intersched/internal/repo/internal/mongodb"
	"github.com/nikmy/intersched/internal/repo/internal/postgres"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
)

type Config struct {
	Driver Driver `yaml:"driver"`

	Postgres postgres.Config `yaml:"postgres"`
	Mongo    mongodb.Config  `yaml:"mongo"`
}
