// Package repo gives access to the relational data of the scheduler: jobs,
// employees, candidates and the availability records that link them.
package repo

import (
	"context"

	"github.com/nikmy/intersched/internal/repo/internal/mongodb"
	"github.com/nikmy/intersched/internal/repo/internal/postgres"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

type Client = models.Client

func New(ctx context.Context, log logger.Logger, cfg Config) (Client, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		c, err := postgres.Connect(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, errors.WrapFail(err, "connect to postgres")
		}
		return c, nil
	case DriverMongo:
		c, err := mongodb.Connect(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, errors.WrapFail(err, "connect to mongo")
		}
		return c, nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
