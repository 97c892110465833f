package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/lib/pq"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

//go:embed schema.sql
var schema string

type Config struct {
	DSN string `yaml:"dsn"`

	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`

	// Migrate creates missing tables on start.
	Migrate bool `yaml:"migrate"`
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.WrapFail(err, "open postgres")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	c := New(db, log)

	err = c.Ping(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Migrate {
		err = c.Migrate(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return c, nil
}

func New(db *sql.DB, log logger.Logger) *Client {
	return &Client{
		db:  db,
		q:   db,
		log: log.With("postgres_repo"),
	}
}

type Client struct {
	db  *sql.DB
	q   querier
	log logger.Logger
}

func (c *Client) Jobs() models.JobsRepo                 { return jobs{c.q} }
func (c *Client) Employees() models.EmployeesRepo       { return employees{c.q} }
func (c *Client) Candidates() models.CandidatesRepo     { return candidates{c.q} }
func (c *Client) Interviewers() models.InterviewersRepo { return interviewers{c.q} }
func (c *Client) Interviewees() models.IntervieweesRepo { return interviewees{c.q} }

func (c *Client) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, schema)
	return errors.WrapFail(err, "apply schema")
}

func (c *Client) RunTxn(ctx context.Context, fn func(ctx context.Context, c models.Client) error) error {
	if _, nested := c.q.(*sql.Tx); nested {
		return fn(ctx, c)
	}

	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return errors.WrapFail(err, "begin transaction")
	}

	err = fn(ctx, &Client{db: c.db, q: tx, log: c.log})
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			c.log.Warn(errors.WrapFail(rbErr, "rollback transaction"))
		}
		return err
	}

	return errors.WrapFail(tx.Commit(), "commit transaction")
}

func (c *Client) Ping(ctx context.Context) error {
	return errors.WrapFail(c.db.PingContext(ctx), "ping postgres")
}

func (c *Client) Close(context.Context) error {
	return errors.WrapFail(c.db.Close(), "close postgres connection")
}

// conflict maps constraint violations onto models.ErrConflict.
func conflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation", "foreign_key_violation":
			return errors.Wrap(models.ErrConflict, pqErr.Message)
		}
	}
	return err
}
