package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
	mng "github.com/nikmy/intersched/pkg/mongotools"
)

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

const (
	collJobs         = "jobs"
	collEmployees    = "employees"
	collCandidates   = "candidates"
	collInterviewers = "interviewers"
	collInterviewees = "interviewees"
	collCounters     = "counters"
)

var indexes = map[string]mongo.IndexModel{
	collInterviewers: {
		Keys: bson.D{
			{Key: models.InterviewerFieldJobID, Value: 1},
			{Key: models.InterviewerFieldEmployeeID, Value: 1},
		},
		Options: options.Index().SetName("job_employee").SetUnique(true),
	},
	collInterviewees: {
		Keys: bson.D{
			{Key: models.IntervieweeFieldJobID, Value: 1},
			{Key: models.IntervieweeFieldCandidateID, Value: 1},
		},
		Options: options.Index().SetName("job_candidate").SetUnique(true),
	},
}

func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	c := New(client.Database(cfg.Database), log)

	err = c.Ping(ctx)
	if err == nil {
		err = c.EnsureIndexes(ctx)
	}
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return c, nil
}

func New(db *mongo.Database, log logger.Logger) *Client {
	return &Client{
		db:  db,
		log: log.With("mongo_repo"),
	}
}

type Client struct {
	db  *mongo.Database
	log logger.Logger
}

func (c *Client) Jobs() models.JobsRepo {
	return jobs{coll: c.db.Collection(collJobs), seq: c.counters()}
}

func (c *Client) Employees() models.EmployeesRepo {
	return employees{coll: c.db.Collection(collEmployees), seq: c.counters()}
}

func (c *Client) Candidates() models.CandidatesRepo {
	return candidates{coll: c.db.Collection(collCandidates), seq: c.counters()}
}

func (c *Client) Interviewers() models.InterviewersRepo {
	return interviewers{
		coll:    c.db.Collection(collInterviewers),
		jobs:    c.db.Collection(collJobs),
		members: c.db.Collection(collEmployees),
	}
}

func (c *Client) Interviewees() models.IntervieweesRepo {
	return interviewees{
		coll:    c.db.Collection(collInterviewees),
		jobs:    c.db.Collection(collJobs),
		members: c.db.Collection(collCandidates),
	}
}

func (c *Client) counters() counters {
	return counters{c.db.Collection(collCounters)}
}

func (c *Client) EnsureIndexes(ctx context.Context) error {
	for coll, idx := range indexes {
		_, err := c.db.Collection(coll).Indexes().CreateOne(ctx, idx)
		if err != nil {
			return errors.WrapFailf(err, "create index on %s", coll)
		}
	}
	return nil
}

// RunTxn needs a replica set. Reads inside fn use snapshot read concern.
func (c *Client) RunTxn(ctx context.Context, fn func(ctx context.Context, c models.Client) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx, c)
	}

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return c.db.Client().UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(sc mongo.SessionContext) (any, error) {
			return nil, fn(sc, c)
		}, txnOpts)
		return err
	})
}

func (c *Client) Ping(ctx context.Context) error {
	return errors.WrapFail(c.db.Client().Ping(ctx, readpref.Primary()), "ping mongo")
}

func (c *Client) Close(ctx context.Context) error {
	return errors.WrapFail(c.db.Client().Disconnect(ctx), "disconnect from mongo")
}

const counterFieldSeq = "seq"

// counters hands out sequential int64 ids, one sequence per collection.
type counters struct {
	coll *mongo.Collection
}

func (c counters) next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}

	err := c.coll.FindOneAndUpdate(
		ctx,
		mng.ID(name),
		mng.Inc(counterFieldSeq, 1),
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, errors.WrapFailf(err, "increment %s counter", name)
	}

	return doc.Seq, nil
}

func conflict(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(models.ErrConflict, "duplicate key")
	}
	return err
}
