package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	mng "github.com/nikmy/intersched/pkg/mongotools"
)

var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func returnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

type jobs struct {
	coll *mongo.Collection
	seq  counters
}

func (j jobs) List(ctx context.Context) ([]models.Job, error) {
	c, err := j.coll.Find(ctx, mng.All(), byID)
	if err != nil {
		return nil, errors.WrapFail(err, "find jobs")
	}

	list, err := mng.Decode[models.Job](ctx, c)
	return list, errors.WrapFail(err, "read jobs")
}

func (j jobs) Get(ctx context.Context, id int64) (*models.Job, error) {
	job, err := mng.FindOne[models.Job](j.coll.FindOne(ctx, mng.ID(id)))
	return job, errors.WrapFail(err, "find job by id")
}

func (j jobs) Create(ctx context.Context, name string) (*models.Job, error) {
	id, err := j.seq.next(ctx, collJobs)
	if err != nil {
		return nil, err
	}

	job := models.Job{ID: id, Name: name}
	_, err = j.coll.InsertOne(ctx, job)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert job")
	}

	return &job, nil
}

func (j jobs) Update(ctx context.Context, id int64, name string) (*models.Job, error) {
	r := j.coll.FindOneAndUpdate(
		ctx,
		mng.ID(id),
		mng.SetAll(bson.M{models.JobFieldName: name}),
		returnUpdated(),
	)

	job, err := mng.FindOne[models.Job](r)
	return job, errors.WrapFail(err, "update job")
}
