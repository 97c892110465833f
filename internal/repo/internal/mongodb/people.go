package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	mng "github.com/nikmy/intersched/pkg/mongotools"
)

type employees struct {
	coll *mongo.Collection
	seq  counters
}

func (e employees) List(ctx context.Context) ([]models.Employee, error) {
	c, err := e.coll.Find(ctx, mng.All(), byID)
	if err != nil {
		return nil, errors.WrapFail(err, "find employees")
	}

	list, err := mng.Decode[models.Employee](ctx, c)
	return list, errors.WrapFail(err, "read employees")
}

func (e employees) Get(ctx context.Context, id int64) (*models.Employee, error) {
	emp, err := mng.FindOne[models.Employee](e.coll.FindOne(ctx, mng.ID(id)))
	return emp, errors.WrapFail(err, "find employee by id")
}

func (e employees) Create(ctx context.Context, name string, title string) (*models.Employee, error) {
	id, err := e.seq.next(ctx, collEmployees)
	if err != nil {
		return nil, err
	}

	emp := models.Employee{ID: id, Name: name, Title: title}
	_, err = e.coll.InsertOne(ctx, emp)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert employee")
	}

	return &emp, nil
}

func (e employees) Update(ctx context.Context, id int64, name string, title string) (*models.Employee, error) {
	r := e.coll.FindOneAndUpdate(
		ctx,
		mng.ID(id),
		mng.SetAll(
			bson.M{models.EmployeeFieldName: name},
			bson.M{models.EmployeeFieldTitle: title},
		),
		returnUpdated(),
	)

	emp, err := mng.FindOne[models.Employee](r)
	return emp, errors.WrapFail(err, "update employee")
}

type candidates struct {
	coll *mongo.Collection
	seq  counters
}

func (c candidates) List(ctx context.Context) ([]models.Candidate, error) {
	cur, err := c.coll.Find(ctx, mng.All(), byID)
	if err != nil {
		return nil, errors.WrapFail(err, "find candidates")
	}

	list, err := mng.Decode[models.Candidate](ctx, cur)
	return list, errors.WrapFail(err, "read candidates")
}

func (c candidates) Get(ctx context.Context, id int64) (*models.Candidate, error) {
	cand, err := mng.FindOne[models.Candidate](c.coll.FindOne(ctx, mng.ID(id)))
	return cand, errors.WrapFail(err, "find candidate by id")
}

func (c candidates) Create(ctx context.Context, name string) (*models.Candidate, error) {
	id, err := c.seq.next(ctx, collCandidates)
	if err != nil {
		return nil, err
	}

	cand := models.Candidate{ID: id, Name: name}
	_, err = c.coll.InsertOne(ctx, cand)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert candidate")
	}

	return &cand, nil
}

func (c candidates) Update(ctx context.Context, id int64, name string) (*models.Candidate, error) {
	r := c.coll.FindOneAndUpdate(
		ctx,
		mng.ID(id),
		mng.SetAll(bson.M{models.CandidateFieldName: name}),
		returnUpdated(),
	)

	cand, err := mng.FindOne[models.Candidate](r)
	return cand, errors.WrapFail(err, "update candidate")
}
