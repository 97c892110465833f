package models

import "context"

//go:generate mockgen -destination=mocks/jobs.go -package=mocks . JobsRepo

type JobsRepo interface {
	List(ctx context.Context) ([]Job, error)

	// Get returns nil if there is no job with such id
	Get(ctx context.Context, id int64) (*Job, error)

	Create(ctx context.Context, name string) (*Job, error)

	// Update returns nil if there is no job with such id
	Update(ctx context.Context, id int64, name string) (*Job, error)
}

type Job struct {
	ID   int64  `json:"id"   bson:"_id"`
	Name string `json:"name" bson:"name"`
}

const (
	JobFieldID   = "_id"
	JobFieldName = "name"
)
