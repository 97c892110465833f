package models

import "context"

//go:generate mockgen -destination=mocks/people.go -package=mocks . EmployeesRepo,CandidatesRepo

type EmployeesRepo interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int64) (*Employee, error)
	Create(ctx context.Context, name string, title string) (*Employee, error)
	Update(ctx context.Context, id int64, name string, title string) (*Employee, error)
}

type CandidatesRepo interface {
	List(ctx context.Context) ([]Candidate, error)
	Get(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, name string) (*Candidate, error)
	Update(ctx context.Context, id int64, name string) (*Candidate, error)
}

type Employee struct {
	ID    int64  `json:"id"    bson:"_id"`
	Name  string `json:"name"  bson:"name"`
	Title string `json:"title" bson:"title"`
}

type Candidate struct {
	ID   int64  `json:"id"   bson:"_id"`
	Name string `json:"name" bson:"name"`
}

const (
	EmployeeFieldID    = "_id"
	EmployeeFieldName  = "name"
	EmployeeFieldTitle = "title"

	CandidateFieldID   = "_id"
	CandidateFieldName = "name"
)
