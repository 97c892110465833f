package models

import "context"

//go:generate mockgen -destination=mocks/client.go -package=mocks . Client

type Client interface {
	Jobs() JobsRepo
	Employees() EmployeesRepo
	Candidates() CandidatesRepo
	Interviewers() InterviewersRepo
	Interviewees() IntervieweesRepo

	// RunTxn runs fn in a transaction. Reads made through the client passed
	// to fn observe one consistent snapshot; writes are committed only if
	// fn returns nil. Nested calls join the outer transaction.
	RunTxn(ctx context.Context, fn func(ctx context.Context, c Client) error) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
