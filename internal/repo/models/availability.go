package models

import "context"

//go:generate mockgen -destination=mocks/availability.go -package=mocks . InterviewersRepo,IntervieweesRepo

// InterviewersRepo stores interviewer availability, one record per (job, employee).
type InterviewersRepo interface {
	// ListByJob returns the job's interviewers ordered by employee id.
	ListByJob(ctx context.Context, jobID int64) ([]Interviewer, error)

	// Get returns nil if the employee is not an interviewer for the job
	Get(ctx context.Context, jobID int64, employeeID int64) (*Interviewer, error)

	// Create fails with ErrConflict if the record exists or refers
	// to an unknown job or employee.
	Create(ctx context.Context, iv Interviewer) error

	// Update replaces the availability and reports whether the record was found.
	Update(ctx context.Context, iv Interviewer) (found bool, err error)
}

// IntervieweesRepo stores candidate availability, one record per (job, candidate).
type IntervieweesRepo interface {
	Get(ctx context.Context, jobID int64, candidateID int64) (*Interviewee, error)
	Create(ctx context.Context, iv Interviewee) error
	Update(ctx context.Context, iv Interviewee) (found bool, err error)
}

// Interviewer holds availability in its at-rest text form.
type Interviewer struct {
	JobID        int64  `json:"job_id"       bson:"job_id"`
	EmployeeID   int64  `json:"employee_id"  bson:"employee_id"`
	Availability string `json:"availability" bson:"availability"`
}

// Interviewee holds availability in its at-rest text form.
type Interviewee struct {
	JobID        int64  `json:"job_id"       bson:"job_id"`
	CandidateID  int64  `json:"candidate_id" bson:"candidate_id"`
	Availability string `json:"availability" bson:"availability"`
}

const (
	InterviewerFieldJobID        = "job_id"
	InterviewerFieldEmployeeID   = "employee_id"
	InterviewerFieldAvailability = "availability"

	IntervieweeFieldJobID        = "job_id"
	IntervieweeFieldCandidateID  = "candidate_id"
	IntervieweeFieldAvailability = "availability"
)
