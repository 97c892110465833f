package api

import (
	"context"

	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/internal/repo/models"
)

//go:generate mockgen -destination=mocks_test.go -package=api . Scheduler

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Scheduler interface {
	Schedule(ctx context.Context, jobID int64, candidateID int64) (matcher.Result, error)
	ListInterviewers(ctx context.Context, jobID int64) ([]models.Interviewer, error)

	AddInterviewer(ctx context.Context, jobID int64, employeeID int64, raw []byte) (models.Interviewer, error)
	UpdateInterviewer(ctx context.Context, jobID int64, employeeID int64, raw []byte) (models.Interviewer, error)
	AddInterviewee(ctx context.Context, jobID int64, candidateID int64, raw []byte) (models.Interviewee, error)
	UpdateInterviewee(ctx context.Context, jobID int64, candidateID int64, raw []byte) (models.Interviewee, error)
}
