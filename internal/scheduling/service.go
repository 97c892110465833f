// Package scheduling finds the common interview slots of a candidate and the
// interviewers of a job, and keeps their availability records.
package scheduling

import (
	"context"
	"time"

	"github.com/nikmy/intersched/internal/availability"
	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/internal/metrics"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

//go:generate mockgen -destination=mocks_test.go -package=scheduling . Cache

type Cache interface {
	// Get returns nil on miss. The returned version must be passed to Put.
	Get(ctx context.Context, jobID int64, candidateID int64) (*matcher.Result, int64, error)
	Put(ctx context.Context, jobID int64, candidateID int64, version int64, res matcher.Result) error
	Invalidate(ctx context.Context, jobID int64) error
}

// New creates a service. cache may be nil.
func New(repo models.Client, cache Cache, log logger.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("scheduling"),
	}
}

type Service struct {
	repo  models.Client
	cache Cache
	log   logger.Logger
}

// Schedule matches the candidate's availability against every interviewer of
// the job. A failed match is a Result, not an error. models.ErrNotFound is
// returned if the candidate has no availability for the job.
func (s *Service) Schedule(ctx context.Context, jobID int64, candidateID int64) (matcher.Result, error) {
	start := time.Now()

	version, cached := s.lookup(ctx, jobID, candidateID)
	if cached != nil {
		return *cached, nil
	}

	var (
		candidate    availability.Availability
		interviewers []availability.Availability
	)

	err := s.repo.RunTxn(ctx, func(ctx context.Context, c models.Client) error {
		iv, err := c.Interviewees().Get(ctx, jobID, candidateID)
		if err != nil {
			return errors.WrapFail(err, "get candidate availability")
		}
		if iv == nil {
			return errors.Wrapf(models.ErrNotFound, "candidate %d has no availability for job %d", candidateID, jobID)
		}

		list, err := c.Interviewers().ListByJob(ctx, jobID)
		if err != nil {
			return errors.WrapFail(err, "get interviewers availability")
		}

		candidate, err = availability.Decode(iv.Availability)
		if err != nil {
			return errors.WrapFailf(err, "decode availability of candidate %d", candidateID)
		}

		interviewers = make([]availability.Availability, 0, len(list))
		for _, rec := range list {
			a, err := availability.Decode(rec.Availability)
			if err != nil {
				return errors.WrapFailf(err, "decode availability of employee %d", rec.EmployeeID)
			}
			interviewers = append(interviewers, a)
		}

		return nil
	})
	if err != nil {
		return matcher.Result{}, err
	}

	res := matcher.Match(candidate, interviewers)
	metrics.ObserveMatch(res.Kind.String(), time.Since(start))

	if !res.Matched() {
		s.log.Infof("job %d, candidate %d: %s", jobID, candidateID, res.Reason())
	}

	if version >= 0 {
		err = s.cache.Put(ctx, jobID, candidateID, version, res)
		if err != nil {
			s.log.Warn(errors.WrapFail(err, "cache match result"))
		}
	}

	return res, nil
}

// lookup returns -1 as version when the result must not be cached.
func (s *Service) lookup(ctx context.Context, jobID int64, candidateID int64) (int64, *matcher.Result) {
	if s.cache == nil {
		return -1, nil
	}

	res, version, err := s.cache.Get(ctx, jobID, candidateID)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "look up match cache"))
		return -1, nil
	}

	metrics.CacheHit(res != nil)
	return version, res
}

func (s *Service) invalidate(ctx context.Context, jobID int64) {
	if s.cache == nil {
		return
	}

	err := s.cache.Invalidate(ctx, jobID)
	if err != nil {
		s.log.Error(errors.WrapFailf(err, "invalidate cached matches of job %d", jobID))
	}
}

func (s *Service) ListInterviewers(ctx context.Context, jobID int64) ([]models.Interviewer, error) {
	job, err := s.repo.Jobs().Get(ctx, jobID)
	if err != nil {
		return nil, errors.WrapFail(err, "get job")
	}
	if job == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "job %d", jobID)
	}

	list, err := s.repo.Interviewers().ListByJob(ctx, jobID)
	return list, errors.WrapFail(err, "list interviewers")
}
