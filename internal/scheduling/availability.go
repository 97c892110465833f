package scheduling

import (
	"context"

	"github.com/nikmy/intersched/internal/availability"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

// normalize validates a submitted availability document and returns its
// at-rest form.
func normalize(raw []byte) (string, error) {
	a, err := availability.Parse(raw)
	if err != nil {
		return "", err
	}
	return availability.Encode(a)
}

// AddInterviewer assigns the employee to the job. Fails with
// models.ErrConflict if already assigned.
func (s *Service) AddInterviewer(ctx context.Context, jobID int64, employeeID int64, raw []byte) (models.Interviewer, error) {
	text, err := normalize(raw)
	if err != nil {
		return models.Interviewer{}, err
	}

	iv := models.Interviewer{JobID: jobID, EmployeeID: employeeID, Availability: text}
	err = s.repo.Interviewers().Create(ctx, iv)
	if err != nil {
		return models.Interviewer{}, errors.WrapFail(err, "create interviewer")
	}

	s.invalidate(ctx, jobID)
	return iv, nil
}

func (s *Service) UpdateInterviewer(ctx context.Context, jobID int64, employeeID int64, raw []byte) (models.Interviewer, error) {
	text, err := normalize(raw)
	if err != nil {
		return models.Interviewer{}, err
	}

	iv := models.Interviewer{JobID: jobID, EmployeeID: employeeID, Availability: text}
	found, err := s.repo.Interviewers().Update(ctx, iv)
	if err != nil {
		return models.Interviewer{}, errors.WrapFail(err, "update interviewer")
	}
	if !found {
		return models.Interviewer{}, errors.Wrapf(models.ErrNotFound, "employee %d is not an interviewer for job %d", employeeID, jobID)
	}

	s.invalidate(ctx, jobID)
	return iv, nil
}

func (s *Service) AddInterviewee(ctx context.Context, jobID int64, candidateID int64, raw []byte) (models.Interviewee, error) {
	text, err := normalize(raw)
	if err != nil {
		return models.Interviewee{}, err
	}

	iv := models.Interviewee{JobID: jobID, CandidateID: candidateID, Availability: text}
	err = s.repo.Interviewees().Create(ctx, iv)
	if err != nil {
		return models.Interviewee{}, errors.WrapFail(err, "create interviewee")
	}

	s.invalidate(ctx, jobID)
	return iv, nil
}

func (s *Service) UpdateInterviewee(ctx context.Context, jobID int64, candidateID int64, raw []byte) (models.Interviewee, error) {
	text, err := normalize(raw)
	if err != nil {
		return models.Interviewee{}, err
	}

	iv := models.Interviewee{JobID: jobID, CandidateID: candidateID, Availability: text}
	found, err := s.repo.Interviewees().Update(ctx, iv)
	if err != nil {
		return models.Interviewee{}, errors.WrapFail(err, "update interviewee")
	}
	if !found {
		return models.Interviewee{}, errors.Wrapf(models.ErrNotFound, "candidate %d is not interviewing for job %d", candidateID, jobID)
	}

	s.invalidate(ctx, jobID)
	return iv, nil
}
