package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

type jobRequest struct {
	Name string `json:"name"`
}

func (s *server) handleListJobs(c *fiber.Ctx) error {
	jobs, err := s.repo.Jobs().List(c.Context())
	if err != nil {
		return errors.WrapFail(err, "list jobs")
	}
	return c.JSON(jobs)
}

func (s *server) handleGetJob(c *fiber.Ctx) error {
	id, err := paramID(c, "job_id")
	if err != nil {
		return err
	}

	job, err := s.repo.Jobs().Get(c.Context(), id)
	if err != nil {
		return errors.WrapFail(err, "get job")
	}
	if job == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "job %d", id))
	}

	return c.JSON(job)
}

func (s *server) handleCreateJob(c *fiber.Ctx) error {
	var req jobRequest
	err := parseBody(c, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return required("name")
	}

	job, err := s.repo.Jobs().Create(c.Context(), req.Name)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "create job"))
	}

	return c.Status(http.StatusCreated).JSON(job)
}

func (s *server) handleUpdateJob(c *fiber.Ctx) error {
	id, err := paramID(c, "job_id")
	if err != nil {
		return err
	}

	var req jobRequest
	err = parseBody(c, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return required("name")
	}

	job, err := s.repo.Jobs().Update(c.Context(), id, req.Name)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "update job"))
	}
	if job == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "job %d", id))
	}

	return c.JSON(job)
}

func (s *server) handleListInterviewers(c *fiber.Ctx) error {
	id, err := paramID(c, "job_id")
	if err != nil {
		return err
	}

	list, err := s.sched.ListInterviewers(c.Context(), id)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(list)
}

// handleSchedule answers with the common hours of every common day, or with
// the reason of the failed match as plain text.
func (s *server) handleSchedule(c *fiber.Ctx) error {
	jobID, err := paramID(c, "job_id")
	if err != nil {
		return err
	}

	candidateID, err := paramID(c, "candidate_id")
	if err != nil {
		return err
	}

	res, err := s.sched.Schedule(c.Context(), jobID, candidateID)
	if err != nil {
		return s.fail(c, err)
	}

	if !res.Matched() {
		return c.Status(http.StatusBadRequest).SendString(res.Reason())
	}

	return c.JSON(res.Slots)
}
