package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type interviewerRequest struct {
	JobID        int64           `json:"job_id"`
	EmployeeID   int64           `json:"employee_id"`
	Availability json.RawMessage `json:"availability"`
}

type intervieweeRequest struct {
	JobID        int64           `json:"job_id"`
	CandidateID  int64           `json:"candidate_id"`
	Availability json.RawMessage `json:"availability"`
}

func parseInterviewer(c *fiber.Ctx) (interviewerRequest, error) {
	var req interviewerRequest
	err := parseBody(c, &req)
	if err != nil {
		return req, err
	}

	switch {
	case req.JobID <= 0:
		return req, required("job_id")
	case req.EmployeeID <= 0:
		return req, required("employee_id")
	}
	return req, nil
}

func parseInterviewee(c *fiber.Ctx) (intervieweeRequest, error) {
	var req intervieweeRequest
	err := parseBody(c, &req)
	if err != nil {
		return req, err
	}

	switch {
	case req.JobID <= 0:
		return req, required("job_id")
	case req.CandidateID <= 0:
		return req, required("candidate_id")
	}
	return req, nil
}

func (s *server) handleAddInterviewer(c *fiber.Ctx) error {
	req, err := parseInterviewer(c)
	if err != nil {
		return err
	}

	iv, err := s.sched.AddInterviewer(c.Context(), req.JobID, req.EmployeeID, req.Availability)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(iv)
}

func (s *server) handleUpdateInterviewer(c *fiber.Ctx) error {
	req, err := parseInterviewer(c)
	if err != nil {
		return err
	}

	iv, err := s.sched.UpdateInterviewer(c.Context(), req.JobID, req.EmployeeID, req.Availability)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(iv)
}

func (s *server) handleAddInterviewee(c *fiber.Ctx) error {
	req, err := parseInterviewee(c)
	if err != nil {
		return err
	}

	iv, err := s.sched.AddInterviewee(c.Context(), req.JobID, req.CandidateID, req.Availability)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(iv)
}

func (s *server) handleUpdateInterviewee(c *fiber.Ctx) error {
	req, err := parseInterviewee(c)
	if err != nil {
		return err
	}

	iv, err := s.sched.UpdateInterviewee(c.Context(), req.JobID, req.CandidateID, req.Availability)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(iv)
}
