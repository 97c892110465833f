package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

type employeeRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (r employeeRequest) validate() error {
	if r.Name == "" {
		return required("name")
	}
	if r.Title == "" {
		return required("title")
	}
	return nil
}

type candidateRequest struct {
	Name string `json:"name"`
}

func (s *server) handleListEmployees(c *fiber.Ctx) error {
	list, err := s.repo.Employees().List(c.Context())
	if err != nil {
		return errors.WrapFail(err, "list employees")
	}
	return c.JSON(list)
}

func (s *server) handleGetEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "employee_id")
	if err != nil {
		return err
	}

	emp, err := s.repo.Employees().Get(c.Context(), id)
	if err != nil {
		return errors.WrapFail(err, "get employee")
	}
	if emp == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "employee %d", id))
	}

	return c.JSON(emp)
}

func (s *server) handleCreateEmployee(c *fiber.Ctx) error {
	var req employeeRequest
	err := parseBody(c, &req)
	if err != nil {
		return err
	}

	err = req.validate()
	if err != nil {
		return err
	}

	emp, err := s.repo.Employees().Create(c.Context(), req.Name, req.Title)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "create employee"))
	}

	return c.Status(http.StatusCreated).JSON(emp)
}

func (s *server) handleUpdateEmployee(c *fiber.Ctx) error {
	id, err := paramID(c, "employee_id")
	if err != nil {
		return err
	}

	var req employeeRequest
	err = parseBody(c, &req)
	if err != nil {
		return err
	}

	err = req.validate()
	if err != nil {
		return err
	}

	emp, err := s.repo.Employees().Update(c.Context(), id, req.Name, req.Title)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "update employee"))
	}
	if emp == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "employee %d", id))
	}

	return c.JSON(emp)
}

func (s *server) handleListCandidates(c *fiber.Ctx) error {
	list, err := s.repo.Candidates().List(c.Context())
	if err != nil {
		return errors.WrapFail(err, "list candidates")
	}
	return c.JSON(list)
}

func (s *server) handleGetCandidate(c *fiber.Ctx) error {
	id, err := paramID(c, "candidate_id")
	if err != nil {
		return err
	}

	cand, err := s.repo.Candidates().Get(c.Context(), id)
	if err != nil {
		return errors.WrapFail(err, "get candidate")
	}
	if cand == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "candidate %d", id))
	}

	return c.JSON(cand)
}

func (s *server) handleCreateCandidate(c *fiber.Ctx) error {
	var req candidateRequest
	err := parseBody(c, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return required("name")
	}

	cand, err := s.repo.Candidates().Create(c.Context(), req.Name)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "create candidate"))
	}

	return c.Status(http.StatusCreated).JSON(cand)
}

func (s *server) handleUpdateCandidate(c *fiber.Ctx) error {
	id, err := paramID(c, "candidate_id")
	if err != nil {
		return err
	}

	var req candidateRequest
	err = parseBody(c, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return required("name")
	}

	cand, err := s.repo.Candidates().Update(c.Context(), id, req.Name)
	if err != nil {
		return s.fail(c, errors.WrapFail(err, "update candidate"))
	}
	if cand == nil {
		return s.fail(c, errors.Wrapf(models.ErrNotFound, "candidate %d", id))
	}

	return c.JSON(cand)
}
