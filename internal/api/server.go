package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/intersched/internal/availability"
	"github.com/nikmy/intersched/internal/metrics"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

const requestIDKey = "requestid"

func NewServer(cfg Config, log logger.Logger, repo models.Client, sched Scheduler) Server {
	return newServer(cfg, log, repo, sched)
}

func newServer(cfg Config, log logger.Logger, repo models.Client, sched Scheduler) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		BodyLimit:               cfg.HTTP.BodyLimit,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fErr *fiber.Error
		if errors.As(err, &fErr) {
			return sendError(c, fErr.Code, fErr.Message)
		}

		serveLog.Errorf("request %v: %s", c.Locals(requestIDKey), errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		repo:  repo,
		sched: sched,
		http:  fiber.New(fiberCfg),
		addr:  cfg.HTTP.Addr,
		log:   serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	repo  models.Client
	sched Scheduler
	http  *fiber.App
	addr  string
	log   logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Use(recover.New())
	s.http.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	s.http.Use(s.observe)

	s.http.Get("/healthz", s.handleHealth)
	s.http.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.http.Get("/job", s.handleListJobs)
	s.http.Post("/job", s.handleCreateJob)
	s.http.Get("/job/schedule/:job_id/:candidate_id", s.handleSchedule)
	s.http.Get("/job/:job_id/interviewers", s.handleListInterviewers)
	s.http.Get("/job/:job_id", s.handleGetJob)
	s.http.Put("/job/:job_id", s.handleUpdateJob)

	s.http.Post("/employee/availability", s.handleAddInterviewer)
	s.http.Put("/employee/availability", s.handleUpdateInterviewer)
	s.http.Get("/employee", s.handleListEmployees)
	s.http.Post("/employee", s.handleCreateEmployee)
	s.http.Get("/employee/:employee_id", s.handleGetEmployee)
	s.http.Put("/employee/:employee_id", s.handleUpdateEmployee)

	s.http.Post("/candidate/availability", s.handleAddInterviewee)
	s.http.Put("/candidate/availability", s.handleUpdateInterviewee)
	s.http.Get("/candidate", s.handleListCandidates)
	s.http.Post("/candidate", s.handleCreateCandidate)
	s.http.Get("/candidate/:candidate_id", s.handleGetCandidate)
	s.http.Put("/candidate/:candidate_id", s.handleUpdateCandidate)
}

func (s *server) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = http.StatusInternalServerError
		var fErr *fiber.Error
		if errors.As(err, &fErr) {
			status = fErr.Code
		}
	}

	metrics.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start))
	return err
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	err := s.repo.Ping(c.Context())
	if err != nil {
		s.log.Warn(err)
		return sendError(c, http.StatusServiceUnavailable, "storage is unavailable")
	}
	return c.JSON(map[string]string{"status": "OK"})
}

// fail answers domain errors and passes the rest to the error handler.
func (s *server) fail(c *fiber.Ctx, err error) error {
	var vErr *availability.ValidationError
	switch {
	case errors.As(err, &vErr):
		return sendError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, models.ErrNotFound):
		return sendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrConflict):
		return sendError(c, http.StatusConflict, err.Error())
	default:
		return err
	}
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

const errNotJSON = "invalid request, expected header-content_type: application/json"

// parseBody decodes a JSON request body into v.
func parseBody(c *fiber.Ctx, v any) error {
	if !c.Is("json") {
		return fiber.NewError(http.StatusBadRequest, errNotJSON)
	}

	err := c.BodyParser(v)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "bad json")
	}
	return nil
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid parameter \""+name+"\"")
	}
	return int64(id), nil
}

func required(field string) error {
	return fiber.NewError(http.StatusBadRequest, "missing required field \""+field+"\"")
}
