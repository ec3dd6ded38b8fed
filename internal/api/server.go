// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package api serves the schedulers over HTTP.
//
//	GET  /api/v1/policies
//	GET  /api/v1/example
//	POST /api/v1/schedule/:policy
//	POST /api/v1/compare
//
// Errors are reported as {"error": "..."} with a 400 status for unusable
// input and 404 for unknown policies and routes.
package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/petenewcomb/cpusched-go"
	"github.com/petenewcomb/cpusched-go/internal/config"
	"github.com/petenewcomb/cpusched-go/internal/workload"
)

type Server struct {
	app    *fiber.App
	config config.Config
	logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	s := &Server{
		config: cfg,
		logger: logger.With("component", "api"),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "cpusched",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	v1 := s.app.Group("/api").Group("/v1")
	v1.Get("/policies", s.policies)
	v1.Get("/example", s.example)
	v1.Post("/schedule/:policy", s.schedule)
	v1.Post("/compare", s.compare)
	return s
}

// App exposes the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on the configured address until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errc <- s.app.Listen(s.config.Addr)
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.app.ShutdownWithContext(context.WithoutCancel(ctx))
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, cpusched.ErrUnknownPolicy):
		code = fiber.StatusNotFound
	case errors.Is(err, cpusched.ErrInvalidProcessSet), errors.Is(err, cpusched.ErrInvalidQuantum):
		code = fiber.StatusBadRequest
	}
	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Path(), "error", err)
	} else {
		s.logger.Debug("request rejected", "path", c.Path(), "status", code, "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) policies(c *fiber.Ctx) error {
	resp := PoliciesResponse{Policies: make([]PolicyInfo, len(cpusched.Policies))}
	for i, p := range cpusched.Policies {
		resp.Policies[i] = PolicyInfo{Name: p.String(), Preemptive: p.Preemptive()}
	}
	return c.JSON(resp)
}

func (s *Server) example(c *fiber.Ctx) error {
	quantum := s.config.Quantum
	return c.JSON(ScheduleRequest{
		Processes: fromProcessSet(workload.LongFirstProcess()),
		Quantum:   &quantum,
	})
}

// parseRequest decodes the body and resolves it against the server
// configuration.
func (s *Server) parseRequest(c *fiber.Ctx) (cpusched.ProcessSet, cpusched.Options, error) {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return cpusched.ProcessSet{}, cpusched.Options{}, fiber.NewError(fiber.StatusBadRequest, "invalid request format: "+err.Error())
	}
	ps, err := toProcessSet(req.Processes)
	if err != nil {
		return cpusched.ProcessSet{}, cpusched.Options{}, err
	}
	opts := s.config.Options()
	if req.Quantum != nil {
		opts.Quantum = *req.Quantum
	}
	if req.Coalesce != nil {
		opts.Coalesce = *req.Coalesce
	}
	return ps, opts, nil
}

func (s *Server) schedule(c *fiber.Ctx) error {
	p, err := cpusched.ParsePolicy(c.Params("policy"))
	if err != nil {
		return err
	}
	ps, opts, err := s.parseRequest(c)
	if err != nil {
		return err
	}
	res, err := cpusched.Simulate(ps, p, opts)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	s.logger.Info("simulated", "run_id", runID, "policy", p, "processes", ps.Len(),
		"avg_waiting", res.Report.AvgWaiting)
	return c.JSON(newScheduleResponse(runID, res))
}

func (s *Server) compare(c *fiber.Ctx) error {
	ps, opts, err := s.parseRequest(c)
	if err != nil {
		return err
	}
	opts.Concurrent = true
	cmp, err := cpusched.Compare(ps, opts)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	s.logger.Info("compared", "run_id", runID, "processes", ps.Len())
	resp := CompareResponse{RunID: runID, Results: make([]Summary, len(cmp.Results))}
	for i, res := range cmp.Results {
		resp.Results[i] = summarize(res.Policy, res.Report.Aggregate)
	}
	return c.JSON(resp)
}
