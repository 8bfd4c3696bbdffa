// Package server exposes the projection engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/goccy/go-json"
	"github.com/paradise-calc/paradise/internal/calculation"
	"github.com/paradise-calc/paradise/internal/config"
	"github.com/paradise-calc/paradise/internal/domain"
	"github.com/valyala/fasthttp"
)

// Server routes API requests to the calculation engine.
type Server struct {
	cfg    config.ServerConfig
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger calculation.Logger
}

// New creates a server. A nil logger discards output.
func New(cfg config.ServerConfig, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	return &Server{
		cfg:    cfg,
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// Handler is the fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch path {
	case "/healthz":
		if !ctx.IsGet() {
			s.methodNotAllowed(ctx, fasthttp.MethodGet)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/v1/projection", "/v1/comparison", "/v1/sweep", "/v1/solve":
		if !ctx.IsPost() {
			s.methodNotAllowed(ctx, fasthttp.MethodPost)
			return
		}
		switch path {
		case "/v1/projection":
			s.handleProjection(ctx)
		case "/v1/comparison":
			s.handleComparison(ctx)
		case "/v1/sweep":
			s.handleSweep(ctx)
		case "/v1/solve":
			s.handleSolve(ctx)
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var in domain.ProjectionInput
	if !decodeBody(ctx, &in) {
		return
	}
	if err := config.ValidateInput(&in); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	points := calculation.Project(in)
	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		Points:  points,
		Summary: calculation.Summarize(domain.PlanScenarioName, in, points),
	})
}

func (s *Server) handleComparison(ctx *fasthttp.RequestCtx) {
	var cfg domain.Configuration
	if !decodeBody(ctx, &cfg) {
		return
	}
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	results, err := s.engine.RunScenarios(ctx, &cfg)
	if err != nil {
		s.logger.Errorf("comparison failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, results)
}

func (s *Server) handleSweep(ctx *fasthttp.RequestCtx) {
	var req SweepRequest
	if !decodeBody(ctx, &req) {
		return
	}
	if err := config.ValidateInput(&req.Input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if req.Parameter.Steps > s.cfg.MaxSweepSteps {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("steps must be at most %d", s.cfg.MaxSweepSteps))
		return
	}

	results, err := calculation.Sweep(req.Input, req.Parameter)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, SweepResponse{Parameter: req.Parameter.Name, Results: results})
}

func (s *Server) handleSolve(ctx *fasthttp.RequestCtx) {
	var req SolveRequest
	if !decodeBody(ctx, &req) {
		return
	}
	if err := config.ValidateInput(&req.Input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	res, err := calculation.RequiredMonthlySaving(req.Input, req.TargetAge)
	switch {
	case errors.Is(err, calculation.ErrTargetUnreachable):
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
	default:
		writeJSON(ctx, fasthttp.StatusOK, res)
	}
}

func (s *Server) methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set("Allow", allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
}

func decodeBody(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// ListenAndServe serves on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.logger.Infof("paradise API listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "paradise",
		ReadTimeout:        s.cfg.ReadTimeout,
		WriteTimeout:       s.cfg.WriteTimeout,
		MaxRequestBodySize: s.cfg.MaxBodyBytes,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errCh
	}
}
