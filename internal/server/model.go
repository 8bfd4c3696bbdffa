package server

import (
	"github.com/paradise-calc/paradise/internal/domain"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ProjectionResponse answers POST /v1/projection.
type ProjectionResponse struct {
	Points  []domain.ProjectionPoint `json:"points"`
	Summary domain.ScenarioSummary   `json:"summary"`
}

// SweepRequest is the body of POST /v1/sweep.
type SweepRequest struct {
	Input     domain.ProjectionInput      `json:"input"`
	Parameter domain.SensitivityParameter `json:"parameter"`
}

// SweepResponse answers POST /v1/sweep.
type SweepResponse struct {
	Parameter string                     `json:"parameter"`
	Results   []domain.SensitivityResult `json:"results"`
}

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Input     domain.ProjectionInput `json:"input"`
	TargetAge int                    `json:"target_age"`
}
