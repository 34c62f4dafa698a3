// Package http contains the gin handlers for the ZOF service: solve
// requests in, root-plus-trace results out.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zof-project/zof/internal/infrastructure/config"
	"github.com/zof-project/zof/internal/infrastructure/logging"
	"github.com/zof-project/zof/internal/infrastructure/monitoring"
	"github.com/zof-project/zof/internal/solver"
)

// Version is the service version reported by the banner endpoint.
const Version = "1.0.0"

// Handlers contains all HTTP handlers.
type Handlers struct {
	logger  *logging.Logger
	metrics *monitoring.Metrics
	solver  config.SolverConfig
}

// NewHandlers creates a new handler set.
func NewHandlers(logger *logging.Logger, metrics *monitoring.Metrics, solverCfg config.SolverConfig) *Handlers {
	return &Handlers{logger: logger, metrics: metrics, solver: solverCfg}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "ZOF Solver",
		"version": Version,
	})
}

// Health handles the health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"methods": len(solver.Methods()),
	})
}

// ListMethods lists the supported methods and their required parameters.
func (h *Handlers) ListMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"methods": solver.Methods(),
	})
}

// Solve runs one root-finding request to completion and returns the root
// together with the full iteration trace. Exhausting the iteration cap is
// a 200 with converged=false; input and numerical failures map to 4xx.
func (h *Handlers) Solve(c *gin.Context) {
	requestID := uuid.NewString()

	var req solver.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.RecordSolve("unknown", monitoring.OutcomeRejected, 0, -1)
		c.JSON(http.StatusBadRequest, gin.H{
			"request_id": requestID,
			"error":      "malformed request body: " + err.Error(),
			"kind":       "bad_request",
		})
		return
	}

	method := string(req.Method)
	if req.MaxIterations != nil && *req.MaxIterations > h.solver.MaxIterationsCap {
		h.metrics.RecordSolve(method, monitoring.OutcomeRejected, 0, -1)
		c.JSON(http.StatusBadRequest, gin.H{
			"request_id": requestID,
			"error":      "max_iterations exceeds the service cap",
			"kind":       "invalid_parameter",
		})
		return
	}

	start := time.Now()
	res, err := solver.Solve(req)
	elapsed := time.Since(start)

	if err != nil {
		status, kind, partial := classify(err)
		h.metrics.RecordSolve(method, monitoring.OutcomeFailed, elapsed, -1)
		h.logger.Warn("solve failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("kind", kind),
			zap.Error(err),
		)

		body := gin.H{
			"request_id": requestID,
			"error":      err.Error(),
			"kind":       kind,
		}
		if partial != nil {
			body["trace"] = partial
		}
		c.JSON(status, body)
		return
	}

	outcome := monitoring.OutcomeConverged
	if !res.Converged {
		outcome = monitoring.OutcomeExhausted
	}
	iterations := len(res.Trace) - 1
	h.metrics.RecordSolve(method, outcome, elapsed, iterations)
	h.logger.Info("solve finished",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.Bool("converged", res.Converged),
		zap.Float64("root", res.Root),
		zap.Int("iterations", iterations),
		zap.Duration("elapsed", elapsed),
	)

	c.JSON(http.StatusOK, gin.H{
		"request_id":  requestID,
		"converged":   res.Converged,
		"root":        res.Root,
		"stop_reason": res.StopReason,
		"trace":       res.Trace,
		"summary":     solver.Summarize(res),
	})
}
