package http

import (
	"errors"
	"net/http"

	"github.com/zof-project/zof/internal/expr"
	"github.com/zof-project/zof/internal/solver"
)

// classify maps a solver failure onto an HTTP status, a stable kind string
// for clients, and the partial trace when one was accumulated.
//
// Bad inputs (unparsable expression, missing parameter, bad bracket) are
// 400; failures that only surface while iterating (domain errors, zero
// denominators) are 422 so clients can distinguish "fix the request" from
// "this method cannot solve this function here".
func classify(err error) (int, string, solver.Trace) {
	var partial solver.Trace
	var ierr *solver.IterationError
	if errors.As(err, &ierr) {
		partial = ierr.Trace
	}

	var (
		parseErr   *expr.ParseError
		paramErr   *solver.InvalidParameterError
		bracketErr *solver.InvalidBracketError
		divErr     *solver.DivergenceError
		evalErr    *expr.EvalError
	)

	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, "parse_error", partial
	case errors.As(err, &paramErr):
		return http.StatusBadRequest, "invalid_parameter", partial
	case errors.As(err, &bracketErr):
		return http.StatusBadRequest, "invalid_bracket", partial
	case errors.As(err, &divErr):
		return http.StatusUnprocessableEntity, "divergence", partial
	case errors.As(err, &evalErr):
		return http.StatusUnprocessableEntity, "evaluation_error", partial
	}
	return http.StatusInternalServerError, "internal", partial
}
