package solver

// Find runs the selected method's iteration loop over f until one of the
// three termination conditions holds, assembling the trace as it goes.
//
// The loop is a small state machine: Validating (settings, then the
// method's own preconditions) → Iterating → Converged, Exhausted, or
// Failed. Evaluation and divergence failures inside the loop abort it and
// come back as *IterationError carrying the partial trace; the record at
// which the failure occurred is never appended. Exhausting the iteration
// cap is not a failure: the result carries Converged=false and the best
// available estimate.
func Find(f Func, params MethodParams, s Settings) (*Result, error) {
	if f == nil {
		return nil, &InvalidParameterError{Name: "f", Reason: "function is required"}
	}
	if params == nil {
		return nil, &InvalidParameterError{Name: "method", Reason: "method parameters are required"}
	}
	if s.Tolerance <= 0 {
		return nil, &InvalidParameterError{Name: "tolerance", Reason: "must be positive"}
	}
	if s.MaxIterations <= 0 {
		return nil, &InvalidParameterError{Name: "max_iterations", Reason: "must be positive"}
	}

	eng, err := params.newEngine(f)
	if err != nil {
		return nil, err
	}

	rec, err := eng.start()
	if err != nil {
		return nil, err
	}
	trace := Trace{rec}

	// Record 0 can already satisfy the residual tolerance (the starting
	// estimate happens to be a root); it can never trip the cap.
	if stop, reason := shouldStop(rec, 0, s); stop {
		return &Result{Converged: true, Root: rec.X, Trace: trace, StopReason: reason}, nil
	}

	for i := 1; i <= s.MaxIterations; i++ {
		rec, err = eng.step(i)
		if err != nil {
			return nil, &IterationError{Err: err, Trace: trace}
		}
		trace = append(trace, rec)

		if stop, reason := shouldStop(rec, i, s); stop {
			return &Result{
				Converged:  reason != StopMaxIterations,
				Root:       rec.X,
				Trace:      trace,
				StopReason: reason,
			}, nil
		}
	}

	// Unreachable: shouldStop fires StopMaxIterations at i == MaxIterations.
	return &Result{Converged: false, Root: rec.X, Trace: trace, StopReason: StopMaxIterations}, nil
}
