package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/zof-project/zof/internal/solver"
)

var solveFlags struct {
	expr    string
	method  string
	g       string
	a       float64
	b       float64
	x0      float64
	x1      float64
	delta   float64
	tol     float64
	maxIter int
	asJSON  bool
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one root-finding request and print the iteration table",
	Long: `Runs the selected method against f(x) = 0. Parameters not given as
flags are prompted for interactively. Examples:

  zof solve --method bisection --expr "x^3 - x - 2" --a 1 --b 2
  zof solve --method newton_raphson --expr "exp(x) - 3*x" --x0 1.5
  zof solve --method fixed_point --expr "x^2 - x - 2" --g "sqrt(x + 2)" --x0 1.5 --json`,
	RunE: runSolve,
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the supported methods and their parameters",
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range solver.Methods() {
			fmt.Printf("%-16s %-22s params: %s\n", m.Method, m.Name, strings.Join(m.Parameters, ", "))
		}
	},
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveFlags.expr, "expr", "", "expression for f(x), e.g. \"x^3 - x - 2\"")
	f.StringVar(&solveFlags.method, "method", "", "one of: bisection, regula_falsi, secant, newton_raphson, fixed_point, modified_secant")
	f.StringVar(&solveFlags.g, "g", "", "rearranged x = g(x) form (fixed_point only)")
	f.Float64Var(&solveFlags.a, "a", 0, "lower bracket endpoint")
	f.Float64Var(&solveFlags.b, "b", 0, "upper bracket endpoint")
	f.Float64Var(&solveFlags.x0, "x0", 0, "initial guess")
	f.Float64Var(&solveFlags.x1, "x1", 0, "second initial guess (secant only)")
	f.Float64Var(&solveFlags.delta, "delta", solver.DefaultDelta, "perturbation fraction (modified_secant only)")
	f.Float64Var(&solveFlags.tol, "tol", solver.DefaultTolerance, "convergence tolerance")
	f.IntVar(&solveFlags.maxIter, "max-iter", solver.DefaultMaxIterations, "iteration cap")
	f.BoolVar(&solveFlags.asJSON, "json", false, "emit the result as JSON instead of a table")
}

func runSolve(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	res, err := solver.Solve(*req)
	if err != nil {
		return err
	}

	if solveFlags.asJSON {
		out, err := sonic.MarshalIndent(map[string]interface{}{
			"converged":   res.Converged,
			"root":        res.Root,
			"stop_reason": res.StopReason,
			"trace":       res.Trace,
			"summary":     solver.Summarize(res),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printTable(res)
	return nil
}

// buildRequest assembles the solve request, prompting for anything the
// selected method needs that was not given as a flag.
func buildRequest(cmd *cobra.Command) (*solver.Request, error) {
	in := bufio.NewReader(os.Stdin)

	if solveFlags.method == "" {
		fmt.Println("Available methods:")
		for i, m := range solver.Methods() {
			fmt.Printf("  %d. %s\n", i+1, m.Name)
		}
		choice, err := promptInt(in, "Select method (1-6): ")
		if err != nil {
			return nil, err
		}
		methods := solver.Methods()
		if choice < 1 || choice > len(methods) {
			return nil, fmt.Errorf("invalid method selection %d", choice)
		}
		solveFlags.method = string(methods[choice-1].Method)
	}
	method := solver.Method(solveFlags.method)

	if solveFlags.expr == "" {
		fmt.Println("Enter the equation f(x) = 0")
		fmt.Println("Example: x^3 - x - 2  or  exp(x) - 3*x")
		line, err := promptLine(in, "f(x) = ")
		if err != nil {
			return nil, err
		}
		solveFlags.expr = line
	}

	req := &solver.Request{
		Expression:    solveFlags.expr,
		Method:        method,
		Tolerance:     &solveFlags.tol,
		MaxIterations: &solveFlags.maxIter,
	}

	set := func(name string, dst **float64, val *float64, prompt string) error {
		if cmd.Flags().Changed(name) {
			*dst = val
			return nil
		}
		v, err := promptFloat(in, prompt)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}

	switch method {
	case solver.Bisection, solver.RegulaFalsi:
		if err := set("a", &req.A, &solveFlags.a, "Enter lower bound a: "); err != nil {
			return nil, err
		}
		if err := set("b", &req.B, &solveFlags.b, "Enter upper bound b: "); err != nil {
			return nil, err
		}
	case solver.Secant:
		if err := set("x0", &req.X0, &solveFlags.x0, "Enter first initial guess x0: "); err != nil {
			return nil, err
		}
		if err := set("x1", &req.X1, &solveFlags.x1, "Enter second initial guess x1: "); err != nil {
			return nil, err
		}
	case solver.NewtonRaphson:
		if err := set("x0", &req.X0, &solveFlags.x0, "Enter initial guess x0: "); err != nil {
			return nil, err
		}
	case solver.FixedPoint:
		if solveFlags.g == "" {
			fmt.Println("For f(x) = 0, rearrange to x = g(x)")
			line, err := promptLine(in, "g(x) = ")
			if err != nil {
				return nil, err
			}
			solveFlags.g = line
		}
		req.G = solveFlags.g
		if err := set("x0", &req.X0, &solveFlags.x0, "Enter initial guess x0: "); err != nil {
			return nil, err
		}
	case solver.ModifiedSecant:
		if err := set("x0", &req.X0, &solveFlags.x0, "Enter initial guess x0: "); err != nil {
			return nil, err
		}
		req.Delta = &solveFlags.delta
	default:
		return nil, fmt.Errorf("unknown method %q", solveFlags.method)
	}

	return req, nil
}

func promptLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptFloat(in *bufio.Reader, prompt string) (float64, error) {
	for {
		line, err := promptLine(in, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		fmt.Println("Invalid input. Please enter a valid number.")
	}
}

func promptInt(in *bufio.Reader, prompt string) (int, error) {
	for {
		line, err := promptLine(in, prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, nil
		}
		fmt.Println("Invalid input. Please enter a valid integer.")
	}
}

func printTable(res *solver.Result) {
	rule := strings.Repeat("=", 72)
	fmt.Println(rule)
	fmt.Printf("%-6s %-20s %-20s %-20s\n", "Iter", "x", "f(x)", "Error")
	fmt.Println(strings.Repeat("-", 72))
	for _, rec := range res.Trace {
		errCol := "-"
		if rec.ApproxError != nil {
			errCol = fmt.Sprintf("%.8e", *rec.ApproxError)
		}
		fmt.Printf("%-6d %-20.10f %-20.8e %-20s\n", rec.Index, rec.X, rec.FX, errCol)
	}
	fmt.Println(rule)

	sum := solver.Summarize(res)
	if res.Converged {
		fmt.Printf("Root found: x = %.10f\n", res.Root)
	} else {
		fmt.Printf("Did not converge; best estimate x = %.10f\n", res.Root)
	}
	fmt.Printf("f(x) = %.10e\n", sum.FinalResidual)
	fmt.Printf("Total iterations: %d\n", sum.Iterations)
	if sum.FinalError != nil {
		fmt.Printf("Final error: %.10e\n", *sum.FinalError)
	}
	fmt.Printf("Stop reason: %s\n", res.StopReason)
}
