// Command zof is the terminal front end of the solver: it collects an
// expression, a method, and its parameters (from flags or an interactive
// prompt), runs the solve, and prints the iteration table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zof",
	Short: "Find a real root of f(x) = 0 with classical numerical methods",
	Long: `ZOF (Zero of Functions) finds a real root of a user-supplied f(x) = 0
using one of six iterative methods: bisection, regula falsi, secant,
newton_raphson, fixed_point, or modified_secant. Every run prints the
full iteration trace, not just the final root.`,
}

func main() {
	rootCmd.AddCommand(solveCmd, methodsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
