package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psantana5/fibmeter/internal/config"
)

func (a *app) runCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute Fibonacci(N) from the environment and print metrics",
		Long: `Reads n from the N environment variable (default 10) and prints the value and
the metrics block. The accumulated words are computed but not printed.
An unparseable N is fatal; --n overrides the environment when given.

Example:
  fibmeter run
  N=25 fibmeter run --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				env, err := config.ParseEnv()
				if err != nil {
					return err
				}
				n = env.N
			}
			return a.measure(cmd.Context(), n, false)
		},
	}

	cmd.Flags().IntVar(&n, "n", config.DefaultN, "Fibonacci index, overrides N (max 30)")
	return cmd
}
