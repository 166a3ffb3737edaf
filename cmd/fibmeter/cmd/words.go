package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psantana5/fibmeter/internal/config"
)

func (a *app) wordsCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Compute Fibonacci(n) and print the accumulated words",
		Long: `Computes Fibonacci(n) and prints the value, the accumulated alphabet string
and the metrics block. n must not exceed 30.

Example:
  fibmeter words
  fibmeter words --n 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.measure(cmd.Context(), n, true)
		},
	}

	cmd.Flags().IntVar(&n, "n", config.DefaultN, "Fibonacci index (max 30)")
	return cmd
}
