package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/psantana5/fibmeter/internal/config"
	"github.com/psantana5/fibmeter/internal/logging"
)

// app holds per-invocation CLI state
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile  string
	settings *config.Settings
	logger   *logging.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	logger := logging.NewLogger(logging.INFO, false)
	logger.SetOutput(stderr)
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Execute runs the CLI. Any error is logged at FATAL and the process exits 1.
func Execute() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.execute(context.Background(), os.Args[1:]); err != nil {
		a.logger.Fatal(err.Error())
	}
}

func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fibmeter",
		Short: "Measure a recursive Fibonacci computation",
		Long: `fibmeter computes Fibonacci(n) by naive double recursion and reports wall-clock
time, resident memory and CPU usage of its own process sampled right before and
right after the computation.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.fibmeter/config.yaml)")
	root.PersistentFlags().String("output", "text", "output format: text, json, yaml or table")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON lines")
	root.PersistentFlags().String("metrics-file", "", "write Prometheus textfile metrics to this path")

	root.AddCommand(a.wordsCmd())
	root.AddCommand(a.runCmd())

	return root
}

// initConfig reads config file, FIBMETER_* env and flags, then builds the logger
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"output":       "output",
		"log_level":    "log-level",
		"log_json":     "log-json",
		"metrics_file": "metrics-file",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.ParseLevel(settings.LogLevel), settings.LogJSON)
	logger.SetOutput(a.stderr)

	a.settings = settings
	a.logger = logger
	return nil
}
