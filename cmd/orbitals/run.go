package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
)

type runOptions struct {
	scenario   string
	trace      bool
	plot       string
	plotHeight int
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print the simulation log and a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "scenario TOML file")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "include trace entries in the simulation log")
	cmd.Flags().StringVar(&opts.plot, "plot", "", "plot the distance from the origin of this body")
	cmd.Flags().IntVar(&opts.plotHeight, "plot-height", 15, "height of the plot in lines")
	return cmd
}

func runScenario(w io.Writer, opts runOptions) (err error) {
	if opts.scenario == "" {
		return errors.New("no scenario provided")
	}
	logger, closeLog := newLogger(w)
	defer func() {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
	}()

	v, err := readScenario(opts.scenario)
	if err != nil {
		return err
	}
	solver, err := loadScenario(v)
	if err != nil {
		return err
	}
	solver.SetLogger(logger)
	runErr := solver.Run()
	// The log is replayed even for an aborted run, it tells what led to the failure.
	if err := solver.Log().Replay(logger, opts.trace); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if err := writeSummary(w, solver); err != nil {
		return err
	}
	if opts.plot != "" {
		return writePlot(w, solver, opts.plot, opts.plotHeight)
	}
	return nil
}
