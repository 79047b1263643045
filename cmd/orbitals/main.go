package main

import (
	"fmt"
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// This tool reads a scenario file, runs the simulation and reports on it.

var logFile string

var rootCmd = &cobra.Command{
	Use:           "orbitals",
	Short:         "2D N-body orbital simulator with staged spacecraft maneuvers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write the logs to this file (rotated)")
	rootCmd.AddCommand(newRunCmd())
}

// newLogger returns a logfmt logger on w, and on the rotated log file if one is set.
// The returned function closes the log file.
func newLogger(w io.Writer) (kitlog.Logger, func() error) {
	closer := func() error { return nil }
	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}
		w = io.MultiWriter(w, lj)
		closer = lj.Close
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC), closer
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
