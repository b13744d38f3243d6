// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/adrian0850/sbeso/boundary"
)

// newRootCmd builds the command tree. It holds no package-level state so
// tests can execute it repeatedly.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sbeso",
		Short: "Bi-directional evolutionary structural optimization",
		Long: `Optimize the material layout of a rectangular plate under one point
load. The domain is meshed with unit square elements; elements are
removed (or re-added) by their filtered strain energy until the target
volume fraction is reached and the compliance settles.

Subcommands:
  run    - optimize one boundary/load combination
  cases  - list the supported boundary and load case names`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newCasesCmd())

	return root
}

func newCasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List boundary and load case names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCases(cmd.OutOrStdout())
		},
	}
}

func printCases(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "boundary cases:"); err != nil {
		return err
	}
	for _, b := range boundary.BoundaryCases() {
		fmt.Fprintf(w, "  %s\n", b)
	}
	fmt.Fprintln(w, "load cases:")
	for _, l := range boundary.LoadCases() {
		fmt.Fprintf(w, "  %s\n", l)
	}

	return nil
}

// newLogger returns a text or JSON slog logger on w.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	ho := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, ho)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
