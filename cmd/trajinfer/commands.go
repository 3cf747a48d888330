package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trajinfer/dataset"
	"github.com/katalvlaran/trajinfer/trajectory"
)

func runGraph(cmd *cobra.Command, f *sessionFlags) (err error) {
	s, reg, err := openSession(cmd, f)
	if err != nil {
		return err
	}
	w, closeOut, err := output(cmd, f)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	if err = dataset.WriteJSON(w, dataset.NewGraphDoc(s.Graph(), s.EdgeStates())); err != nil {
		return err
	}

	return flushMetrics(f, reg)
}

func runInfer(cmd *cobra.Command, f *sessionFlags) (err error) {
	root, err := cmd.Flags().GetInt("root")
	if err != nil {
		return fmt.Errorf("failed to read --root flag: %w", err)
	}
	cutoff, err := cmd.Flags().GetFloat64("cutoff")
	if err != nil {
		return fmt.Errorf("failed to read --cutoff flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to read --format flag: %w", err)
	}
	if format != "json" && format != "csv" {
		return fmt.Errorf("unsupported --format %q (supported: json, csv)", format)
	}

	s, reg, err := openSession(cmd, f)
	if err != nil {
		return err
	}
	// Degenerate roots are logged by the milestone stage and kept in
	// res.Warnings for the result document.
	res, err := s.InferContext(cmd.Context(), root, trajectory.WithCutoff(cutoff))
	if err != nil {
		return err
	}

	w, closeOut, err := output(cmd, f)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	if format == "csv" {
		err = dataset.WriteCellTable(w, res)
	} else {
		err = dataset.WriteResult(w, res)
	}
	if err != nil {
		return err
	}

	return flushMetrics(f, reg)
}
