// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/playbook"
	"github.com/alfainternational/ma-sub000/internal/report"
	"github.com/alfainternational/ma-sub000/internal/validation"
)

const analysisTimeout = 30 * time.Second

// Input is the answer file format.
type Input struct {
	Answers assessment.AnswerMap `json:"answers" validate:"required,dive,keys,answer_key,endkeys"`
	Context assessment.Context   `json:"context"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assess",
		Short:         "Marketing maturity assessment from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newReportCmd(), newPatternsCmd())
	return root
}

type analyzeCmd struct {
	compact bool
}

func newAnalyzeCmd() *cobra.Command {
	ac := &analyzeCmd{}
	cmd := &cobra.Command{
		Use:   "analyze <input.json|->",
		Short: "Print the full result bundle",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}
	cmd.Flags().BoolVar(&ac.compact, "compact", false, "Print JSON on one line")
	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, args []string) error {
	bundle, err := analyzeFile(cmd.Context(), cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), bundle, ac.compact)
}

type reportCmd struct {
	variant string
	compact bool
}

func newReportCmd() *cobra.Command {
	rc := &reportCmd{}
	names := make([]string, 0, len(report.Variants()))
	for _, v := range report.Variants() {
		names = append(names, string(v))
	}

	cmd := &cobra.Command{
		Use:   "report <input.json|->",
		Short: "Print one report view of the analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}
	cmd.Flags().StringVar(&rc.variant, "variant", string(report.VariantExecutive), "Report variant: "+strings.Join(names, ", "))
	cmd.Flags().BoolVar(&rc.compact, "compact", false, "Print JSON on one line")
	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, args []string) error {
	variant, ok := report.ParseVariant(rc.variant)
	if !ok {
		return fmt.Errorf("%w: %q", report.ErrUnknownVariant, rc.variant)
	}
	bundle, err := analyzeFile(cmd.Context(), cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	rep, err := report.Build(bundle, variant)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), rep, rc.compact)
}

type patternsCmd struct {
	asJSON bool
}

func newPatternsCmd() *cobra.Command {
	pc := &patternsCmd{}
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the playbook pattern library",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
	cmd.Flags().BoolVar(&pc.asJSON, "json", false, "Print the patterns with their conditions as JSON")
	return cmd
}

func (pc *patternsCmd) run(cmd *cobra.Command, _ []string) error {
	matcher, err := playbook.NewMatcher()
	if err != nil {
		return err
	}
	patterns := matcher.Patterns()
	if pc.asJSON {
		return writeJSON(cmd.OutOrStdout(), patterns, false)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCONFIDENCE\tPLAN\tCONDITIONS")
	for _, p := range patterns {
		conds := make([]string, len(p.Conditions))
		for i, c := range p.Conditions {
			conds[i] = c.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", p.ID, p.Name, p.Confidence, p.Plan, strings.Join(conds, "; "))
	}
	return tw.Flush()
}

// readInput decodes and validates the answer file at path, or stdin for "-".
func readInput(stdin io.Reader, path string) (*Input, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path) // #nosec G304 -- path is the user's own input file
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode input %s: %w", path, err)
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return nil, fmt.Errorf("invalid input %s: %w", path, verr)
	}
	return &in, nil
}

func analyzeFile(ctx context.Context, stdin io.Reader, path string) (*assessment.ResultBundle, error) {
	in, err := readInput(stdin, path)
	if err != nil {
		return nil, err
	}
	analyzer, err := engine.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()
	return analyzer.Analyze(ctx, in.Answers, in.Context)
}

func writeJSON(w io.Writer, v interface{}, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
