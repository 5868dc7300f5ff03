// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/report"
)

const strugglingInput = `{
	"answers": {
		"has_website": false,
		"revenue_trend": "declining",
		"competition_level": "very_high",
		"cac": 500,
		"ltv": 300
	},
	"context": {"sector": "retail"}
}`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Parallel()

	path := writeInput(t, strugglingInput)
	out, err := execute(t, "", "analyze", path)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var bundle assessment.ResultBundle
	if err := json.Unmarshal([]byte(out), &bundle); err != nil {
		t.Fatalf("decode bundle: %v\n%s", err, out)
	}
	if len(bundle.Alerts) == 0 || bundle.Alerts[0].ID != "ALC_NO_DIGITAL_PRESENCE" {
		t.Errorf("alerts = %+v, want ALC_NO_DIGITAL_PRESENCE first", bundle.Alerts)
	}
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, strugglingInput, "analyze", "--compact", "-")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Error("--compact output spans several lines")
	}
}

func TestAnalyzeCommand_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed", `{"answers": [`, "decode input"},
		{"missing answers", `{"context": {}}`, "invalid input"},
		{"bad key", `{"answers": {"Has Website": true}}`, "invalid input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := execute(t, "", "analyze", writeInput(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("missing file: error = nil")
	}
}

func TestReportCommand(t *testing.T) {
	t.Parallel()

	path := writeInput(t, strugglingInput)
	for _, v := range report.Variants() {
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()
			out, err := execute(t, "", "report", "--variant", string(v), path)
			if err != nil {
				t.Fatalf("report error = %v", err)
			}
			var rep struct {
				Variant report.Variant `json:"variant"`
			}
			if err := json.Unmarshal([]byte(out), &rep); err != nil {
				t.Fatalf("decode report: %v", err)
			}
			if rep.Variant != v {
				t.Errorf("variant = %q, want %q", rep.Variant, v)
			}
		})
	}

	if _, err := execute(t, "", "report", "--variant", "weekly", path); err == nil {
		t.Error("unknown variant: error = nil")
	}
}

func TestPatternsCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "patterns")
	if err != nil {
		t.Fatalf("patterns error = %v", err)
	}
	if !strings.HasPrefix(out, "ID") || strings.Count(out, "\n") < 2 {
		t.Errorf("table output = %q", out)
	}

	out, err = execute(t, "", "patterns", "--json")
	if err != nil {
		t.Fatalf("patterns --json error = %v", err)
	}
	var patterns []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &patterns); err != nil {
		t.Fatalf("decode patterns: %v", err)
	}
	if len(patterns) == 0 {
		t.Error("no patterns listed")
	}
}
