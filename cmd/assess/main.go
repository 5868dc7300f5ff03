// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Command assess runs the assessment engine offline against a JSON answer
// file, without a store or the HTTP API.
//
//	assess analyze input.json
//	assess report --variant executive input.json
//	assess patterns
//
// The input file holds {"answers": {...}, "context": {...}}; "-" reads stdin.
package main

import (
	"os"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

func main() {
	logging.Init(logging.Config{Level: "warn", Format: "console", Output: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
