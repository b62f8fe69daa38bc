// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/intake-foundation/intake/cmd/intake/cli"
	"github.com/intake-foundation/intake/lib/config"
)

func main() {
	root := &cli.Command{
		Name:    "intake",
		Summary: "classify structured text into typed records",
		Description: "intake turns a freeform text block or email into exactly one\n" +
			"typed record: a page, wiki page, ticket, attachment, or review\n" +
			"comment.",
		Subcommands: []*cli.Command{
			newParseCommand(),
			newMailCommand(),
			newCommitCommand(),
			newSchemasCommand(),
		},
	}
	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "intake: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads the classification input: the named file, or stdin
// when path is "" or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// loadConfig loads an explicit --config path, or falls back to the
// INTAKE_CONFIG environment variable (empty config when unset).
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}
