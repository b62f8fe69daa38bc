// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/intake-foundation/intake/cmd/intake/cli"
	"github.com/intake-foundation/intake/lib/config"
	"github.com/intake-foundation/intake/lib/parse"
	"github.com/intake-foundation/intake/lib/render"
	"github.com/intake-foundation/intake/lib/schema"
)

// recordOutput is the JSON document printed for a classified record.
type recordOutput struct {
	Kind    schema.Kind   `json:"kind"`
	Subject string        `json:"subject,omitempty"`
	Record  schema.Record `json:"record"`
}

func newParseCommand() *cli.Command {
	var (
		file       string
		configPath string
		html       bool
	)
	return &cli.Command{
		Name:    "parse",
		Summary: "classify a text block into a typed record",
		Usage:   "intake parse [flags]",
		Examples: []cli.Example{
			{Description: "classify a file", Command: "intake parse --file note.txt"},
			{Description: "classify stdin and render the body", Command: "intake parse --html < note.txt"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("parse", pflag.ContinueOnError)
			flags.StringVarP(&file, "file", "f", "", "input file (default stdin)")
			flags.StringVar(&configPath, "config", "", "config file path")
			flags.BoolVar(&html, "html", false, "print the record body as HTML instead of JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("parse takes no positional arguments")
			}
			configuration, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			record, err := classifyInput(file, configuration)
			if err != nil {
				return err
			}
			if html {
				rendered, err := render.HTML(record.Body())
				if err != nil {
					return err
				}
				fmt.Println(rendered)
				return nil
			}
			return printRecord(recordOutput{Kind: record.Kind(), Record: record})
		},
	}
}

// classifyInput reads the input text and runs the parse pipeline with
// the configuration's registry and join token.
func classifyInput(file string, configuration *config.Config) (schema.Record, error) {
	data, err := readInput(file)
	if err != nil {
		return nil, err
	}
	return classifyText(string(data), configuration)
}

// classifyText runs the parse pipeline over already-loaded text.
func classifyText(text string, configuration *config.Config) (schema.Record, error) {
	registry, err := configuration.Registry()
	if err != nil {
		return nil, err
	}
	return parse.ParseWith(text, parse.Options{
		Registry:  registry,
		JoinToken: configuration.JoinToken,
	})
}

// printRecord writes the output document as indented JSON to stdout.
func printRecord(output recordOutput) error {
	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}
