// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/intake-foundation/intake/cmd/intake/cli"
	"github.com/intake-foundation/intake/lib/schema"
)

func newSchemasCommand() *cli.Command {
	var configPath string
	return &cli.Command{
		Name:    "schemas",
		Summary: "list the schema registry",
		Description: "Prints every schema in classification priority order: its\n" +
			"attributes with aliases and types, its body fields with delimiter\n" +
			"tokens, and its must-have attribute sets.",
		Usage: "intake schemas [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("schemas", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "config file path")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("schemas takes no positional arguments")
			}
			configuration, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			registry, err := configuration.Registry()
			if err != nil {
				return err
			}
			printRegistry(registry)
			return nil
		},
	}
}

func printRegistry(registry *schema.Registry) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	for _, s := range registry.Schemas() {
		fmt.Fprintf(tw, "%s\t\t\n", s.Kind)
		for _, field := range s.Fields {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n",
				field.Name, field.Type, strings.Join(field.Aliases, ", "))
		}
		for _, body := range s.BodyFields {
			fmt.Fprintf(tw, "  %s\tbody\t%s\n",
				body.Name, formatDelimiters(body.Delimiters))
		}
		sets := make([]string, len(s.MustHave))
		for i, set := range s.MustHave {
			sets[i] = strings.Join(set, "+")
		}
		fmt.Fprintf(tw, "  requires\t\t%s\n", strings.Join(sets, " | "))
		fmt.Fprintf(tw, "\t\t\n")
	}
	tw.Flush()
}

// formatDelimiters makes the blank-line token visible in listings.
func formatDelimiters(tokens []string) string {
	display := make([]string, len(tokens))
	for i, token := range tokens {
		if token == "" {
			display[i] = "<blank line>"
		} else {
			display[i] = token
		}
	}
	return strings.Join(display, ", ")
}
