// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/intake-foundation/intake/cmd/intake/cli"
	"github.com/intake-foundation/intake/lib/commit"
)

func newCommitCommand() *cli.Command {
	var (
		file        string
		configPath  string
		spoolDir    string
		actor       string
		timezone    string
		attachments []string
	)
	return &cli.Command{
		Name:    "commit",
		Summary: "classify a text block and spool the record",
		Description: "Classifies the input like 'intake parse', then hands the\n" +
			"validated record to the spool committer: one CBOR envelope plus\n" +
			"content-addressed attachment payloads, ready for a downstream\n" +
			"consumer to drain.",
		Usage: "intake commit --actor <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "spool a ticket update with a log attached",
				Command:     "intake commit --actor alice --attach crash.log --file update.txt",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("commit", pflag.ContinueOnError)
			flags.StringVarP(&file, "file", "f", "", "input file (default stdin)")
			flags.StringVar(&configPath, "config", "", "config file path")
			flags.StringVar(&spoolDir, "spool", "", "spool directory (overrides config)")
			flags.StringVar(&actor, "actor", "", "who is committing (required)")
			flags.StringVar(&timezone, "timezone", "", "IANA timezone for the commit")
			flags.StringArrayVar(&attachments, "attach", nil, "attachment file (repeatable)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("commit takes no positional arguments")
			}
			configuration, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if spoolDir == "" {
				spoolDir = configuration.SpoolDir
			}
			if spoolDir == "" {
				return fmt.Errorf("no spool directory (set spool_dir in config or pass --spool)")
			}
			if timezone == "" {
				timezone = configuration.DefaultTimezone
			}

			record, err := classifyInput(file, configuration)
			if err != nil {
				return err
			}

			meta := commit.Meta{Actor: actor, Timezone: timezone}
			for _, path := range attachments {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading attachment %s: %w", path, err)
				}
				meta.Attachments = append(meta.Attachments, commit.Attachment{
					Name:        filepath.Base(path),
					ContentType: mime.TypeByExtension(filepath.Ext(path)),
					Data:        data,
				})
			}

			logger := cli.NewLogger(cli.ParseLevel(configuration.LogLevel))
			spool, err := commit.NewSpool(spoolDir, logger)
			if err != nil {
				return err
			}
			if err := spool.Commit(context.Background(), record, meta); err != nil {
				return err
			}
			return printRecord(recordOutput{Kind: record.Kind(), Record: record})
		},
	}
}
