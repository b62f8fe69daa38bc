// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/intake-foundation/intake/cmd/intake/cli"
	"github.com/intake-foundation/intake/lib/mail"
)

func newMailCommand() *cli.Command {
	var (
		file       string
		configPath string
	)
	return &cli.Command{
		Name:    "mail",
		Summary: "classify an RFC 5322 email message",
		Description: "Reads a raw email message, extracts its text/plain parts,\n" +
			"normalizes them (reply prefixes, quoted tails, the __END__\n" +
			"marker), and classifies the result.",
		Usage: "intake mail [flags]",
		Examples: []cli.Example{
			{Description: "classify a saved message", Command: "intake mail --file message.eml"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("mail", pflag.ContinueOnError)
			flags.StringVarP(&file, "file", "f", "", "message file (default stdin)")
			flags.StringVar(&configPath, "config", "", "config file path")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("mail takes no positional arguments")
			}
			configuration, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			raw, err := readInput(file)
			if err != nil {
				return err
			}
			message, err := mail.ExtractMessage(bytes.NewReader(raw))
			if err != nil {
				return err
			}
			subject, blob := mail.Preprocess(message.Subject, message.Parts)
			record, err := classifyText(blob, configuration)
			if err != nil {
				return err
			}
			return printRecord(recordOutput{
				Kind:    record.Kind(),
				Subject: subject,
				Record:  record,
			})
		},
	}
}
