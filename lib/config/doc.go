// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for intake.
//
// The application config is a YAML file loaded from a single explicit
// path, either the INTAKE_CONFIG environment variable or the --config flag.
// There are no fallbacks or automatic discovery; configuration is
// deterministic and auditable.
//
// Schema vocabulary is tuned separately through a JSONC alias file
// (JSON extended with comments and trailing commas) referenced from
// the config. An alias file adds aliases and delimiter tokens to the
// built-in schemas; it cannot define new schemas or attributes.
package config
