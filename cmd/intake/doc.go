// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Command intake classifies structured text into typed records.
//
// Text arrives either as a raw block (intake parse) or as an RFC 5322
// email (intake mail). The header is matched against the built-in
// record schemas (page, wiki, ticket, attachment, comment) and the
// winning schema's typed record is printed as JSON, or its body
// rendered as HTML with --html. intake commit additionally hands the
// record to the spool committer; intake schemas lists the registry.
//
// Configuration (spool directory, alias extensions, log level) comes
// from the YAML file named by INTAKE_CONFIG or --config. All commands
// work without configuration except commit, which needs a spool
// directory from either the config or --spool.
package main
