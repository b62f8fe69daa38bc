// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package render converts record bodies to HTML for preview output.
package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused. The configuration
// never changes and a goldmark.Markdown is safe to share; parsing
// creates per-call state internally.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// HTML renders a record body as GitHub-flavored-markdown HTML. An
// empty body renders to "".
func HTML(body string) (string, error) {
	if body == "" {
		return "", nil
	}
	var buffer bytes.Buffer
	if err := getMarkdown().Convert([]byte(body), &buffer); err != nil {
		return "", fmt.Errorf("rendering body: %w", err)
	}
	return buffer.String(), nil
}
