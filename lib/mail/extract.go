// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// Message is the portion of an email that intake consumes: the
// decoded subject and the raw text/plain parts, in message order.
// Parts are raw in the normalization sense. Transfer encoding is
// already decoded, but nothing has been trimmed or truncated; feed
// them to [NormalizeBody].
type Message struct {
	Subject string
	Parts   []string
}

// ExtractMessage reads a raw RFC 5322 message and pulls out the
// subject and every text/plain part. Multipart containers are walked
// recursively; non-text parts (attachments, HTML alternatives) are
// skipped. A message with no text/plain part yields an empty Parts
// slice, not an error.
func ExtractMessage(r io.Reader) (*Message, error) {
	parsed, err := mail.ReadMessage(r)
	if err != nil {
		return nil, fmt.Errorf("reading message: %w", err)
	}

	subject := parsed.Header.Get("Subject")
	decoder := new(mime.WordDecoder)
	if decoded, err := decoder.DecodeHeader(subject); err == nil {
		subject = decoded
	}

	message := &Message{Subject: subject}
	contentType := parsed.Header.Get("Content-Type")
	encoding := parsed.Header.Get("Content-Transfer-Encoding")
	if err := collectTextParts(parsed.Body, contentType, encoding, message); err != nil {
		return nil, err
	}
	return message, nil
}

// collectTextParts appends the text/plain content reachable from body
// to message.Parts. contentType may be empty; RFC 5322 then implies
// text/plain.
func collectTextParts(body io.Reader, contentType, encoding string, message *Message) error {
	mediaType := "text/plain"
	var params map[string]string
	if contentType != "" {
		parsed, parsedParams, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("parsing content type %q: %w", contentType, err)
		}
		mediaType = parsed
		params = parsedParams
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return fmt.Errorf("multipart message without boundary")
		}
		reader := multipart.NewReader(body, boundary)
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading multipart: %w", err)
			}
			err = collectTextParts(part,
				part.Header.Get("Content-Type"),
				part.Header.Get("Content-Transfer-Encoding"),
				message)
			part.Close()
			if err != nil {
				return err
			}
		}
	}

	if mediaType != "text/plain" {
		return nil
	}

	decoded, err := decodeTransferEncoding(body, encoding)
	if err != nil {
		return err
	}
	message.Parts = append(message.Parts, decoded)
	return nil
}

// decodeTransferEncoding reads body applying the given
// Content-Transfer-Encoding. 7bit, 8bit, binary, and empty all mean
// "as is".
func decodeTransferEncoding(body io.Reader, encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		body = quotedprintable.NewReader(body)
	case "base64":
		body = base64.NewDecoder(base64.StdEncoding, body)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading message part: %w", err)
	}
	return string(data), nil
}
