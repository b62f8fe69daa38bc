// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies the algorithm used for a stored
// attachment payload. Tags are recorded in spool envelopes, so changing
// the values breaks envelopes already written.
type CompressionTag uint8

const (
	// CompressionNone stores the payload as-is. Used for
	// already-compressed content (images, archives) where another
	// pass costs CPU without shrinking anything.
	CompressionNone CompressionTag = 0

	// CompressionLZ4 is the fast default for binary payloads.
	CompressionLZ4 CompressionTag = 1

	// CompressionZstd (level 3) is used for text-like payloads
	// where the better ratio is worth the CPU.
	CompressionZstd CompressionTag = 2
)

// String returns the name recorded in envelopes and logs.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(tag))
	}
}

// ParseCompressionTag parses a tag from its string form.
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression tag %q", name)
	}
}

// errIncompressible signals that compressed output would not be
// smaller than the input; callers fall back to CompressionNone.
var errIncompressible = errors.New("payload is incompressible")

// zstdEncoder and zstdDecoder are shared across commits; both are
// safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("commit: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("commit: zstd decoder initialization failed: " + err.Error())
	}
}

// compressPayload compresses an attachment payload with the best
// algorithm for its content, returning the stored bytes and the tag.
// Incompressible data comes back unchanged under CompressionNone.
func compressPayload(data []byte, contentType string) ([]byte, CompressionTag, error) {
	tag := selectCompression(data, contentType)
	switch tag {
	case CompressionNone:
		return data, CompressionNone, nil
	case CompressionLZ4:
		compressed, err := compressLZ4(data)
		if errors.Is(err, errIncompressible) {
			return data, CompressionNone, nil
		}
		if err != nil {
			return nil, 0, err
		}
		return compressed, CompressionLZ4, nil
	default:
		compressed := zstdEncoder.EncodeAll(data, nil)
		if len(compressed) >= len(data) {
			return data, CompressionNone, nil
		}
		return compressed, CompressionZstd, nil
	}
}

// DecompressPayload reverses compressPayload. The uncompressedSize
// from the envelope is verified against the result.
func DecompressPayload(stored []byte, tag CompressionTag, uncompressedSize int) ([]byte, error) {
	switch tag {
	case CompressionNone:
		if len(stored) != uncompressedSize {
			return nil, fmt.Errorf("stored payload: size %d does not match expected %d",
				len(stored), uncompressedSize)
		}
		return stored, nil

	case CompressionLZ4:
		destination := make([]byte, uncompressedSize)
		read, err := lz4.UncompressBlock(stored, destination)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if read != uncompressedSize {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
		}
		return destination, nil

	case CompressionZstd:
		result, err := zstdDecoder.DecodeAll(stored, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(result) != uncompressedSize {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported compression tag %d", tag)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock returns 0 for data it deems incompressible; an
	// output no smaller than the input is equally not worth storing.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

// selectCompression picks an algorithm: known text-like content types
// go straight to zstd, everything else is probed by compressing once
// with zstd and reading the ratio.
func selectCompression(data []byte, contentType string) CompressionTag {
	switch contentType {
	case "text/plain", "text/html", "text/css", "text/csv",
		"text/markdown", "text/xml",
		"application/json", "application/xml":
		return CompressionZstd
	}

	if len(data) == 0 {
		return CompressionNone
	}

	compressed := zstdEncoder.EncodeAll(data, nil)
	ratio := float64(len(data)) / float64(len(compressed))
	switch {
	case ratio >= 1.5:
		return CompressionZstd
	case ratio >= 1.1:
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
