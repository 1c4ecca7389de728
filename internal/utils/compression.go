package utils

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Codec names an output compression format
type Codec string

const (
	CodecNone Codec = "none"
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecXZ   Codec = "xz"
)

// ParseCodec parses a codec name; the empty string means no compression
func ParseCodec(name string) (Codec, error) {
	switch Codec(strings.ToLower(strings.TrimSpace(name))) {
	case "", CodecNone:
		return CodecNone, nil
	case CodecGzip, "gz":
		return CodecGzip, nil
	case CodecZstd, "zst":
		return CodecZstd, nil
	case CodecXZ:
		return CodecXZ, nil
	default:
		return "", fmt.Errorf("unsupported compression: %q", name)
	}
}

// Extension returns the conventional file suffix for the codec
func (c Codec) Extension() string {
	switch c {
	case CodecGzip:
		return ".gz"
	case CodecZstd:
		return ".zst"
	case CodecXZ:
		return ".xz"
	default:
		return ""
	}
}

// CodecFromPath infers the codec from a file name suffix
func CodecFromPath(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CodecGzip
	case strings.HasSuffix(path, ".zst"):
		return CodecZstd
	case strings.HasSuffix(path, ".xz"):
		return CodecXZ
	default:
		return CodecNone
	}
}

// Compress compresses data with the given codec
func Compress(data []byte, codec Codec) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch codec {
	case CodecNone:
		return data, nil
	case CodecGzip:
		w = gzip.NewWriter(&buf)
	case CodecZstd:
		w, err = zstd.NewWriter(&buf)
	case CodecXZ:
		w, err = xz.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unsupported compression: %q", codec)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s writer: %w", codec, err)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress
func Decompress(data []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecNone:
		return data, nil
	case CodecGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case CodecZstd:
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case CodecXZ:
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("unsupported compression: %q", codec)
	}
}
