package sbom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx"
	spdxyaml "github.com/spdx/tools-golang/yaml"
	"gopkg.in/yaml.v3"
)

// Format represents the serialization format of a document.
type Format string

const (
	// FormatJSON represents SPDX JSON, the default.
	FormatJSON Format = "json"
	// FormatYAML represents SPDX YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported SBOM format: %q", s)
	}
}

// FormatFromPath infers the format from a file name, ignoring any
// compression suffix. Anything not ending in .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	for _, ext := range []string{".gz", ".zst", ".xz"} {
		path = strings.TrimSuffix(path, ext)
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// MediaType returns the media type for the format.
func MediaType(format Format) string {
	switch format {
	case FormatYAML:
		return "application/spdx+yaml"
	default:
		return "application/spdx+json"
	}
}

// Encode serializes doc with two-space indentation and a trailing newline.
func Encode(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported SBOM format: %q", format)
	}

	return buf.Bytes(), nil
}

// Decode parses an SPDX document in the given format.
func Decode(r io.Reader, format Format) (*spdx.Document, error) {
	var (
		doc *spdx.Document
		err error
	)

	switch format {
	case FormatJSON:
		doc, err = spdxjson.Read(r)
	case FormatYAML:
		doc, err = spdxyaml.Read(r)
	default:
		return nil, fmt.Errorf("unsupported SBOM format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode SPDX %s: %w", format, err)
	}

	return doc, nil
}
