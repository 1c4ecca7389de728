package sbom

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

func goldenDocument() *Document {
	b := NewBuilder(Options{
		Name:          "runtime",
		NamespaceBase: "https://sbom.example.com/",
		Supplier:      "Organization: Example Corp",
		VersionInfo:   "1.2.3",
		Creators:      []string{"Tool: binsbom-test", "Organization: Example Corp"},
		Created:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	b.Add(Entry{
		Name:      "libfoo.so.1",
		RelPath:   "lib/libfoo.so.1",
		Detail:    "ELF 64-bit shared object, X86_64",
		Checksums: sha('a'),
	})
	b.Add(Entry{
		Name:    "tool & helper",
		RelPath: "bin/tool & helper",
		Checksums: []Checksum{
			{Algorithm: "SHA256", Value: strings.Repeat("b", 64)},
			{Algorithm: "BLAKE3", Value: strings.Repeat("c", 64)},
		},
	})
	return b.Build()
}

func TestEncodeJSONGolden(t *testing.T) {
	data, err := Encode(goldenDocument(), FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "document", data)
}

func TestEncodeEmptyGolden(t *testing.T) {
	b := NewBuilder(Options{
		Name:     "empty",
		Creators: []string{"Tool: binsbom-test"},
		Created:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	data, err := Encode(b.Build(), FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "empty", data)
}

func TestDecodeJSONRoundTrip(t *testing.T) {
	src := goldenDocument()
	data, err := Encode(src, FormatJSON)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	doc, err := Decode(bytes.NewReader(data), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if doc.SPDXVersion != SPDXVersion {
		t.Errorf("SPDXVersion = %q", doc.SPDXVersion)
	}
	if len(doc.Packages) != 2 {
		t.Fatalf("packages = %d, want 2", len(doc.Packages))
	}
	if got := doc.Packages[0].PackageFileName; got != "./lib/libfoo.so.1" {
		t.Errorf("PackageFileName = %q", got)
	}
	if got := doc.Packages[1].PackageChecksums[1].Value; got != strings.Repeat("c", 64) {
		t.Errorf("BLAKE3 checksum = %q", got)
	}
	if len(doc.Relationships) != 2 {
		t.Fatalf("relationships = %d, want 2", len(doc.Relationships))
	}
	got := strings.TrimPrefix(string(doc.Relationships[1].RefB.ElementRefID), "SPDXRef-")
	if want := strings.TrimPrefix(src.Packages[1].SPDXID, "SPDXRef-"); got != want {
		t.Errorf("relationship target = %q, want %q", got, want)
	}
}

func TestDecodeYAMLRoundTrip(t *testing.T) {
	data, err := Encode(goldenDocument(), FormatYAML)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Contains(data, []byte("spdxVersion: SPDX-2.3")) {
		t.Errorf("YAML output missing spdxVersion:\n%s", data)
	}

	doc, err := Decode(bytes.NewReader(data), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.Packages) != 2 || doc.Packages[1].PackageName != "tool & helper" {
		t.Errorf("unexpected packages: %+v", doc.Packages)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"tag-value", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"sbom.spdx.json":        FormatJSON,
		"sbom.spdx.json.gz":     FormatJSON,
		"sbom.spdx.yaml":        FormatYAML,
		"sbom.spdx.yml.zst":     FormatYAML,
		"out/sbom":              FormatJSON,
		"out/sbom.spdx.yaml.xz": FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
	if MediaType(FormatYAML) != "application/spdx+yaml" || MediaType(FormatJSON) != "application/spdx+json" {
		t.Errorf("unexpected media types")
	}
}
