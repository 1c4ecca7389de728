package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sbom.spdx.json")

	if err := WriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFile (overwrite): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestEnsureExtension(t *testing.T) {
	if got := EnsureExtension("sbom.spdx.json", ".gz"); got != "sbom.spdx.json.gz" {
		t.Errorf("got %q", got)
	}
	if got := EnsureExtension("sbom.spdx.json.gz", ".gz"); got != "sbom.spdx.json.gz" {
		t.Errorf("got %q", got)
	}
	if got := EnsureExtension("sbom.spdx.json", ""); got != "sbom.spdx.json" {
		t.Errorf("got %q", got)
	}
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bin")
	if err := os.WriteFile(file, []byte("x"), 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok := IsRegularFile(file); !ok {
		t.Errorf("regular file not detected")
	}
	if _, ok := IsRegularFile(dir); ok {
		t.Errorf("directory reported as regular file")
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(file, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if _, ok := IsRegularFile(link); !ok {
		t.Errorf("symlink to regular file not followed")
	}

	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "nope"), dangling); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	if _, ok := IsRegularFile(dangling); ok {
		t.Errorf("dangling symlink reported as regular file")
	}
}
