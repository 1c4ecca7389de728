package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ralt/binsbom/internal/testutil"
)

func TestScanFindsOnlyBinaries(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "bin/app", testutil.WithPayload(testutil.ELFHeader(), "app"), 0755)
	testutil.WriteFile(t, root, "lib/libfoo.so.1", testutil.WithPayload(testutil.ELFHeader(), "foo"), 0644)
	testutil.WriteFile(t, root, "lib/darwin/libbar.dylib", testutil.MachOHeader(), 0644)
	testutil.WriteFile(t, root, "lib/win/bar.dll", testutil.PEHeader(), 0644)
	testutil.WriteFile(t, root, "share/doc/README", []byte("docs"), 0644)
	testutil.WriteFile(t, root, "bin/wrapper.sh", []byte("#!/bin/sh\nexec app\n"), 0755)
	testutil.WriteFile(t, root, "lib/Main.class", testutil.JavaClassHeader(), 0644)

	sc := NewFileSystemScanner(NewMagicClassifier())
	files, err := sc.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"bin/app", "lib/darwin/libbar.dylib", "lib/libfoo.so.1", "lib/win/bar.dll"}
	if len(files) != len(want) {
		t.Fatalf("found %d binaries, want %d: %+v", len(files), len(want), files)
	}
	for i, f := range files {
		if f.RelPath != want[i] {
			t.Errorf("files[%d].RelPath = %q, want %q", i, f.RelPath, want[i])
		}
		if f.Size <= 0 {
			t.Errorf("files[%d].Size = %d", i, f.Size)
		}
		if !strings.HasPrefix(f.Path, root) {
			t.Errorf("files[%d].Path = %q not under root", i, f.Path)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	files, err := NewFileSystemScanner(NewMagicClassifier()).Scan(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no binaries, got %+v", files)
	}
}

func TestScanRootErrors(t *testing.T) {
	sc := NewFileSystemScanner(NewMagicClassifier())

	if _, err := sc.Scan(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected error for missing root")
	}

	file := testutil.WriteFile(t, t.TempDir(), "file", []byte("x"), 0644)
	if _, err := sc.Scan(context.Background(), file); err == nil {
		t.Errorf("expected error for non-directory root")
	}
}

func TestScanSymlinks(t *testing.T) {
	root := t.TempDir()
	target := testutil.WriteFile(t, root, "lib/libreal.so", testutil.ELFHeader(), 0644)

	if err := os.Symlink(target, filepath.Join(root, "lib", "libalias.so")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	// A cycle back to the root must not be descended
	if err := os.Symlink(root, filepath.Join(root, "lib", "loop")); err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	files, err := NewFileSystemScanner(NewMagicClassifier()).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.RelPath)
	}
	want := []string{"lib/libalias.so", "lib/libreal.so"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("found %v, want %v", got, want)
	}
}

type failingClassifier struct {
	fail string
}

func (c failingClassifier) Classify(ctx context.Context, path string) (Classification, error) {
	if filepath.Base(path) == c.fail {
		return Classification{}, errors.New("permission denied")
	}
	return NewMagicClassifier().Classify(ctx, path)
}

func TestScanSwallowsClassificationErrors(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "good", testutil.ELFHeader(), 0755)
	testutil.WriteFile(t, root, "bad", testutil.ELFHeader(), 0755)

	files, err := NewFileSystemScanner(failingClassifier{fail: "bad"}).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "good" {
		t.Errorf("expected only good, got %+v", files)
	}
}

func TestScanCancelled(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "a", testutil.ELFHeader(), 0755)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSystemScanner(NewMagicClassifier()).Scan(ctx, root)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
