package models

import (
	"errors"
	"io/fs"
	"testing"
)

func TestSBOMErrorFormatting(t *testing.T) {
	err := &SBOMError{Type: ErrChecksum, Path: "lib/libfoo.so", Err: fs.ErrPermission}
	if got, want := err.Error(), "[Checksum] lib/libfoo.so: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &SBOMError{Type: ErrInvalidConfig, Err: errors.New("bad format")}
	if got, want := err.Error(), "[InvalidConfig] bad format"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSBOMErrorUnwrap(t *testing.T) {
	err := &SBOMError{Type: ErrOutput, Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is should see through SBOMError")
	}

	var sbomErr *SBOMError
	if !errors.As(error(err), &sbomErr) || sbomErr.Type != ErrOutput {
		t.Errorf("errors.As should recover the SBOMError")
	}
}

func TestErrorTypeUnknown(t *testing.T) {
	if got := ErrorType(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}
