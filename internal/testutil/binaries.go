// Package testutil builds small on-disk fixtures for binsbom tests.
//
// The header builders produce just enough of each container format for
// magic byte detection and, for ELF, for debug/elf to parse the header.
// All helpers call t.Fatalf on failure since fixture setup is not
// recoverable.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// ELFHeader returns a minimal little-endian ELF64 shared object header for x86-64
func ELFHeader() []byte {
	h := make([]byte, 64)
	copy(h, []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0})
	le := binary.LittleEndian
	le.PutUint16(h[16:], 3)  // e_type: ET_DYN
	le.PutUint16(h[18:], 62) // e_machine: EM_X86_64
	le.PutUint32(h[20:], 1)  // e_version
	le.PutUint16(h[52:], 64) // e_ehsize
	le.PutUint16(h[54:], 56) // e_phentsize
	le.PutUint16(h[58:], 64) // e_shentsize
	return h
}

// MachOHeader returns a 64-bit little-endian Mach-O magic followed by padding
func MachOHeader() []byte {
	h := make([]byte, 32)
	copy(h, []byte{0xCF, 0xFA, 0xED, 0xFE})
	return h
}

// PEHeader returns a DOS stub whose e_lfanew points at a PE signature
func PEHeader() []byte {
	h := make([]byte, 0x100)
	copy(h, "MZ")
	binary.LittleEndian.PutUint32(h[0x3C:], 0x80)
	copy(h[0x80:], "PE\x00\x00")
	return h
}

// JavaClassHeader returns a class file header, which shares 0xCAFEBABE with fat Mach-O
func JavaClassHeader() []byte {
	return []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x41}
}

// WriteFile writes content to root/rel, creating parent directories
func WriteFile(t *testing.T, root, rel string, content []byte, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, perm); err != nil {
		t.Fatalf("WriteFile %s: %v", rel, err)
	}
	return path
}

// WithPayload appends payload to a header so fixtures hash differently
func WithPayload(header []byte, payload string) []byte {
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	return append(out, payload...)
}
