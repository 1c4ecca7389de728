package scanner

import "context"

// BinaryFormat represents the container format of an executable or library
type BinaryFormat int

const (
	FormatUnknown BinaryFormat = iota
	FormatELF
	FormatMachO
	FormatMachOUniversal
	FormatPE
)

// String returns the string representation of BinaryFormat
func (f BinaryFormat) String() string {
	switch f {
	case FormatELF:
		return "ELF"
	case FormatMachO:
		return "Mach-O"
	case FormatMachOUniversal:
		return "Mach-O universal"
	case FormatPE:
		return "PE"
	default:
		return "unknown"
	}
}

// Classification is the result of inspecting a single file
type Classification struct {
	Format BinaryFormat
	// Detail is a human-readable description such as
	// "ELF 64-bit shared object, X86_64". It may be empty.
	Detail string
}

// IsBinary reports whether the file is a binary of interest
func (c Classification) IsBinary() bool {
	return c.Format != FormatUnknown
}

// ScannedFile represents a binary found during scanning
type ScannedFile struct {
	Path    string // path on disk
	RelPath string // slash-separated, relative to the scan root
	Format  BinaryFormat
	Detail  string
	Size    int64
}

// Classifier decides whether a file is a binary executable or library
type Classifier interface {
	// Classify inspects the file at path. An error means the file could
	// not be classified; callers treat it the same as "not a binary".
	Classify(ctx context.Context, path string) (Classification, error)
}

// Scanner interface for finding binaries in a directory tree
type Scanner interface {
	// Scan recursively scans a directory for binaries
	Scan(ctx context.Context, dir string) ([]ScannedFile, error)
}
