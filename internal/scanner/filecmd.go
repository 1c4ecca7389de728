package scanner

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// DefaultFileCommand is the file-type utility invocation used when none is configured
const DefaultFileCommand = "file -b"

// FileCommandClassifier classifies files by running an external file-type
// utility and inspecting its description of the file
type FileCommandClassifier struct {
	argv []string
	// endOptions passes "--" before the path so names like "-h" stay operands
	endOptions bool
}

// NewFileCommandClassifier creates a classifier from a shell-style command
// line; the path being classified is appended as the final argument
func NewFileCommandClassifier(command string) (*FileCommandClassifier, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("file command is empty")
	}
	return &FileCommandClassifier{
		argv:       argv,
		endOptions: filepath.Base(argv[0]) == "file",
	}, nil
}

// Classify implements Classifier
func (c *FileCommandClassifier) Classify(ctx context.Context, path string) (Classification, error) {
	args := make([]string, 0, len(c.argv)+1)
	args = append(args, c.argv[1:]...)
	if c.endOptions {
		args = append(args, "--")
	}
	args = append(args, path)

	out, err := exec.CommandContext(ctx, c.argv[0], args...).Output()
	if err != nil {
		return Classification{}, fmt.Errorf("failed to run %s: %w", c.argv[0], err)
	}

	return ParseFileOutput(string(out)), nil
}

// ParseFileOutput maps a file(1) style description onto a Classification
func ParseFileOutput(out string) Classification {
	desc := strings.TrimSpace(out)
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		desc = desc[:i]
	}

	var format BinaryFormat
	switch {
	case strings.Contains(desc, "ELF"):
		format = FormatELF
	case strings.Contains(desc, "Mach-O universal"):
		format = FormatMachOUniversal
	case strings.Contains(desc, "Mach-O"):
		format = FormatMachO
	case strings.Contains(desc, "PE32"):
		format = FormatPE
	default:
		return Classification{}
	}

	return Classification{Format: format, Detail: desc}
}
