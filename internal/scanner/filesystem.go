package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ralt/binsbom/internal/utils"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for filesystem scanning
type FileSystemScanner struct {
	classifier Classifier
}

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner(classifier Classifier) *FileSystemScanner {
	return &FileSystemScanner{classifier: classifier}
}

// Scan recursively scans a directory for binaries. Directory symlinks are
// not followed; symlinks to regular files are classified like the file.
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedFile, error) {
	rootInfo, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", dir)
	}

	var files []ScannedFile

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			logrus.Warnf("Skipping %s: %v", path, err)
			return nil
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip directories
		if d.IsDir() {
			return nil
		}

		info, ok := s.regularFile(path, d)
		if !ok {
			logrus.Debugf("Skipping non-regular file: %s", path)
			return nil
		}

		class, err := s.classifier.Classify(ctx, path)
		if err != nil {
			logrus.Debugf("Failed to classify %s, treating as non-binary: %v", path, err)
			return nil
		}

		if !class.IsBinary() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		logrus.Debugf("Found %s binary: %s", class.Format, path)

		files = append(files, ScannedFile{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Format:  class.Format,
			Detail:  class.Detail,
			Size:    info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	logrus.Infof("Found %d binaries in %s", len(files), dir)
	return files, nil
}

// regularFile resolves d to a regular file, following a symlink if needed.
// Devices, sockets, pipes and dangling links are rejected.
func (s *FileSystemScanner) regularFile(path string, d fs.DirEntry) (fs.FileInfo, bool) {
	if d.Type()&fs.ModeSymlink != 0 {
		return utils.IsRegularFile(path)
	}
	if !d.Type().IsRegular() {
		return nil, false
	}
	info, err := d.Info()
	if err != nil {
		return nil, false
	}
	return info, true
}
