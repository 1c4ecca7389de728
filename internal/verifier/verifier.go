// Package verifier re-hashes the files an SBOM describes and reports any
// that are missing or whose SHA256 no longer matches.
package verifier

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/ralt/binsbom/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spdx/tools-golang/spdx"
)

// Mismatch records a file whose current checksum differs from the SBOM
type Mismatch struct {
	RelPath  string
	Expected string
	Actual   string
}

// Result summarises a verification run
type Result struct {
	Verified   []string
	Mismatched []Mismatch
	Missing    []string
	// Unlocated lists packages without a SHA256 or a packageFileName
	// inside the root
	Unlocated []string
}

// OK reports whether every package verified
func (r *Result) OK() bool {
	return len(r.Mismatched) == 0 && len(r.Missing) == 0 && len(r.Unlocated) == 0
}

// Verify checks each package in doc against the file under root named by
// its packageFileName. Read errors other than a missing file are returned.
func Verify(doc *spdx.Document, root string) (*Result, error) {
	result := &Result{}

	for _, pkg := range doc.Packages {
		if pkg == nil {
			continue
		}

		rel := localPath(pkg.PackageFileName)
		expected := ""
		for _, c := range pkg.PackageChecksums {
			if string(c.Algorithm) == string(utils.SHA256) {
				expected = strings.ToLower(c.Value)
				break
			}
		}

		if rel == "" || expected == "" {
			logrus.Warnf("Package %s has no usable file name or SHA256, cannot verify", pkg.PackageName)
			result.Unlocated = append(result.Unlocated, pkg.PackageName)
			continue
		}

		digest, err := utils.CalculateChecksums(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logrus.Debugf("Missing: %s", rel)
				result.Missing = append(result.Missing, rel)
				continue
			}
			return nil, err
		}

		if digest.SHA256() != expected {
			logrus.Debugf("Checksum mismatch: %s", rel)
			result.Mismatched = append(result.Mismatched, Mismatch{
				RelPath:  rel,
				Expected: expected,
				Actual:   digest.SHA256(),
			})
			continue
		}

		result.Verified = append(result.Verified, rel)
	}

	return result, nil
}

// localPath turns a packageFileName into a slash-separated path relative to
// the root. Absolute names and names escaping the root yield "".
func localPath(name string) string {
	name = strings.TrimPrefix(name, "./")
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return ""
	}
	return path.Clean(name)
}
