package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// ChunkSize is the read size used when streaming a file through its hashes
const ChunkSize = 8 * 1024

// Algorithm names a checksum algorithm using its SPDX spelling
type Algorithm string

const (
	SHA256 Algorithm = "SHA256"
	SHA1   Algorithm = "SHA1"
	SHA512 Algorithm = "SHA512"
	MD5    Algorithm = "MD5"
	BLAKE3 Algorithm = "BLAKE3"
)

// Checksum is a single digest of a file
type Checksum struct {
	Algorithm Algorithm
	Value     string
}

// FileDigest contains the checksums calculated for a file
type FileDigest struct {
	Size      int64
	Checksums []Checksum
}

// Get returns the value for the given algorithm, or "" if it was not computed
func (d *FileDigest) Get(algo Algorithm) string {
	for _, c := range d.Checksums {
		if c.Algorithm == algo {
			return c.Value
		}
	}
	return ""
}

// SHA256 returns the SHA256 value, which is always present
func (d *FileDigest) SHA256() string {
	return d.Get(SHA256)
}

// ParseAlgorithm parses a case-insensitive algorithm name such as "sha512"
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	switch Algorithm(normalized) {
	case SHA256, SHA1, SHA512, MD5, BLAKE3:
		return Algorithm(normalized), nil
	default:
		return "", fmt.Errorf("unsupported checksum algorithm: %q", name)
	}
}

func newHash(algo Algorithm) hash.Hash {
	switch algo {
	case SHA1:
		return sha1.New()
	case SHA512:
		return sha512.New()
	case MD5:
		return md5.New()
	case BLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}

// CalculateChecksums calculates SHA256 plus any extra algorithms for a file
// in a single pass, reading ChunkSize bytes at a time.
func CalculateChecksums(path string, extra ...Algorithm) (*FileDigest, error) {
	algos := []Algorithm{SHA256}
	for _, a := range extra {
		seen := false
		for _, existing := range algos {
			if existing == a {
				seen = true
				break
			}
		}
		if !seen {
			algos = append(algos, a)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hashes := make([]hash.Hash, len(algos))
	writers := make([]io.Writer, len(algos))
	for i, a := range algos {
		hashes[i] = newHash(a)
		writers[i] = hashes[i]
	}

	// Stream file through all hashes. Wrapping f hides its WriterTo so
	// io.CopyBuffer keeps to our buffer size.
	buf := make([]byte, ChunkSize)
	size, err := io.CopyBuffer(io.MultiWriter(writers...), struct{ io.Reader }{f}, buf)
	if err != nil {
		return nil, err
	}

	digest := &FileDigest{Size: size, Checksums: make([]Checksum, len(algos))}
	for i, a := range algos {
		digest.Checksums[i] = Checksum{
			Algorithm: a,
			Value:     hex.EncodeToString(hashes[i].Sum(nil)),
		}
	}
	return digest, nil
}
