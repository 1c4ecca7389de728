package sbom

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNamespaceBase prefixes document namespaces when none is configured
const DefaultNamespaceBase = "https://example.org/sbom"

// idHashLen is how many hex digits of the path hash go into an identifier
const idHashLen = 12

// Options holds the document-level metadata for a Builder.
type Options struct {
	Name          string
	NamespaceBase string
	Supplier      string // e.g. "Organization: Example Corp"; NOASSERTION when empty
	VersionInfo   string // unknown when empty
	Creators      []string
	Created       time.Time
}

// Entry describes one binary to be recorded as a package.
type Entry struct {
	Name      string // file base name
	RelPath   string // slash-separated path relative to the scan root
	Detail    string
	Checksums []Checksum // first entry must be SHA256
}

// Builder accumulates package records and produces a Document.
type Builder struct {
	opts          Options
	packages      []Package
	relationships []Relationship
	ids           map[string]bool
	seed          strings.Builder
}

// NewBuilder creates a new document builder.
func NewBuilder(opts Options) *Builder {
	if opts.NamespaceBase == "" {
		opts.NamespaceBase = DefaultNamespaceBase
	}
	if opts.Supplier == "" {
		opts.Supplier = NoAssertion
	}
	if opts.VersionInfo == "" {
		opts.VersionInfo = "unknown"
	}

	b := &Builder{
		opts:          opts,
		packages:      make([]Package, 0),
		relationships: make([]Relationship, 0),
		ids:           map[string]bool{DocumentID: true},
	}
	b.seed.WriteString(opts.Name)
	return b
}

// Add records a package for entry and returns its SPDX identifier.
func (b *Builder) Add(entry Entry) string {
	id := b.uniqueID(PackageID(entry.Name, entry.RelPath))

	checksums := make([]Checksum, len(entry.Checksums))
	copy(checksums, entry.Checksums)

	b.packages = append(b.packages, Package{
		Name:                  entry.Name,
		SPDXID:                id,
		VersionInfo:           b.opts.VersionInfo,
		PackageFileName:       "./" + entry.RelPath,
		Supplier:              b.opts.Supplier,
		DownloadLocation:      NoAssertion,
		FilesAnalyzed:         false,
		LicenseDeclared:       NoAssertion,
		LicenseConcluded:      NoAssertion,
		CopyrightText:         NoAssertion,
		Checksums:             checksums,
		ExternalRefs:          []ExternalRef{},
		PrimaryPackagePurpose: PurposeLibrary,
		Comment:               entry.Detail,
	})

	b.relationships = append(b.relationships, Relationship{
		SpdxElementID:      DocumentID,
		RelationshipType:   RelDescribes,
		RelatedSpdxElement: id,
	})

	b.seed.WriteString("\n")
	b.seed.WriteString(entry.RelPath)
	for _, c := range entry.Checksums {
		b.seed.WriteString(" ")
		b.seed.WriteString(c.Value)
	}

	return id
}

// Len returns the number of packages recorded so far.
func (b *Builder) Len() int {
	return len(b.packages)
}

// Build returns the assembled document.
func (b *Builder) Build() *Document {
	creators := make([]string, len(b.opts.Creators))
	copy(creators, b.opts.Creators)

	return &Document{
		SPDXVersion:       SPDXVersion,
		DataLicense:       DataLicense,
		SPDXID:            DocumentID,
		Name:              b.opts.Name,
		DocumentNamespace: b.namespace(),
		CreationInfo: CreationInfo{
			Created:  b.opts.Created.UTC().Format(TimestampLayout),
			Creators: creators,
		},
		Packages:      b.packages,
		Relationships: b.relationships,
	}
}

// namespace derives a UUIDv5 from the document name and the recorded
// paths and checksums, so unchanged input yields an unchanged namespace.
func (b *Builder) namespace() string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(b.seed.String()))
	return fmt.Sprintf("%s/%s-%s", strings.TrimRight(b.opts.NamespaceBase, "/"), SanitizeID(b.opts.Name), id)
}

func (b *Builder) uniqueID(base string) string {
	id := base
	for n := 2; b.ids[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	b.ids[id] = true
	return id
}

// PackageID returns the identifier for a binary: the sanitized base name
// plus a prefix of the SHA256 of its relative path.
func PackageID(name, relPath string) string {
	sum := sha256.Sum256([]byte(relPath))
	return fmt.Sprintf("SPDXRef-Package-%s-%s", SanitizeID(name), hex.EncodeToString(sum[:])[:idHashLen])
}

// SanitizeID replaces every character that is not valid in an SPDX
// idstring ([A-Za-z0-9.-]) with '-'.
func SanitizeID(s string) string {
	if s == "" {
		return "binary"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
