package models

// GenerateConfig contains configuration for a single SBOM generation run
type GenerateConfig struct {
	// Input/Output
	RootDir     string
	OutputPath  string
	Format      string // json or yaml
	Compression string // none, gzip, zstd or xz

	// Classification
	Classifier  string // magic or file
	FileCommand string // used by the file classifier, e.g. "file -b"

	// Extra checksum algorithms; SHA256 is always computed
	Checksums []string

	// Document metadata
	DocumentName  string
	NamespaceBase string
	Supplier      string
	VersionInfo   string
	Creators      []string
}

// VerifyConfig contains configuration for checking an SBOM against a tree
type VerifyConfig struct {
	SBOMPath string
	RootDir  string
}
