package sbom

// SPDX document constants
const (
	SPDXVersion     = "SPDX-2.3"
	DataLicense     = "CC0-1.0"
	DocumentID      = "SPDXRef-DOCUMENT"
	NoAssertion     = "NOASSERTION"
	PurposeLibrary  = "LIBRARY"
	RelDescribes    = "DESCRIBES"
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Document represents the complete SPDX SBOM document.
type Document struct {
	SPDXVersion       string         `json:"spdxVersion" yaml:"spdxVersion"`
	DataLicense       string         `json:"dataLicense" yaml:"dataLicense"`
	SPDXID            string         `json:"SPDXID" yaml:"SPDXID"`
	Name              string         `json:"name" yaml:"name"`
	DocumentNamespace string         `json:"documentNamespace" yaml:"documentNamespace"`
	CreationInfo      CreationInfo   `json:"creationInfo" yaml:"creationInfo"`
	Packages          []Package      `json:"packages" yaml:"packages"`
	Relationships     []Relationship `json:"relationships" yaml:"relationships"`
}

// CreationInfo represents creation info in SPDX format.
type CreationInfo struct {
	Created  string   `json:"created" yaml:"created"`
	Creators []string `json:"creators" yaml:"creators"`
}

// Package represents one binary file as an SPDX package.
type Package struct {
	Name                  string        `json:"name" yaml:"name"`
	SPDXID                string        `json:"SPDXID" yaml:"SPDXID"`
	VersionInfo           string        `json:"versionInfo" yaml:"versionInfo"`
	PackageFileName       string        `json:"packageFileName" yaml:"packageFileName"`
	Supplier              string        `json:"supplier" yaml:"supplier"`
	DownloadLocation      string        `json:"downloadLocation" yaml:"downloadLocation"`
	FilesAnalyzed         bool          `json:"filesAnalyzed" yaml:"filesAnalyzed"`
	LicenseDeclared       string        `json:"licenseDeclared" yaml:"licenseDeclared"`
	LicenseConcluded      string        `json:"licenseConcluded" yaml:"licenseConcluded"`
	CopyrightText         string        `json:"copyrightText" yaml:"copyrightText"`
	Checksums             []Checksum    `json:"checksums" yaml:"checksums"`
	ExternalRefs          []ExternalRef `json:"externalRefs" yaml:"externalRefs"`
	PrimaryPackagePurpose string        `json:"primaryPackagePurpose" yaml:"primaryPackagePurpose"`
	Comment               string        `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Checksum represents a package checksum in SPDX format.
type Checksum struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Value     string `json:"checksumValue" yaml:"checksumValue"`
}

// ExternalRef represents an external reference in SPDX format.
type ExternalRef struct {
	ReferenceCategory string `json:"referenceCategory" yaml:"referenceCategory"`
	ReferenceType     string `json:"referenceType" yaml:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator" yaml:"referenceLocator"`
}

// Relationship represents a relationship between two SPDX elements.
type Relationship struct {
	SpdxElementID      string `json:"spdxElementId" yaml:"spdxElementId"`
	RelationshipType   string `json:"relationshipType" yaml:"relationshipType"`
	RelatedSpdxElement string `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`
}
