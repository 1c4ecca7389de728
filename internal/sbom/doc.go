// Package sbom assembles SPDX-2.3 documents describing binaries found in a
// directory tree, and serializes them as JSON or YAML.
package sbom
