package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ralt/binsbom/internal/models"
	"github.com/ralt/binsbom/internal/sbom"
	"github.com/ralt/binsbom/internal/scanner"
	"github.com/ralt/binsbom/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	classifierMagic = "magic"
	classifierFile  = "file"
)

// addGenerateFlags registers the generation flags on cmd
func addGenerateFlags(cmd *cobra.Command) {
	// Output flags
	cmd.Flags().String("format", string(sbom.FormatJSON), "Output format (json, yaml)")
	cmd.Flags().String("compress", string(utils.CodecNone), "Compress the output (none, gzip, zstd, xz)")

	// Classification flags
	cmd.Flags().String("classifier", classifierMagic, "How binaries are detected (magic, file)")
	cmd.Flags().String("file-command", scanner.DefaultFileCommand, "File-type utility used by the file classifier")

	// Checksum flags
	cmd.Flags().StringSlice("checksum", []string{}, "Extra checksum algorithms (sha1, sha512, md5, blake3); SHA256 is always included")

	// Document metadata flags
	cmd.Flags().String("name", "", "Document name (defaults to the root directory name)")
	cmd.Flags().String("namespace-base", sbom.DefaultNamespaceBase, "URI prefix for the document namespace")
	cmd.Flags().String("supplier", "", `Package supplier, e.g. "Organization: Example Corp"`)
	cmd.Flags().String("version-info", "unknown", "Version recorded for every package")
	cmd.Flags().StringSlice("creator", []string{}, `Extra document creators, e.g. "Organization: Example Corp"`)
}

func newClassifier(config *models.GenerateConfig) (scanner.Classifier, error) {
	if config.Classifier == classifierFile {
		return scanner.NewFileCommandClassifier(config.FileCommand)
	}
	return scanner.NewMagicClassifier(), nil
}

func runGeneration(ctx context.Context, out io.Writer, config *models.GenerateConfig) error {
	format, err := sbom.ParseFormat(config.Format)
	if err != nil {
		return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
	}

	codec, err := utils.ParseCodec(config.Compression)
	if err != nil {
		return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
	}

	var algos []utils.Algorithm
	for _, name := range config.Checksums {
		algo, err := utils.ParseAlgorithm(name)
		if err != nil {
			return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
		}
		algos = append(algos, algo)
	}

	classifier, err := newClassifier(config)
	if err != nil {
		return &models.SBOMError{Type: models.ErrClassify, Err: err}
	}

	created, err := sbom.CreationTime(time.Now(), os.Getenv(sbom.SourceDateEpochEnv))
	if err != nil {
		return &models.SBOMError{Type: models.ErrInvalidConfig, Err: err}
	}

	// Step 1: Scan for binaries
	logrus.Infof("Scanning directory: %s", config.RootDir)
	sc := scanner.NewFileSystemScanner(classifier)
	files, err := sc.Scan(ctx, config.RootDir)
	if err != nil {
		return &models.SBOMError{
			Type: models.ErrScan,
			Path: config.RootDir,
			Err:  err,
		}
	}

	if len(files) == 0 {
		logrus.Warn("No binaries found in root directory")
	}

	// Step 2: Checksum each binary and record it
	builder := sbom.NewBuilder(sbom.Options{
		Name:          config.DocumentName,
		NamespaceBase: config.NamespaceBase,
		Supplier:      config.Supplier,
		VersionInfo:   config.VersionInfo,
		Creators:      append([]string{"Tool: binsbom-" + Version}, config.Creators...),
		Created:       created,
	})

	var totalSize int64
	for _, f := range files {
		digest, err := utils.CalculateChecksums(f.Path, algos...)
		if err != nil {
			return &models.SBOMError{
				Type: models.ErrChecksum,
				Path: f.RelPath,
				Err:  err,
			}
		}
		totalSize += digest.Size

		checksums := make([]sbom.Checksum, 0, len(digest.Checksums))
		for _, c := range digest.Checksums {
			checksums = append(checksums, sbom.Checksum{Algorithm: string(c.Algorithm), Value: c.Value})
		}

		id := builder.Add(sbom.Entry{
			Name:      filepath.Base(f.RelPath),
			RelPath:   f.RelPath,
			Detail:    f.Detail,
			Checksums: checksums,
		})
		logrus.Debugf("Recorded %s as %s", f.RelPath, id)
	}

	// Step 3: Serialize and write
	doc := builder.Build()
	data, err := sbom.Encode(doc, format)
	if err != nil {
		return &models.SBOMError{Type: models.ErrAssemble, Err: err}
	}

	data, err = utils.Compress(data, codec)
	if err != nil {
		return &models.SBOMError{
			Type: models.ErrOutput,
			Err:  fmt.Errorf("failed to compress output: %w", err),
		}
	}

	outputPath := utils.EnsureExtension(config.OutputPath, codec.Extension())
	if err := utils.WriteFile(outputPath, data, 0644); err != nil {
		return &models.SBOMError{
			Type: models.ErrOutput,
			Path: outputPath,
			Err:  fmt.Errorf("failed to write SBOM: %w", err),
		}
	}

	logrus.Infof("Wrote %s (%s)", outputPath, sbom.MediaType(format))
	printSummary(out, outputPath, doc, files, totalSize)
	return nil
}

func printSummary(out io.Writer, outputPath string, doc *sbom.Document, files []scanner.ScannedFile, totalSize int64) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}
	sort.Strings(paths)

	fmt.Fprintf(out, "SBOM generated: %s\n", outputPath)
	fmt.Fprintf(out, "   Packages: %d\n", len(doc.Packages))
	fmt.Fprintf(out, "   Files: %d (%s)\n", len(paths), humanize.Bytes(uint64(totalSize)))
	for _, p := range paths {
		fmt.Fprintf(out, "   - %s\n", p)
	}
}
