package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ralt/binsbom/internal/models"
	"github.com/ralt/binsbom/internal/sbom"
	"github.com/ralt/binsbom/internal/utils"
	"github.com/ralt/binsbom/internal/verifier"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <sbom-file> [root-dir]",
		Short: "Check a tree against a previously generated SBOM",
		Long: `Re-hashes every file named by a package's packageFileName under the
root directory and compares it with the SHA256 recorded in the SBOM.
Compressed (.gz, .zst, .xz) and YAML documents are detected by extension.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := &models.VerifyConfig{SBOMPath: args[0], RootDir: defaultRootDir}
			if len(args) > 1 {
				config.RootDir = args[1]
			}
			return runVerify(cmd.OutOrStdout(), config)
		},
	}

	return cmd
}

func runVerify(out io.Writer, config *models.VerifyConfig) error {
	logrus.Infof("Verifying %s against %s", config.SBOMPath, config.RootDir)

	raw, err := os.ReadFile(config.SBOMPath)
	if err != nil {
		return &models.SBOMError{
			Type: models.ErrVerify,
			Path: config.SBOMPath,
			Err:  fmt.Errorf("failed to read SBOM: %w", err),
		}
	}

	data, err := utils.Decompress(raw, utils.CodecFromPath(config.SBOMPath))
	if err != nil {
		return &models.SBOMError{
			Type: models.ErrVerify,
			Path: config.SBOMPath,
			Err:  fmt.Errorf("failed to decompress SBOM: %w", err),
		}
	}

	doc, err := sbom.Decode(bytes.NewReader(data), sbom.FormatFromPath(config.SBOMPath))
	if err != nil {
		return &models.SBOMError{Type: models.ErrVerify, Path: config.SBOMPath, Err: err}
	}

	result, err := verifier.Verify(doc, config.RootDir)
	if err != nil {
		return &models.SBOMError{Type: models.ErrVerify, Path: config.RootDir, Err: err}
	}

	fmt.Fprintf(out, "Verified: %d\n", len(result.Verified))
	fmt.Fprintf(out, "Mismatched: %d\n", len(result.Mismatched))
	for _, m := range result.Mismatched {
		fmt.Fprintf(out, "   - %s (expected %s, got %s)\n", m.RelPath, m.Expected, m.Actual)
	}
	fmt.Fprintf(out, "Missing: %d\n", len(result.Missing))
	for _, p := range result.Missing {
		fmt.Fprintf(out, "   - %s\n", p)
	}
	if len(result.Unlocated) > 0 {
		fmt.Fprintf(out, "Unlocated: %d\n", len(result.Unlocated))
	}

	if !result.OK() {
		failed := len(result.Mismatched) + len(result.Missing) + len(result.Unlocated)
		return &models.SBOMError{
			Type: models.ErrVerify,
			Path: config.SBOMPath,
			Err:  fmt.Errorf("%d of %d packages failed verification", failed, len(doc.Packages)),
		}
	}

	logrus.Info("All packages verified")
	return nil
}
