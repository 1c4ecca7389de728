package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "binsbom [root-dir] [output-file]",
		Short: "Generate an SPDX SBOM for the binaries in a directory tree",
		Long: `Binsbom walks a directory tree, identifies ELF, Mach-O and PE binaries,
computes their checksums and writes an SPDX-2.3 Software Bill of Materials
describing them.

The root directory defaults to the current directory and the output file
to sbom.spdx.json. An existing output file is overwritten.

Settings can also come from BINSBOM_* environment variables (for example
BINSBOM_SUPPLIER) or a .binsbom.yaml file in the working directory.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config := generateConfigFrom(v, args)

			// Validate configuration
			if err := validateConfig(config); err != nil {
				return err
			}

			logrus.Info("Starting SBOM generation...")
			logrus.Debugf("Configuration: %+v", *config)

			return runGeneration(cmd.Context(), cmd.OutOrStdout(), config)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default .binsbom.yaml in the working directory)")

	addGenerateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
