package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the binsbom release, set at build time with
// -ldflags "-X github.com/ralt/binsbom/internal/cli.Version=..."
var Version = "dev"

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the binsbom version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "binsbom %s\n", Version)
		},
	}
}
