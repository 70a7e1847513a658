package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata reported by the version command, recorded via SetBuildInfo.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetBuildInfo records the binary's build metadata. main calls it with the
// values stamped in at link time.
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "relver %s\n", buildVersion)
			fmt.Fprintf(out, "  commit: %s\n", buildCommit)
			fmt.Fprintf(out, "  built:  %s\n", buildDate)
		},
	}
}
