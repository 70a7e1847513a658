package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/relver/relver/internal/manifest"
	"github.com/relver/relver/internal/version"
)

func newBumpCmd(root *rootOptions) *cobra.Command {
	var (
		kind   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Bump the version recorded in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKind(kind) {
				return errors.Errorf("invalid bump type %q (expected one of: %s)", kind, strings.Join(version.Kinds, ", "))
			}
			cmd.SilenceUsage = true
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			file := manifest.File{Path: cfg.Manifest}
			current, err := file.ReadVersion()
			if err != nil {
				return err
			}
			next, err := current.Bump(kind)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would bump version from %s to %s\n", current, next)
				return nil
			}
			if err := file.WriteVersion(next); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bumped version from %s to %s\n", current, next)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "", "bump type: major, minor, or patch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the bump without writing the manifest")
	cmd.MarkFlagRequired("type")
	return cmd
}

func validKind(kind string) bool {
	for _, k := range version.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
