package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/relver/relver/internal/git"
	"github.com/relver/relver/internal/manifest"
	"github.com/relver/relver/internal/version"
)

func newCurrentCmd(root *rootOptions) *cobra.Command {
	var fromGit bool
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var v version.Version
			if fromGit {
				if err := git.CheckInstalled(); err != nil {
					return err
				}
				latest, ok, err := git.NewTagger(git.ExecRunner{}, cfg.Remote).LatestVersion()
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("no release tags found")
				}
				v = latest
			} else {
				v, err = manifest.File{Path: cfg.Manifest}.ReadVersion()
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current version: %s\n", v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromGit, "from-git", false, "read the highest release tag instead of the manifest")
	return cmd
}
