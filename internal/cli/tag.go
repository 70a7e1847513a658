package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relver/relver/internal/git"
	"github.com/relver/relver/internal/manifest"
	"github.com/relver/relver/internal/version"
)

func newTagCmd(root *rootOptions) *cobra.Command {
	var (
		explicit string
		message  string
		push     bool
	)
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Create a release tag for the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var v version.Version
			if explicit != "" {
				v, err = version.Parse(explicit)
			} else {
				v, err = manifest.File{Path: cfg.Manifest}.ReadVersion()
			}
			if err != nil {
				return err
			}
			if err := git.CheckInstalled(); err != nil {
				return err
			}
			tagger := git.NewTagger(git.ExecRunner{}, cfg.Remote)
			created, err := tagger.Create(v, message)
			if err != nil {
				return err
			}
			name := git.TagName(v)
			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(out, "Created tag %s\n", name)
			} else {
				fmt.Fprintf(out, "Tag %s already exists\n", name)
			}
			if push {
				if err := tagger.Push(v); err != nil {
					return err
				}
				fmt.Fprintf(out, "Pushed tag %s to remote\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&explicit, "version", "", "tag this version instead of the manifest version")
	cmd.Flags().StringVarP(&message, "message", "m", "", "tag annotation (default \"Release version <version>\")")
	cmd.Flags().BoolVar(&push, "push", false, "push the tag to the remote after creating it")
	return cmd
}
