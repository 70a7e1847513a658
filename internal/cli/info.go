package cli

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/relver/relver/internal/images"
	"github.com/relver/relver/internal/manifest"
)

func newInfoCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the container image references for the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			v, err := manifest.File{Path: cfg.Manifest}.ReadVersion()
			if err != nil {
				return err
			}
			info := images.ForVersion(cfg.Registry, cfg.ImageRepository(), v)
			if err := info.Validate(); err != nil {
				log.WithError(err).Warn("image reference does not validate")
			}
			rendered, err := info.Render()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Docker Images Information:")
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
	return cmd
}
