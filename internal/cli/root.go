// Package cli wires the relver command tree: current, bump, tag, info, and
// version. Result lines go to the command's stdout; diagnostics go through
// the logger on stderr.
package cli

import (
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/relver/relver/internal/config"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	manifest   string
	verbose    bool
}

// loadConfig resolves the effective configuration, letting the --manifest
// flag override the config file.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.manifest != "" {
		cfg.Manifest = o.manifest
	}
	return cfg, nil
}

// NewRootCmd builds the relver command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "relver",
		Short: "Manage the project version, release tags, and image references",
		Long: `relver keeps the version in the project manifest, the git release
tags, and the published container image references in step with each other.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetHandler(clihandler.New(cmd.ErrOrStderr()))
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultFile+" if present)")
	cmd.PersistentFlags().StringVar(&opts.manifest, "manifest", "", "manifest file holding the version (default "+config.DefaultManifest+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(
		newCurrentCmd(opts),
		newBumpCmd(opts),
		newTagCmd(opts),
		newInfoCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the CLI. Cobra reports the error; Execute only sets the exit
// status.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
