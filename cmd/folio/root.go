package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kanajetzt/folio"
)

type globalOpts struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Personal landing page served from a single site profile",
		Long: `folio - personal landing page served from a single site profile

The profile (name, bio, avatar and social handles) is read once from
folio.yaml and FOLIO_* environment variables, then rendered by every page.
Empty social handles are left off the page.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", folio.EnvOr("FOLIO_CONFIG", ""), "path to folio.yaml (env FOLIO_CONFIG)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newServeCmd(opts),
		newShowCmd(opts),
		newValidateCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadProfile loads the config and builds the profile it describes.
func (o *globalOpts) loadProfile() (folio.SiteConfig, folio.SiteProfile, error) {
	cfg, err := folio.LoadConfig(o.configPath)
	if err != nil {
		return folio.SiteConfig{}, folio.SiteProfile{}, err
	}
	return cfg, folio.NewProfile(cfg.Profile), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}
