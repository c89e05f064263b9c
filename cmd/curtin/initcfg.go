package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jnavila/curtin/pkg/config"
)

func newCmdInit() *cobra.Command {
	var (
		path  string
		force bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes a commented default configuration file to ` + config.GetDefaultConfigPath() + `
or to --path. Existing files are only overwritten with --force.`,
		// init must work with no or broken config present, so it replaces
		// the root's config-loading hook with a no-op.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if path != "" {
				if err := config.InitConfigToPath(path, force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
				return nil
			}

			written, err := config.InitConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", written)
			return nil
		},
	}

	initCmd.Flags().StringVar(&path, "path", "", "write the config file to this path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return initCmd
}
