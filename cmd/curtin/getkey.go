package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jnavila/curtin/pkg/execute"
	"github.com/jnavila/curtin/pkg/gpg"
)

func newCmdGetkey() *cobra.Command {
	var keyserver string

	getkeyCmd := &cobra.Command{
		Use:   "getkey <keyid>",
		Short: "Print the armoured public key for a key id",
		Long: `Exports the key from the local gpg keyring, fetching it from a keyserver
first when it is not present. A key imported during the lookup is deleted
again before the command returns.`,
		Example: `
# Print the Ubuntu archive signing key
$ curtin getkey 871920D1991BC93C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gpgCfg := cfg.GPG
			if keyserver != "" {
				gpgCfg.Keyserver = keyserver
			}

			client := gpg.New(execute.NewSystemRunner(), gpgCfg)
			armour, err := client.GetKeyByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), armour)
			return nil
		},
	}

	getkeyCmd.Flags().StringVar(&keyserver, "keyserver", "", "keyserver to fetch missing keys from (overrides config)")

	return getkeyCmd
}
