package main

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/jnavila/curtin/internal/logger"
	"github.com/jnavila/curtin/pkg/block/mkfs"
	"github.com/jnavila/curtin/pkg/execute"
)

// applyAction is the subset of a storage action the apply loop itself
// consumes. The remaining keys are decoded by the command builder.
type applyAction struct {
	ID       string `mapstructure:"id"`
	Device   string `mapstructure:"device"`
	Preserve bool   `mapstructure:"preserve"`
}

func newCmdApply() *cobra.Command {
	var strict bool

	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the configured storage format actions",
		Long: `Walks storage.config in order and formats each device it names. Actions
with preserve: true keep their existing filesystem and are skipped; every
other action formats its device with force enabled. The first failure
aborts the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := cfg.Storage.Config
			if len(actions) == 0 {
				logger.Info("no storage actions configured")
				return nil
			}

			maker := mkfs.NewMaker(execute.NewSystemRunner())
			for i, raw := range actions {
				var action applyAction
				if err := mapstructure.Decode(raw, &action); err != nil {
					return fmt.Errorf("storage.config[%d]: %w", i, err)
				}

				name := action.ID
				if name == "" {
					name = action.Device
				}

				if action.Preserve {
					logger.Info("skipping %s: preserve is set", name)
					continue
				}

				logger.Info("formatting %s", name)
				if err := maker.FromConfig(cmd.Context(), action.Device, raw, strict); err != nil {
					return fmt.Errorf("storage.config[%d] (%s): %w", i, name, err)
				}
			}

			return nil
		},
	}

	applyCmd.Flags().BoolVar(&strict, "strict", false, "fail on unsupported flags instead of dropping them")

	return applyCmd
}
