package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jnavila/curtin/internal/logger"
	"github.com/jnavila/curtin/pkg/block/mkfs"
	"github.com/jnavila/curtin/pkg/execute"
)

func newCmdMkfs() *cobra.Command {
	var (
		fstype string
		label  string
		fsUUID string
		force  bool
		strict bool
	)

	mkfsCmd := &cobra.Command{
		Use:   "mkfs --fstype <type> [flags] <device>",
		Short: "Create a filesystem on a block device",
		Long: `Builds and runs the mkfs command for the requested filesystem type.
Labels longer than the filesystem's limit are truncated unless --strict
is given. Pass --uuid random to generate a fresh filesystem UUID.

Supported types: ` + strings.Join(mkfs.SupportedFilesystems(), ", ") + `.`,
		Example: `
# Force-create an ext4 filesystem with a label
$ curtin mkfs --fstype ext4 --label rootfs --force /dev/vda1

# FAT32 with a generated UUID
$ curtin mkfs --fstype fat32 --uuid random /dev/vda2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device := args[0]

			if fsUUID == "random" {
				fsUUID = uuid.NewString()
			}

			maker := mkfs.NewMaker(execute.NewSystemRunner())
			opts := mkfs.Options{
				Strict: strict,
				Label:  label,
				UUID:   fsUUID,
				Force:  force,
			}
			if err := maker.Make(cmd.Context(), device, fstype, opts); err != nil {
				return err
			}

			logger.Info("created %s filesystem on %s", fstype, device)
			return nil
		},
	}

	mkfsCmd.Flags().StringVarP(&fstype, "fstype", "t", "", "filesystem type to create")
	mkfsCmd.Flags().StringVar(&label, "label", "", "filesystem label")
	mkfsCmd.Flags().StringVar(&fsUUID, "uuid", "", `filesystem UUID ("random" generates one)`)
	mkfsCmd.Flags().BoolVarP(&force, "force", "f", false, "format even if a filesystem is already present")
	mkfsCmd.Flags().BoolVar(&strict, "strict", false, "fail on unsupported flags instead of dropping them")
	_ = mkfsCmd.MarkFlagRequired("fstype")

	return mkfsCmd
}
