// Package mkfs wraps the mkfs family of tools and determines the
// appropriate command and flags for each filesystem type.
//
// Filesystem types are grouped into families sharing flag syntax (ext2,
// ext3 and ext4 form "ext"; the FAT variants form "fat"; everything else is
// its own family). The package resolves the creation tool from a fixed
// table, translates logical flags (label, uuid, force, fatsize) into the
// family's concrete tokens and invokes the tool through an execute.Runner.
//
// Supported types: btrfs, ext2, ext3, ext4, fat, fat12, fat16, fat32, jfs,
// ntfs, reiserfs, swap, xfs.
package mkfs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"

	"github.com/jnavila/curtin/pkg/distro"
	"github.com/jnavila/curtin/pkg/execute"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Options carries the optional settings for a single filesystem creation.
//
// An empty Label or UUID means the flag is not passed to the tool. Strict
// turns otherwise-silent fallback behaviors (unsupported flag dropped,
// over-long label truncated) into hard errors.
type Options struct {
	// Strict makes unsupported flags and over-long labels fatal
	Strict bool

	// Label is the filesystem label, empty for none
	Label string

	// UUID is the filesystem UUID, empty for none
	UUID string

	// Force makes the tool proceed over existing data or filesystems
	Force bool
}

// Maker creates filesystems on block devices.
type Maker struct {
	runner execute.Runner
}

// NewMaker creates a Maker that invokes tools through runner.
func NewMaker(runner execute.Runner) *Maker {
	return &Maker{runner: runner}
}

// Make creates a filesystem of the given type on the device at path.
//
// The argument list is assembled in a fixed order: force flag, label flag,
// uuid flag, FAT size flag, then the device path. If the label exceeds the
// family's length limit it is truncated, or rejected with
// *LabelTooLongError when opts.Strict is set. Flags unsupported by the
// family are silently dropped, or rejected with *UnsupportedFlagError when
// opts.Strict is set.
//
// Returns:
//   - *InvalidPathError: path is empty or does not exist
//   - *UnsupportedFilesystemError: fstype has no known creation tool
//   - *ToolNotFoundError: the creation tool is not on the search path
//   - *execute.ProcessError: the tool ran and failed
func (m *Maker) Make(ctx context.Context, path, fstype string, opts Options) error {
	if path == "" {
		return &InvalidPathError{Path: path}
	}
	if _, err := os.Stat(path); err != nil {
		return &InvalidPathError{Path: path}
	}

	fam := family(fstype)
	command, ok := mkfsCommands[fstype]
	if !ok {
		return &UnsupportedFilesystemError{Fstype: fstype}
	}

	if _, err := m.runner.LookPath(command); err != nil {
		return &ToolNotFoundError{Tool: command}
	}

	var args []string

	if opts.Force {
		// On precise, mkfs.btrfs has no force flag, though it does in
		// later releases.
		skip := fam == "btrfs" && distro.LsbRelease(ctx, m.runner).Codename == "precise"
		if !skip {
			tokens, err := flagMapping("force", fam, "", opts.Strict)
			if err != nil {
				return err
			}
			args = append(args, tokens...)
		}
	}

	if opts.Label != "" {
		label := opts.Label
		limit := labelLengthLimits[fam]
		if utf8.RuneCountInString(label) > limit {
			if opts.Strict {
				return &LabelTooLongError{Path: path, Fstype: fstype, Limit: limit}
			}
			label = string([]rune(label)[:limit])
		}
		tokens, err := flagMapping("label", fam, label, opts.Strict)
		if err != nil {
			return err
		}
		args = append(args, tokens...)
	}

	if opts.UUID != "" {
		tokens, err := flagMapping("uuid", fam, opts.UUID, opts.Strict)
		if err != nil {
			return err
		}
		args = append(args, tokens...)
	}

	if fam == "fat" {
		fatSize := strings.Trim(fstype, asciiLetters)
		switch fatSize {
		case "12", "16", "32":
			tokens, err := flagMapping("fatsize", fam, fatSize, opts.Strict)
			if err != nil {
				return err
			}
			args = append(args, tokens...)
		}
	}

	args = append(args, path)

	_, _, err := m.runner.Run(ctx, command, args...)
	return err
}

// formatOptions carries the filesystem settings read from a storage
// configuration entry.
type formatOptions struct {
	Fstype string `mapstructure:"fstype"`
	Label  string `mapstructure:"label"`
	UUID   string `mapstructure:"uuid"`
}

// FromConfig creates a filesystem on the device at path according to a
// storage configuration entry.
//
// The entry must carry an fstype; label and uuid are optional. The force
// flag is always enabled: residual metadata on a partition that has not
// been wiped can make some mkfs tools refuse to run.
//
// Returns *MissingFieldError if the entry has no fstype, otherwise whatever
// Make returns.
func (m *Maker) FromConfig(ctx context.Context, path string, info map[string]any, strict bool) error {
	var opts formatOptions
	if err := mapstructure.Decode(info, &opts); err != nil {
		return fmt.Errorf("failed to decode format entry: %w", err)
	}

	if opts.Fstype == "" {
		return &MissingFieldError{Field: "fstype"}
	}

	return m.Make(ctx, path, opts.Fstype, Options{
		Strict: strict,
		Label:  opts.Label,
		UUID:   opts.UUID,
		Force:  true,
	})
}
