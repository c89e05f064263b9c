package mkfs

import "sort"

// mkfsCommands maps a filesystem type to the external tool that creates it.
var mkfsCommands = map[string]string{
	"btrfs":    "mkfs.btrfs",
	"ext2":     "mkfs.ext2",
	"ext3":     "mkfs.ext3",
	"ext4":     "mkfs.ext4",
	"fat":      "mkfs.fat",
	"fat12":    "mkfs.fat",
	"fat16":    "mkfs.fat",
	"fat32":    "mkfs.fat",
	"jfs":      "jfs_mkfs",
	"ntfs":     "mkntfs",
	"reiserfs": "mkfs.reiserfs",
	"swap":     "mkswap",
	"xfs":      "mkfs.xfs",
}

// specificToFamily groups filesystem types into families that share flag
// syntax. Types not listed here are their own family.
var specificToFamily = map[string]string{
	"ext2":  "ext",
	"ext3":  "ext",
	"ext4":  "ext",
	"fat12": "fat",
	"fat16": "fat",
	"fat32": "fat",
}

// labelLengthLimits is the maximum filesystem label length per family.
var labelLengthLimits = map[string]int{
	"btrfs":    256,
	"ext":      16,
	"fat":      11,
	"jfs":      16, // see jfs_tune manpage
	"ntfs":     32,
	"reiserfs": 16,
	"swap":     15, // not in manpages, found experimentally
	"xfs":      12,
}

// familyFlagMappings maps each logical flag name to the concrete
// command-line token per family. Families absent from a flag's mapping do
// not support that flag.
var familyFlagMappings = map[string]map[string]string{
	"label": {
		"btrfs":    "--label",
		"ext":      "-L",
		"fat":      "-n",
		"jfs":      "-L",
		"ntfs":     "--label",
		"reiserfs": "--label",
		"swap":     "--label",
		"xfs":      "-L",
	},
	"uuid": {
		"btrfs":    "--uuid",
		"ext":      "-U",
		"reiserfs": "--uuid",
		"swap":     "--uuid",
	},
	"force": {
		"btrfs":    "--force",
		"ext":      "-F",
		"ntfs":     "--force",
		"reiserfs": "-f",
		"swap":     "--force",
		"xfs":      "-f",
	},
	"fatsize": {
		"fat": "-F",
	},
	"quiet": {
		"ext":      "-q",
		"ntfs":     "-q",
		"reiserfs": "-q",
		"xfs":      "--quiet",
	},
}

// family returns the flag-syntax family for fstype.
func family(fstype string) string {
	if fam, ok := specificToFamily[fstype]; ok {
		return fam
	}
	return fstype
}

// SupportedFilesystems returns the filesystem types this package can
// create, sorted alphabetically.
func SupportedFilesystems() []string {
	fstypes := make([]string, 0, len(mkfsCommands))
	for fstype := range mkfsCommands {
		fstypes = append(fstypes, fstype)
	}
	sort.Strings(fstypes)
	return fstypes
}
