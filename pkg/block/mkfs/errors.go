package mkfs

import "fmt"

// InvalidPathError indicates the target device path is empty or does not
// exist.
type InvalidPathError struct {
	// Path is the offending device path
	Path string
}

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	if e.Path == "" {
		return "invalid device path: path is empty"
	}
	return fmt.Sprintf("%q: no such file or directory", e.Path)
}

// UnsupportedFilesystemError indicates the requested filesystem type has no
// known creation tool.
type UnsupportedFilesystemError struct {
	// Fstype is the unrecognized filesystem type
	Fstype string
}

// Error implements the error interface.
func (e *UnsupportedFilesystemError) Error() string {
	return fmt.Sprintf("unsupported filesystem type %q", e.Fstype)
}

// ToolNotFoundError indicates the creation tool for the requested
// filesystem type is not on the execution search path.
type ToolNotFoundError struct {
	// Tool is the missing executable name
	Tool string
}

// Error implements the error interface.
func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("need %q but it could not be found", e.Tool)
}

// LabelTooLongError indicates a filesystem label exceeds the family limit
// and strict mode forbids truncating it.
type LabelTooLongError struct {
	// Path is the target device path
	Path string

	// Fstype is the filesystem type being created
	Fstype string

	// Limit is the maximum label length for the filesystem family
	Limit int
}

// Error implements the error interface.
func (e *LabelTooLongError) Error() string {
	return fmt.Sprintf("filesystem label for %q exceeds the maximum for fstype %q: limit is %d",
		e.Path, e.Fstype, e.Limit)
}

// UnsupportedFlagError indicates a logical flag has no token for the
// filesystem family and strict mode forbids dropping it.
type UnsupportedFlagError struct {
	// Flag is the logical flag name
	Flag string

	// Family is the filesystem family lacking the flag
	Family string
}

// Error implements the error interface.
func (e *UnsupportedFlagError) Error() string {
	return fmt.Sprintf("flag %q not supported by filesystem family %q", e.Flag, e.Family)
}

// ConfigurationError indicates a logical flag name outside the fixed set.
// It reports a programming error in the caller, not bad user input, and is
// raised regardless of strict mode.
type ConfigurationError struct {
	// Flag is the unknown logical flag name
	Flag string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown flag name %q", e.Flag)
}

// MissingFieldError indicates a required field is absent from a storage
// configuration entry.
type MissingFieldError struct {
	// Field is the missing field name
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must be specified", e.Field)
}
