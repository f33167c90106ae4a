package cli

import (
	"errors"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

// Exit codes for gomdedit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChecksFailed indicates a check found divergences or files that
	// need formatting.
	ExitChecksFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that select an exit code.
var (
	// ErrChecksFailed signals a non-zero exit without an error log line.
	ErrChecksFailed = errors.New("checks failed")

	// ErrInvalidUsage marks bad flags, arguments or script input.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChecksFailed):
		return ExitChecksFailed
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
