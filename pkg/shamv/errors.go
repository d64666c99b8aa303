package shamv

import (
	"errors"

	"github.com/sivchari/shamv/internal/config"
	"github.com/sivchari/shamv/internal/digest"
)

var (
	// ErrInsufficientArguments indicates that no file operands were given.
	ErrInsufficientArguments = errors.New("must specify at least one file")

	// ErrFileNotFound indicates that an input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrRenameFailed indicates that one or more renames in a batch failed.
	ErrRenameFailed = errors.New("one or more files could not be renamed")
)

// Process exit statuses.
const (
	ExitSuccess = iota
	ExitInsufficientArgs
	ExitUnsupportedAlgorithm
	ExitFileNotFound
	ExitDigestError
	ExitRenameError
)

// ExitCode maps an error returned by the engine or configuration to a process status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, digest.ErrUnsupportedAlgorithm):
		return ExitUnsupportedAlgorithm
	case errors.Is(err, ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, digest.ErrDigest):
		return ExitDigestError
	case errors.Is(err, ErrRenameFailed):
		return ExitRenameError
	case errors.Is(err, ErrInsufficientArguments), errors.Is(err, config.ErrInvalidFormat):
		return ExitInsufficientArgs
	default:
		return ExitInsufficientArgs
	}
}
