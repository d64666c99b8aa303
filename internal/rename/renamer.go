package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrRename indicates that the filesystem rename failed.
	ErrRename = errors.New("error renaming file")

	// ErrDestinationExists indicates that another file already occupies the destination.
	ErrDestinationExists = errors.New("destination already exists")
)

// Outcome describes what Apply did with a plan.
type Outcome string

// Possible outcomes of Apply.
const (
	OutcomeRenamed   Outcome = "renamed"
	OutcomeUnchanged Outcome = "unchanged"
)

// Renamer performs content-addressed renames.
type Renamer struct {
	// Force allows an existing destination to be replaced.
	Force bool
}

// Apply renames plan.Source to plan.Destination in place.
func (r *Renamer) Apply(plan Plan) (Outcome, error) {
	if plan.Unchanged() {
		return OutcomeUnchanged, nil
	}

	if !r.Force {
		if err := checkDestination(plan); err != nil {
			return "", err
		}
	}

	if err := os.Rename(plan.Source, plan.Destination); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRename, plan.Source, unwrapLinkError(err))
	}

	return OutcomeRenamed, nil
}

func checkDestination(plan Plan) error {
	dst, err := os.Lstat(plan.Destination)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrRename, plan.Source, err)
	}

	// Case-insensitive filesystems report the source itself under the new spelling.
	if src, err := os.Lstat(plan.Source); err == nil && os.SameFile(src, dst) {
		return nil
	}

	return fmt.Errorf("%w %s: %w: %s", ErrRename, plan.Source, ErrDestinationExists, plan.Destination)
}

func unwrapLinkError(err error) error {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}

	return err
}
