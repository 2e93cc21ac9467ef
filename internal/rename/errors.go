package rename

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gyeh/namecleaner/internal/model"
)

var (
	// ErrInvalidPathToDirectory is returned by Open when the path does not
	// resolve to an existing directory.
	ErrInvalidPathToDirectory = errors.New("the provided path is not a path to a directory")

	// ErrNotPrepared is returned by Apply before a successful Prepare.
	ErrNotPrepared = errors.New("changes have not been prepared")

	// ErrAlreadyApplied is returned by Prepare and Apply once Apply has run.
	ErrAlreadyApplied = errors.New("changes have already been applied")

	// ErrCollision matches every *CollisionError.
	ErrCollision = errors.New("rename collision")
)

// RenameError wraps the filesystem error of the rename that aborted an
// apply run, together with the entry being renamed.
type RenameError struct {
	Entry model.ChangeEntry
	Err   error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %q to %q: %s", e.Entry.Original, e.Entry.Proposed, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Collision groups the original names that would all end up at Proposed.
type Collision struct {
	Proposed  string
	Originals []string
}

// CollisionError is returned by Prepare when two or more entries would be
// renamed to the same name, or when a rename would land on the name of any
// other entry in the directory.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	parts := make([]string, len(e.Collisions))
	for i, c := range e.Collisions {
		parts[i] = fmt.Sprintf("%q <- %s", c.Proposed, quoteAll(c.Originals))
	}
	return fmt.Sprintf("%s: %s", ErrCollision, strings.Join(parts, "; "))
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(q, ", ")
}
