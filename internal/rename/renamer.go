package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/namecleaner/internal/model"
	"github.com/gyeh/namecleaner/internal/normalize"
)

// Phase tracks where a Directory is in the prepare/apply workflow.
type Phase int

const (
	Unprepared Phase = iota
	Prepared
	Applied
)

func (p Phase) String() string {
	switch p {
	case Unprepared:
		return "unprepared"
	case Prepared:
		return "prepared"
	case Applied:
		return "applied"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Directory is a handle on one target directory. It lists the directory
// once when opened and computes renames from that snapshot only.
// A Directory is not safe for concurrent use.
type Directory struct {
	path    string
	entries []string
	changes model.ChangeSet
	phase   Phase
	log     zerolog.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithLogger attaches a logger for per-rename debug lines and run totals.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Directory) { d.log = log }
}

// Open validates that path is an existing directory and snapshots its
// immediate entries.
func Open(path string, opts ...Option) (*Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPathToDirectory, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPathToDirectory, path)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	names := make([]string, len(dirEntries))
	for i, e := range dirEntries {
		names[i] = e.Name()
	}

	d := &Directory{
		path:    path,
		entries: names,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Path returns the directory path as given to Open.
func (d *Directory) Path() string { return d.path }

// Phase returns the current workflow phase.
func (d *Directory) Phase() Phase { return d.phase }

// Prepare computes the change set from the snapshot taken by Open and
// returns how many files and directories need renaming. It may be called
// again before Apply; each call starts from the same snapshot.
//
// Entries that are neither regular files nor directories are ignored, as are
// names that would normalize to nothing. If any proposed name collides,
// Prepare returns a *CollisionError and the directory stays Unprepared.
func (d *Directory) Prepare() (files, dirs int, err error) {
	if d.phase == Applied {
		return 0, 0, ErrAlreadyApplied
	}

	d.changes = nil
	d.phase = Unprepared

	var changes model.ChangeSet
	for _, name := range d.entries {
		proposed := normalize.Name(name)
		if proposed == name || proposed == "" {
			continue
		}

		info, err := os.Stat(filepath.Join(d.path, name))
		if err != nil {
			// Vanished or dangling since the snapshot.
			continue
		}
		var kind model.EntryKind
		switch {
		case info.Mode().IsRegular():
			kind = model.File
		case info.IsDir():
			kind = model.Directory
		default:
			continue
		}
		changes = append(changes, model.ChangeEntry{Original: name, Proposed: proposed, Kind: kind})
	}

	if collisions := findCollisions(changes, d.entries); len(collisions) > 0 {
		return 0, 0, &CollisionError{Collisions: collisions}
	}

	d.changes = changes
	d.phase = Prepared
	files, dirs = changes.Counts()
	return files, dirs, nil
}

// Preview returns a copy of the pending change set. It is empty until
// Prepare succeeds.
func (d *Directory) Preview() model.ChangeSet {
	out := make(model.ChangeSet, len(d.changes))
	copy(out, d.changes)
	return out
}

// Apply performs every rename in the prepared change set, in order. It stops
// at the first failure without rolling back earlier renames; the returned
// summary counts what was renamed before the failure, and the error is a
// *RenameError wrapping the filesystem error.
//
// The directory is Applied afterwards whether or not every rename succeeded.
func (d *Directory) Apply() (model.RenameSummary, error) {
	switch d.phase {
	case Unprepared:
		return model.RenameSummary{}, ErrNotPrepared
	case Applied:
		return model.RenameSummary{}, ErrAlreadyApplied
	}
	d.phase = Applied

	start := time.Now()
	summary := model.RenameSummary{
		RunID: uuid.New().String(),
		Dir:   d.path,
	}
	log := d.log.With().Str("run_id", summary.RunID).Str("dir", d.path).Logger()

	for _, c := range d.changes {
		if err := renameEntry(d.path, c); err != nil {
			summary.Duration = time.Since(start)
			log.Debug().
				Str("from", c.Original).
				Str("to", c.Proposed).
				Err(err).
				Msg("rename failed, aborting")
			return summary, &RenameError{Entry: c, Err: err}
		}
		switch c.Kind {
		case model.File:
			summary.FilesRenamed++
		case model.Directory:
			summary.DirsRenamed++
		}
		log.Debug().
			Str("from", c.Original).
			Str("to", c.Proposed).
			Stringer("kind", c.Kind).
			Msg("renamed")
	}

	summary.Duration = time.Since(start)
	log.Info().
		Int("files", summary.FilesRenamed).
		Int("dirs", summary.DirsRenamed).
		Dur("duration", summary.Duration).
		Msg("apply complete")
	return summary, nil
}

// renameEntry renames one entry inside dir. It refuses to replace an
// existing entry unless the destination is the source itself, which happens
// on case-insensitive filesystems.
func renameEntry(dir string, c model.ChangeEntry) error {
	from := filepath.Join(dir, c.Original)
	to := filepath.Join(dir, c.Proposed)

	dst, err := os.Lstat(to)
	switch {
	case err == nil:
		src, serr := os.Lstat(from)
		if serr != nil {
			return serr
		}
		if !os.SameFile(src, dst) {
			return &fs.PathError{Op: "rename", Path: to, Err: fs.ErrExist}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	return os.Rename(from, to)
}
