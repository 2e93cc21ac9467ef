package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/namecleaner/internal/display"
	"github.com/gyeh/namecleaner/internal/exitcode"
	"github.com/gyeh/namecleaner/internal/prompt"
	"github.com/gyeh/namecleaner/internal/rename"
)

const (
	viewQuestion  = "Enter v to view changes before applying or q to quit: "
	applyQuestion = "Enter a to apply changes or q to quit: "
)

// session drives one prepare/preview/apply run and maps its outcome to an
// exit code.
type session struct {
	log         zerolog.Logger
	printer     *display.Printer
	prompter    *prompt.Prompter
	interactive bool
}

func newSession(cmd *cobra.Command, log zerolog.Logger) *session {
	return &session{
		log:         log,
		printer:     display.NewPrinter(cmd.OutOrStdout(), display.ColorEnabled(cfg.Color, os.Stdout)),
		prompter:    prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		interactive: prompt.IsInteractive(os.Stdin),
	}
}

// clean prepares renames for dir and applies them, asking first unless
// force is set.
func (s *session) clean(dir string, force bool) int {
	d, code := s.prepare(dir)
	if d == nil {
		return code
	}
	files, dirs := d.Preview().Counts()
	if files+dirs == 0 {
		s.printer.AlreadyClean(dir)
		return exitcode.Success
	}

	if !force {
		if !s.interactive {
			s.log.Error().Msg("stdin is not a terminal; pass --force to rename without confirmation")
			return exitcode.UsageError
		}
		s.printer.Pending(dir, files, dirs)
		if !s.confirm(viewQuestion, "v") {
			return exitcode.Success
		}
		s.printer.Preview(d.Preview())
		if !s.confirm(applyQuestion, "a") {
			return exitcode.Success
		}
	}

	return s.apply(d)
}

// plan prepares renames for dir and prints them without touching anything.
func (s *session) plan(dir string) int {
	d, code := s.prepare(dir)
	if d == nil {
		return code
	}
	files, dirs := d.Preview().Counts()
	if files+dirs == 0 {
		s.printer.AlreadyClean(dir)
		return exitcode.Success
	}
	s.printer.Pending(dir, files, dirs)
	s.printer.Preview(d.Preview())
	return exitcode.Success
}

func (s *session) prepare(dir string) (*rename.Directory, int) {
	d, err := rename.Open(dir, rename.WithLogger(s.log))
	if err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("cannot open directory")
		return nil, exitcode.InvalidPath
	}

	files, dirs, err := d.Prepare()
	if err != nil {
		var ce *rename.CollisionError
		if errors.As(err, &ce) {
			s.printer.Collisions(ce)
			s.log.Error().Int("collisions", len(ce.Collisions)).Str("dir", dir).Msg("prepare failed")
			return nil, exitcode.CollisionError
		}
		s.log.Error().Err(err).Str("dir", dir).Msg("prepare failed")
		return nil, exitcode.UsageError
	}

	s.log.Debug().
		Str("dir", dir).
		Int("files", files).
		Int("dirs", dirs).
		Msg("prepare complete")
	return d, exitcode.Success
}

func (s *session) apply(d *rename.Directory) int {
	summary, err := d.Apply()
	if err != nil {
		var re *rename.RenameError
		if errors.As(err, &re) {
			s.log.Error().
				Err(re.Err).
				Str("from", re.Entry.Original).
				Str("to", re.Entry.Proposed).
				Int("renamed", summary.Total()).
				Msg("rename failed, remaining entries skipped")
			s.printer.Summary(summary)
			if summary.Total() > 0 {
				return exitcode.PartialSuccess
			}
			return exitcode.RenameError
		}
		s.log.Error().Err(err).Msg("apply failed")
		return exitcode.RenameError
	}

	s.printer.Summary(summary)
	return exitcode.Success
}

// confirm asks question until it gets want or "q". End of input counts as q.
func (s *session) confirm(question, want string) bool {
	choice, err := s.prompter.Choose(question, want, "q")
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.log.Warn().Err(err).Msg("reading answer failed")
		}
		return false
	}
	return choice == want
}
