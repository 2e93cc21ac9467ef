package model

import "time"

// RenameSummary captures the outcome of a single apply run.
type RenameSummary struct {
	RunID        string
	Dir          string
	FilesRenamed int
	DirsRenamed  int
	Duration     time.Duration
}

// Total returns the number of entries renamed.
func (s RenameSummary) Total() int {
	return s.FilesRenamed + s.DirsRenamed
}
