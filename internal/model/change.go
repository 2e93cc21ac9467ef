package model

import "fmt"

// EntryKind classifies a directory entry as a regular file or a sub-directory.
type EntryKind int

const (
	File EntryKind = iota
	Directory
)

func (k EntryKind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "dir"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// ChangeEntry records one pending rename inside the target directory.
// Both names are base names relative to that directory.
type ChangeEntry struct {
	Original string
	Proposed string
	Kind     EntryKind
}

func (e ChangeEntry) String() string {
	return fmt.Sprintf("%s -> %s (%s)", e.Original, e.Proposed, e.Kind)
}

// ChangeSet is the ordered list of renames computed by a prepare pass.
type ChangeSet []ChangeEntry

// Counts returns how many entries of each kind the set holds.
func (cs ChangeSet) Counts() (files, dirs int) {
	for _, e := range cs {
		switch e.Kind {
		case File:
			files++
		case Directory:
			dirs++
		}
	}
	return files, dirs
}
