package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "dir", Directory.String())
	assert.Equal(t, "EntryKind(7)", EntryKind(7).String())
}

func TestChangeEntryString(t *testing.T) {
	e := ChangeEntry{Original: "Foo.txt", Proposed: "foo.txt", Kind: File}
	assert.Equal(t, "Foo.txt -> foo.txt (file)", e.String())
}

func TestChangeSetCounts(t *testing.T) {
	cs := ChangeSet{
		{Original: "A", Proposed: "a", Kind: Directory},
		{Original: "B.txt", Proposed: "b.txt", Kind: File},
		{Original: "C D.md", Proposed: "c_d.md", Kind: File},
	}
	files, dirs := cs.Counts()
	assert.Equal(t, 2, files)
	assert.Equal(t, 1, dirs)

	files, dirs = ChangeSet(nil).Counts()
	assert.Zero(t, files)
	assert.Zero(t, dirs)
}

func TestRenameSummaryTotal(t *testing.T) {
	s := RenameSummary{FilesRenamed: 3, DirsRenamed: 2}
	assert.Equal(t, 5, s.Total())
}
