package rename

import (
	"sort"

	"github.com/gyeh/namecleaner/internal/model"
)

// findCollisions checks a candidate change set against the directory
// snapshot. A proposed name collides when more than one original maps to
// it, or when it names any other entry in the snapshot, whether or not that
// entry is itself being renamed. Results are sorted by proposed name.
func findCollisions(changes model.ChangeSet, existing []string) []Collision {
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}
	owners := make(map[string][]string, len(changes))
	for _, c := range changes {
		owners[c.Proposed] = append(owners[c.Proposed], c.Original)
	}

	var out []Collision
	for proposed, origs := range owners {
		if len(origs) > 1 || present[proposed] {
			out = append(out, Collision{Proposed: proposed, Originals: origs})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Proposed < out[j].Proposed
	})
	return out
}
