package store

import "sort"

// Snapshot records the selection of one directory at the moment the user
// navigated away. Names are owned copies, never views into an EntryStore
// buffer; Indices remember where each name sat in the listing so restore
// can skip the scan when the directory is unchanged.
type Snapshot struct {
	Names   []string
	Indices []int
}

// DirSelection pairs a directory with the names selected in it.
type DirSelection struct {
	Dir   string
	Names []string
}

// History caches selection snapshots across navigation, keyed by absolute
// directory path. Entries are single-use: Take removes what it returns.
type History struct {
	snapshots map[string]Snapshot
}

func NewHistory() *History {
	return &History{snapshots: make(map[string]Snapshot)}
}

// Save stores dir's snapshot, replacing any previous one.
func (h *History) Save(dir string, snap Snapshot) {
	h.snapshots[dir] = snap
}

// Take returns dir's snapshot and removes it.
func (h *History) Take(dir string) (Snapshot, bool) {
	snap, ok := h.snapshots[dir]
	if ok {
		delete(h.snapshots, dir)
	}
	return snap, ok
}

// Drain returns every stored (dir, names) pair in path order and empties
// the history.
func (h *History) Drain() []DirSelection {
	if len(h.snapshots) == 0 {
		return nil
	}
	out := make([]DirSelection, 0, len(h.snapshots))
	for dir, snap := range h.snapshots {
		out = append(out, DirSelection{Dir: dir, Names: snap.Names})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dir < out[j].Dir })
	clear(h.snapshots)
	return out
}

// Len returns the number of cached snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Walk calls fn for every snapshot in path order without consuming any.
func (h *History) Walk(fn func(dir string, snap Snapshot)) {
	dirs := make([]string, 0, len(h.snapshots))
	for d := range h.snapshots {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	for _, d := range dirs {
		fn(d, h.snapshots[d])
	}
}

// CaptureSnapshot copies the selected names out of the store. The result
// owns its strings and stays valid across re-listings.
func CaptureSnapshot(es *EntryStore, sel *Selection) Snapshot {
	idx := sel.Indices()
	if len(idx) == 0 {
		return Snapshot{}
	}
	names := make([]string, len(idx))
	for i, entryIdx := range idx {
		names[i] = es.Name(entryIdx)
	}
	return Snapshot{Names: names, Indices: idx}
}

// RestoreSnapshot re-applies a snapshot to a freshly listed store. Each
// saved name is matched by its remembered index first, then by scan when
// the listing shifted; names no longer present are dropped.
func RestoreSnapshot(es *EntryStore, sel *Selection, snap Snapshot) {
	for i, name := range snap.Names {
		idx := -1
		if i < len(snap.Indices) {
			si := snap.Indices[i]
			if si >= 0 && si < es.Len() && string(es.NameAt(si)) == name {
				idx = si
			}
		}
		if idx < 0 {
			idx = es.IndexOf(name)
		}
		if idx >= 0 {
			sel.Set(idx)
		}
	}
}
