package store

// Kind classifies a directory entry.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink    // symlink to a file, or broken
	KindSymlinkDir // symlink whose target is a directory
)

// IsDir reports whether the entry behaves as a directory for navigation.
func (k Kind) IsDir() bool {
	return k == KindDir || k == KindSymlinkDir
}

// IsSymlink reports whether the entry is a symlink regardless of target.
func (k Kind) IsSymlink() bool {
	return k == KindSymlink || k == KindSymlinkDir
}

// EntryStore holds one directory listing in packed form: all names share a
// single reusable byte buffer, with per-entry end offsets and kind tags in
// parallel slices. Directories occupy indices [0, DirCount()) and everything
// else the rest; within each group entries keep their append order.
type EntryStore struct {
	names []byte
	ends  []int
	kinds []Kind
	dirs  int
}

func NewEntryStore() *EntryStore {
	return &EntryStore{}
}

// Clear drops all entries but keeps the allocated capacity. Any name view
// previously returned by NameAt becomes invalid.
func (s *EntryStore) Clear() {
	s.names = s.names[:0]
	s.ends = s.ends[:0]
	s.kinds = s.kinds[:0]
	s.dirs = 0
}

// Append adds one entry. Directories must all be appended before the first
// non-directory so the dirs-first index contract holds.
func (s *EntryStore) Append(name string, kind Kind) {
	if kind.IsDir() {
		if s.dirs != len(s.ends) {
			panic("store: directory appended after non-directory")
		}
		s.dirs++
	}
	s.names = append(s.names, name...)
	s.ends = append(s.ends, len(s.names))
	s.kinds = append(s.kinds, kind)
}

// Len returns the number of entries.
func (s *EntryStore) Len() int {
	return len(s.ends)
}

// DirCount returns the number of leading directory entries.
func (s *EntryStore) DirCount() int {
	return s.dirs
}

// NameAt returns entry i's name as a view into the shared buffer. The view
// is valid only until the next Clear or Append; copy it to keep it longer.
func (s *EntryStore) NameAt(i int) []byte {
	start := 0
	if i > 0 {
		start = s.ends[i-1]
	}
	return s.names[start:s.ends[i]:s.ends[i]]
}

// Name returns entry i's name as an owned string copy.
func (s *EntryStore) Name(i int) string {
	return string(s.NameAt(i))
}

// KindAt returns entry i's kind tag.
func (s *EntryStore) KindAt(i int) Kind {
	return s.kinds[i]
}

// IndexOf returns the index of the entry with the given name, or -1.
func (s *EntryStore) IndexOf(name string) int {
	for i := range s.ends {
		if string(s.NameAt(i)) == name {
			return i
		}
	}
	return -1
}
