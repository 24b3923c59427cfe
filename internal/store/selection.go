package store

import "math/bits"

// Selection is a bit-per-entry set aligned with an EntryStore's indices.
// The set-bit count is tracked incrementally so Count is O(1).
type Selection struct {
	words  []uint64
	length int
	count  int
}

func NewSelection(n int) *Selection {
	s := &Selection{}
	s.ResizeAndClear(n)
	return s
}

// ResizeAndClear sizes the set for n entries with none selected. Called
// immediately after every re-listing; a selection never carries over
// implicitly.
func (s *Selection) ResizeAndClear(n int) {
	need := (n + 63) / 64
	if cap(s.words) >= need {
		s.words = s.words[:need]
		for i := range s.words {
			s.words[i] = 0
		}
	} else {
		s.words = make([]uint64, need)
	}
	s.length = n
	s.count = 0
}

// Len returns the number of entries the set covers.
func (s *Selection) Len() int {
	return s.length
}

// Count returns the number of selected entries.
func (s *Selection) Count() int {
	return s.count
}

// IsSet reports whether entry i is selected.
func (s *Selection) IsSet(i int) bool {
	if i < 0 || i >= s.length {
		return false
	}
	return s.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Toggle flips entry i's bit.
func (s *Selection) Toggle(i int) {
	if i < 0 || i >= s.length {
		return
	}
	mask := uint64(1) << (uint(i) % 64)
	s.words[i/64] ^= mask
	if s.words[i/64]&mask != 0 {
		s.count++
	} else {
		s.count--
	}
}

// Set marks entry i selected. Setting an already-selected entry is a no-op.
func (s *Selection) Set(i int) {
	if i < 0 || i >= s.length || s.IsSet(i) {
		return
	}
	s.words[i/64] |= 1 << (uint(i) % 64)
	s.count++
}

// SelectAll marks every entry.
func (s *Selection) SelectAll() {
	full := s.length / 64
	for i := 0; i < full; i++ {
		s.words[i] = ^uint64(0)
	}
	if rem := s.length % 64; rem > 0 {
		s.words[full] = (1 << uint(rem)) - 1
	}
	s.count = s.length
}

// InvertAll flips every entry's bit.
func (s *Selection) InvertAll() {
	full := s.length / 64
	for i := 0; i < full; i++ {
		s.words[i] = ^s.words[i]
	}
	if rem := s.length % 64; rem > 0 {
		s.words[full] ^= (1 << uint(rem)) - 1
	}
	s.count = s.length - s.count
}

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	if s.count == 0 {
		return nil
	}
	out := make([]int, 0, s.count)
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*64+b)
			w &^= 1 << uint(b)
		}
	}
	return out
}
