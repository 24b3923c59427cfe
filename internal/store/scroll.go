package store

// ScrollWindow maps a cursor position and entry count to the visible slice
// [Start, Start+Height). The window slides only when the cursor leaves it
// and never re-centers.
type ScrollWindow struct {
	Start  int
	Height int
}

// Advance slides the window the shortest distance that puts cursor back
// inside [Start, Start+Height).
func (w *ScrollWindow) Advance(cursor int) {
	if w.Height <= 0 {
		return
	}
	if cursor < w.Start {
		w.Start = cursor
	} else if cursor >= w.Start+w.Height {
		w.Start = cursor - w.Height + 1
	}
}

// Clamp pulls the window back into range after the entry count changed.
func (w *ScrollWindow) Clamp(total int) {
	if total <= w.Height {
		w.Start = 0
		return
	}
	if w.Start > total-w.Height {
		w.Start = total - w.Height
	}
	if w.Start < 0 {
		w.Start = 0
	}
}
