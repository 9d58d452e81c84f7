package tui

// Viewport tracks the visible slice of a list whose highlight position is
// owned elsewhere (e.g. by a dropdown controller). Screens embed it and call
// EnsureVisible after every highlight move.
type Viewport struct {
	Offset int // first visible item
	Height int // visible rows
}

// EnsureVisible adjusts Offset so pos is within the visible window.
// Negative positions (no highlight yet) leave the offset alone.
func (v *Viewport) EnsureVisible(pos int) {
	if pos < 0 {
		return
	}
	if pos < v.Offset {
		v.Offset = pos
	}
	if v.Height > 0 && pos >= v.Offset+v.Height {
		v.Offset = pos - v.Height + 1
	}
}

// Clip returns the [start, end) range of visible items for a list of total
// entries.
func (v *Viewport) Clip(total int) (int, int) {
	start := v.Offset
	if start > total {
		start = total
	}
	end := total
	if v.Height > 0 {
		end = min(start+v.Height, total)
	}
	return start, end
}
