// ABOUTME: Lane scroller for cursor-to-middle vertical scrolling
// ABOUTME: Keeps the current track lane visible the way vim/less scroll content

package tui

// LaneScroller computes the vertical offset that keeps the cursor lane
// visible: the cursor moves freely near the top, pins to the middle while
// the lanes scroll, and walks to the bottom at the end of the list.
type LaneScroller struct {
	height    int // Viewport height in lanes
	cursorPos int // Current lane under the cursor
	total     int // Total number of lanes
}

// NewLaneScroller creates a scroller over total lanes.
func NewLaneScroller(height, cursorPos, total int) *LaneScroller {
	return &LaneScroller{
		height:    height,
		cursorPos: cursorPos,
		total:     total,
	}
}

// SetHeight updates the viewport height.
func (ls *LaneScroller) SetHeight(height int) {
	ls.height = height
}

// SetCursorPos updates the cursor lane.
func (ls *LaneScroller) SetCursorPos(pos int) {
	ls.cursorPos = pos
}

// SetTotal updates the lane count.
func (ls *LaneScroller) SetTotal(total int) {
	ls.total = total
}

// Offset computes the viewport Y offset to keep the cursor lane visible.
// The ideal offset centers the cursor; clamping it to the valid scroll
// range yields the three phases: pinned at 0 near the top, centered
// through the middle, pinned at the last page near the bottom.
func (ls *LaneScroller) Offset() int {
	if ls.height < 1 || ls.total <= ls.height {
		return 0
	}

	offset := ls.cursorPos - ls.height/2

	if offset < 0 {
		offset = 0
	}

	if limit := ls.total - ls.height; offset > limit {
		offset = limit
	}

	return offset
}
