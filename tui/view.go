// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and the lane renderer

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cutline/editor"
	"cutline/timeline"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] View panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return "Saving and exiting...\n"
	}

	leftPanel := m.renderBin()
	rightPanel := m.renderTimeline()

	panelHeight := m.height - (statusBarHeight + helpHeight + 1)

	leftPanelStyle := lipgloss.NewStyle().
		Width(binPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	rightPanelWidth := m.width - binPanelWidth - panelPadding
	if rightPanelWidth < minViewportWidth*2 {
		rightPanelWidth = minViewportWidth * 2
	}

	rightPanelStyle := lipgloss.NewStyle().
		Width(rightPanelWidth).
		Height(panelHeight).
		Padding(0, 1)

	combined := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanelStyle.Render(leftPanel),
		rightPanelStyle.Render(rightPanel),
	)

	return combined + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}

// renderBin renders the media bin panel
func (m model) renderBin() string {
	var s string

	title := "Media bin"
	if m.focusedPanel == panelBin {
		title = "► " + title + " [FOCUSED]"
	}

	s += titleStyle.Render(title) + "\n\n"

	if len(m.mediaBin) == 0 {
		s += helpStyle.Render("  (no media files)") + "\n"

		return s
	}

	for i, path := range m.mediaBin {
		name := truncate(baseName(path), binPanelWidth-6)
		line := fmt.Sprintf("%-*s", binPanelWidth-4, name)

		if i == m.binCursor {
			s += binSelectedStyle.Render("► "+line) + "\n"
		} else {
			s += binItemStyle.Render("  "+line) + "\n"
		}
	}

	return s
}

// renderTimeline renders the ruler, playhead marker, and track lanes
func (m model) renderTimeline() string {
	var s string

	p := m.ed.Project()

	title := "Timeline: " + p.Name
	if m.focusedPanel == panelTimeline {
		title = "► " + title + " [FOCUSED]"
	}

	s += titleStyle.Render(title) + "\n\n"

	s += strings.Repeat(" ", laneNameWidth) + m.renderRuler() + "\n"
	s += m.renderPlayheadRow() + "\n"

	// Lanes scroll vertically through the viewport (content set in Update)
	s += m.viewport.View()

	return s
}

// laneWidth returns the clip bar area width in cells.
func (m model) laneWidth() int {
	w := m.viewport.Width - laneNameWidth - 1
	if w < minViewportWidth {
		w = minViewportWidth
	}

	return w
}

// laneWidthPixels converts the lane width to the pixel space the zoom
// operations work in.
func (m model) laneWidthPixels() float64 {
	return float64(m.laneWidth()) * terminalCellPixels
}

// microsPerCell derives the time one terminal cell covers from the zoom.
func (m model) microsPerCell() timeline.Time {
	zoom := m.ed.Project().Zoom
	if zoom <= 0 {
		zoom = timeline.MinZoom
	}

	return timeline.Time(1e6 * terminalCellPixels / zoom)
}

// viewOrigin is the timeline position of the first visible cell.
func (m model) viewOrigin() timeline.Time {
	p := m.ed.Project()
	if p.Zoom <= 0 {
		return timeline.Zero
	}

	return timeline.Time(p.Scroll / p.Zoom * 1e6)
}

// timeToCell maps a timeline position to a lane cell, unclamped.
func (m model) timeToCell(t timeline.Time) int {
	mpc := m.microsPerCell()
	if mpc <= 0 {
		return 0
	}

	return int((t - m.viewOrigin()) / mpc)
}

// renderRuler renders second marks across the lane area
func (m model) renderRuler() string {
	width := m.laneWidth()
	ruler := make([]byte, width)

	for i := range ruler {
		ruler[i] = ' '
	}

	mpc := m.microsPerCell()

	// Label interval in whole seconds, widened until labels can't collide
	stepSec := int64(1)
	for timeline.FromSeconds(float64(stepSec))/mpc < 8 {
		stepSec *= 2
	}

	firstSec := m.viewOrigin().Microseconds() / 1e6 / stepSec * stepSec

	for sec := firstSec; ; sec += stepSec {
		cell := m.timeToCell(timeline.FromSeconds(float64(sec)))
		if cell >= width {
			break
		}

		if cell < 0 {
			continue
		}

		label := fmt.Sprintf("|%ds", sec)
		for j := 0; j < len(label) && cell+j < width; j++ {
			ruler[cell+j] = label[j]
		}
	}

	return helpStyle.Render(string(ruler))
}

// renderPlayheadRow renders the playhead marker above the lanes
func (m model) renderPlayheadRow() string {
	width := m.laneWidth()
	row := make([]byte, width)

	for i := range row {
		row[i] = ' '
	}

	cell := m.timeToCell(m.ed.Project().Playhead)
	if cell >= 0 && cell < width {
		row[cell] = 'v'
	}

	return strings.Repeat(" ", laneNameWidth) + titleStyle.Render(string(row))
}

// updateViewportContent rebuilds the lane content for the viewport
// Renders ALL lanes - the viewport handles scrolling
func (m *model) updateViewportContent() {
	var content strings.Builder

	p := m.ed.Project()

	for ti := range p.Tracks {
		content.WriteString(m.renderLane(ti, &p.Tracks[ti]))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderLane renders one track as a name column plus a clip bar area
func (m *model) renderLane(ti int, track *timeline.Track) string {
	name := truncate(track.Name, laneNameWidth-2)
	prefix := "  "

	if ti == m.trackPos && m.focusedPanel == panelTimeline {
		prefix = "► "
	}

	var lane strings.Builder

	lane.WriteString(laneNameStyle.Render(fmt.Sprintf("%-*s", laneNameWidth, prefix+name)))

	width := m.laneWidth()
	cell := 0

	for ci := range track.Clips {
		clip := &track.Clips[ci]

		start := m.timeToCell(clip.TimelineStart)
		end := m.timeToCell(clip.TimelineEnd())

		if end <= 0 || start >= width {
			continue
		}

		if start < 0 {
			start = 0
		}

		if end > width {
			end = width
		}

		if end <= start {
			end = start + 1
		}

		// Gap before this clip
		if start > cell {
			lane.WriteString(helpStyle.Render(strings.Repeat("·", start-cell)))
		}

		bar := strings.Repeat("▒", end-start)
		if end-start >= 3 {
			label := truncate(clip.Name, end-start-2)
			bar = "[" + label + strings.Repeat("░", max(end-start-len(label)-2, 0)) + "]"
		}

		lane.WriteString(m.clipStyle(ti, ci, clip).Render(bar))
		cell = end
	}

	if cell < width {
		lane.WriteString(helpStyle.Render(strings.Repeat("·", width-cell)))
	}

	return lane.String()
}

// clipStyle picks the style for one clip bar
func (m *model) clipStyle(ti, ci int, clip *timeline.Clip) lipgloss.Style {
	if ti == m.trackPos && ci == m.clipPos && m.focusedPanel == panelTimeline {
		return cursorClipStyle
	}

	if m.ed.IsSelected(clip.ID) {
		return selectedClipStyle
	}

	if clip.Type == timeline.ClipAudio {
		return audioClipStyle
	}

	return videoClipStyle
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	p := m.ed.Project()
	state := m.ed.State()

	dirtyFlag := ""
	if state.Dirty {
		dirtyFlag = "* "
	}

	playback := state.Playback.String()
	if state.Playback == editor.Playing {
		playback = "▶ " + playback
	}

	marks := ""
	if p.InPoint != nil || p.OutPoint != nil {
		marks = " | marks set"
	}

	status := fmt.Sprintf("%s%s | %s / %s | %s | %d selected | U:%d R:%d | zoom %.0f px/s%s",
		dirtyFlag,
		p.Name,
		p.Playhead,
		p.Duration,
		playback,
		len(state.Selected),
		m.ed.History().UndoSize(),
		m.ed.History().RedoSize(),
		p.Zoom,
		marks,
	)

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return helpStyle.Render(" Tab: panel | ↑/↓: track | h/l: clip | a: add | d: delete | H/L: nudge | u: undo | ctrl+r: redo | space: play | i/o: marks | +/-/f: zoom | w: save | q: quit")
}
