// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and key handlers

package tui

import (
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cutline/config"
	"cutline/editor"
	"cutline/timeline"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportWidth := msg.Width - binPanelWidth - panelPadding
		if viewportWidth < minViewportWidth {
			viewportWidth = minViewportWidth
		}

		viewportHeight := msg.Height - totalUIChrome
		if viewportHeight < minViewportHeight {
			viewportHeight = minViewportHeight
		}

		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.YOffset = 0
		m.scroller.SetHeight(viewportHeight)
		m.ensureLaneVisible()
		m.updateViewportContent()

		return m, nil

	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick advances the playhead while playing and pauses at the end
func (m model) handleTick() (tea.Model, tea.Cmd) {
	if m.ed.State().Playback != editor.Playing {
		return m, nil
	}

	m.ed.MovePlayhead(timeline.FromDuration(playbackTickInterval))

	if m.ed.Project().Playhead >= m.ed.Project().Duration {
		m.ed.Pause()
		m.updateViewportContent()

		return m, nil
	}

	m.updateViewportContent()

	return m, tick()
}

// handleKey dispatches one key press
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.handleQuitKey()

	case key.Matches(msg, keys.Tab):
		m.handleTabKey()

	case key.Matches(msg, keys.Up):
		m.handleUpKey()

	case key.Matches(msg, keys.Down):
		m.handleDownKey()

	case key.Matches(msg, keys.PrevClip):
		m.handleClipCursor(-1)

	case key.Matches(msg, keys.NextClip):
		m.handleClipCursor(1)

	case key.Matches(msg, keys.Select):
		m.handleSelectKey(true)

	case key.Matches(msg, keys.Left):
		m.ed.MovePlayhead(-m.nudgeStep())
		m.updateViewportContent()

	case key.Matches(msg, keys.Right):
		m.ed.MovePlayhead(m.nudgeStep())
		m.updateViewportContent()

	case key.Matches(msg, keys.NudgeLeft):
		return m, m.nudgeSelection(-m.nudgeStep())

	case key.Matches(msg, keys.NudgeRight):
		return m, m.nudgeSelection(m.nudgeStep())

	case key.Matches(msg, keys.AddClip):
		return m, m.addClipFromBin()

	case key.Matches(msg, keys.Delete):
		return m, m.deleteSelection()

	case key.Matches(msg, keys.Undo):
		return m, m.handleUndo()

	case key.Matches(msg, keys.Redo):
		return m, m.handleRedo()

	case key.Matches(msg, keys.AddVideoTrack):
		return m, m.handleAddTrack(timeline.TrackVideo)

	case key.Matches(msg, keys.AddAudioTrack):
		return m, m.handleAddTrack(timeline.TrackAudio)

	case key.Matches(msg, keys.DeleteTrack):
		return m, m.handleDeleteTrack()

	case key.Matches(msg, keys.PlayPause):
		return m.handlePlayPause()

	case key.Matches(msg, keys.Stop):
		m.ed.Stop()
		m.updateViewportContent()

	case key.Matches(msg, keys.JumpPrev):
		m.ed.JumpToPreviousClip()
		m.updateViewportContent()

	case key.Matches(msg, keys.JumpNext):
		m.ed.JumpToNextClip()
		m.updateViewportContent()

	case key.Matches(msg, keys.MarkIn):
		m.ed.MarkIn()
		m.setStatus("In point at %s", m.ed.Project().Playhead)

	case key.Matches(msg, keys.MarkOut):
		m.ed.MarkOut()
		m.setStatus("Out point at %s", m.ed.Project().Playhead)

	case key.Matches(msg, keys.ClearMarks):
		m.ed.ClearInOutPoints()
		m.setStatus("In/out points cleared")

	case key.Matches(msg, keys.ZoomIn):
		m.ed.ZoomIn()
		m.updateViewportContent()

	case key.Matches(msg, keys.ZoomOut):
		m.ed.ZoomOut()
		m.updateViewportContent()

	case key.Matches(msg, keys.ZoomFit):
		m.ed.ZoomToFit(m.laneWidthPixels())
		m.updateViewportContent()

	case key.Matches(msg, keys.Save):
		return m, m.handleSave()
	}

	return m, nil
}

// handleQuitKey handles the quit key press
func (m *model) handleQuitKey() (model, tea.Cmd) {
	m.quitting = true

	// Save config on quit
	if err := config.SaveConfig(m.configPath, m.sharedConfig.Get()); err != nil {
		m.debugf("[TUI] Failed to save config on quit: %v", err)
		// Continue anyway - don't block quit on config save failure
	}

	return *m, tea.Quit
}

// handleTabKey handles panel switching
func (m *model) handleTabKey() {
	if m.focusedPanel == panelBin {
		m.focusedPanel = panelTimeline
	} else {
		m.focusedPanel = panelBin
	}
}

// handleUpKey moves up one track lane or one bin entry
func (m *model) handleUpKey() {
	if m.focusedPanel == panelBin {
		if m.binCursor > 0 {
			m.binCursor--
		}

		return
	}

	if m.trackPos > 0 {
		m.trackPos--
		m.syncClipCursor()
		m.selectClipUnderCursor()
		m.ensureLaneVisible()
		m.updateViewportContent()
	}
}

// handleDownKey moves down one track lane or one bin entry
func (m *model) handleDownKey() {
	if m.focusedPanel == panelBin {
		if m.binCursor < len(m.mediaBin)-1 {
			m.binCursor++
		}

		return
	}

	if m.trackPos < len(m.ed.Project().Tracks)-1 {
		m.trackPos++
		m.syncClipCursor()
		m.selectClipUnderCursor()
		m.ensureLaneVisible()
		m.updateViewportContent()
	}
}

// handleClipCursor moves the clip cursor along the current track
func (m *model) handleClipCursor(delta int) {
	track := m.currentTrack()
	if track == nil || len(track.Clips) == 0 {
		return
	}

	m.clipPos += delta

	if m.clipPos < 0 {
		m.clipPos = 0
	}

	if m.clipPos >= len(track.Clips) {
		m.clipPos = len(track.Clips) - 1
	}

	m.selectClipUnderCursor()
	m.updateViewportContent()
}

// selectClipUnderCursor replaces the selection with the cursor clip
func (m *model) selectClipUnderCursor() {
	if clip := m.currentClip(); clip != nil {
		m.ed.SelectClip(clip.ID, false)
	} else {
		m.ed.ClearSelection()
	}
}

// handleSelectKey toggles the cursor clip's membership in the selection
func (m *model) handleSelectKey(additive bool) {
	clip := m.currentClip()
	if clip == nil {
		return
	}

	m.ed.SelectClip(clip.ID, additive)
	m.updateViewportContent()
}

// nudgeStep reads the configured nudge distance
func (m *model) nudgeStep() timeline.Time {
	return timeline.FromMilliseconds(m.sharedConfig.Get().NudgeMillis)
}

// nudgeSelection shifts every selected clip by delta as one edit
func (m *model) nudgeSelection(delta timeline.Time) tea.Cmd {
	ids := m.ed.SelectedIDs()
	if len(ids) == 0 {
		return nil
	}

	if !m.ed.MoveClips(ids, delta) {
		m.setStatus("Move blocked: clips would overlap")

		return nil
	}

	m.syncClipCursor()
	m.updateViewportContent()

	return m.autosave()
}

// addClipFromBin places the selected bin file at the playhead on the
// current track
func (m *model) addClipFromBin() tea.Cmd {
	track := m.currentTrack()
	if track == nil {
		return nil
	}

	if len(m.mediaBin) == 0 {
		m.setStatus("Media bin is empty")

		return nil
	}

	path := m.mediaBin[m.binCursor]

	clip, err := m.buildClip(path, m.ed.Project().Playhead)
	if err != nil {
		m.debugf("[TUI] Probe failed for %s: %v", path, err)
		m.setStatus("Cannot read %s", path)

		return nil
	}

	if !m.ed.AddClip(track.ID, clip) {
		m.setStatus("No room at the playhead on %s", track.Name)

		return nil
	}

	m.ed.SelectClip(clip.ID, false)
	m.syncClipCursor()
	m.updateViewportContent()
	m.setStatus("Added %s", clip.Name)

	return m.autosave()
}

// deleteSelection removes every selected clip
func (m *model) deleteSelection() tea.Cmd {
	ids := m.ed.SelectedIDs()
	if len(ids) == 0 {
		return nil
	}

	for _, id := range ids {
		m.ed.RemoveClip(id)
	}

	m.syncClipCursor()
	m.selectClipUnderCursor()
	m.updateViewportContent()
	m.setStatus("Deleted %d clip(s)", len(ids))

	return m.autosave()
}

// handleUndo reverses the latest edit
func (m *model) handleUndo() tea.Cmd {
	if !m.ed.Undo() {
		m.setStatus("Nothing to undo")

		return nil
	}

	m.syncClipCursor()
	m.updateViewportContent()

	return m.autosave()
}

// handleRedo re-applies the latest undone edit
func (m *model) handleRedo() tea.Cmd {
	if !m.ed.Redo() {
		m.setStatus("Nothing to redo")

		return nil
	}

	m.syncClipCursor()
	m.updateViewportContent()

	return m.autosave()
}

// handleAddTrack appends a track of the given type
func (m *model) handleAddTrack(tt timeline.TrackType) tea.Cmd {
	track := m.ed.AddTrack(tt)

	p := m.ed.Project()
	m.trackPos = p.FindTrack(track.ID)
	m.syncClipCursor()
	m.scroller.SetTotal(len(m.ed.Project().Tracks))
	m.ensureLaneVisible()
	m.updateViewportContent()
	m.setStatus("Added %s", track.Name)

	return m.autosave()
}

// handleDeleteTrack removes the track under the cursor
func (m *model) handleDeleteTrack() tea.Cmd {
	track := m.currentTrack()
	if track == nil {
		return nil
	}

	name := track.Name
	if !m.ed.RemoveTrack(track.ID) {
		return nil
	}

	m.syncClipCursor()
	m.selectClipUnderCursor()
	m.scroller.SetTotal(len(m.ed.Project().Tracks))
	m.ensureLaneVisible()
	m.updateViewportContent()
	m.setStatus("Deleted %s", name)

	return m.autosave()
}

// handlePlayPause toggles playback and schedules the tick loop
func (m model) handlePlayPause() (tea.Model, tea.Cmd) {
	m.ed.TogglePlayback()

	if m.ed.State().Playback == editor.Playing {
		return m, tick()
	}

	return m, nil
}

// handleSave writes the project immediately
func (m *model) handleSave() tea.Cmd {
	if m.dryRun {
		m.setStatus("--dry-run: not saving")

		return nil
	}

	if err := m.saveProject(m.outputPath, m.ed.Project()); err != nil {
		m.debugf("[TUI] Save FAILED: %v", err)
		m.setStatus("Save failed: %v", err)

		return nil
	}

	m.ed.ClearDirty()
	m.setStatus("Saved %s", m.outputPath)

	return nil
}

// autosave writes the project after an edit when configured to
func (m *model) autosave() tea.Cmd {
	if m.dryRun || !m.sharedConfig.Get().Autosave {
		return nil
	}

	if err := m.saveProject(m.outputPath, m.ed.Project()); err != nil {
		m.debugf("[TUI] Auto-save FAILED: %v", err)

		return nil
	}

	m.ed.ClearDirty()

	return nil
}

// ensureLaneVisible scrolls the lane viewport to the cursor track
func (m *model) ensureLaneVisible() {
	m.scroller.SetCursorPos(m.trackPos)
	m.scroller.SetTotal(len(m.ed.Project().Tracks))
	m.viewport.YOffset = m.scroller.Offset()
}
