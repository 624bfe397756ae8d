// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model implementation over the timeline editor

// Package tui provides an interactive terminal UI for timeline editing.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cutline/editor"
	"cutline/timeline"
)

// Panel identifiers
const (
	panelBin      = "bin"
	panelTimeline = "timeline"
)

// Layout constants for UI dimensions
const (
	binPanelWidth = 28 // Left panel width for the media bin
	panelPadding  = 2  // Horizontal spacing between panels
	laneNameWidth = 12 // Track name column inside each lane

	// UI chrome heights (elements that reduce available viewport space)
	titleHeight     = 2 // Panel title bars
	rulerHeight     = 2 // Timecode ruler and playhead marker rows
	statusBarHeight = 1 // Bottom status bar
	helpHeight      = 1 // Help text line
	spacingHeight   = 2 // Vertical spacing between elements
	totalUIChrome   = titleHeight + rulerHeight + statusBarHeight + helpHeight + spacingHeight

	// Minimum viewport dimensions to ensure usability
	minViewportWidth  = 20
	minViewportHeight = 4
)

// Interaction constants
const (
	statusMessageDuration = 5 * time.Second        // How long to show transient status messages
	playbackTickInterval  = 100 * time.Millisecond // Playhead advance cadence while playing
	terminalCellPixels    = 10.0                   // Zoom px/s mapped onto terminal cells
)

// tickMsg drives playback: each tick advances the playhead
type tickMsg time.Time

// model holds the TUI state
type model struct {
	// Dependencies (injected for testing)
	sharedConfig ConfigProvider
	ed           *editor.Editor
	loadProject  func(string) (timeline.Project, error)
	saveProject  func(string, timeline.Project) error
	buildClip    func(string, timeline.Time) (timeline.Clip, error)
	debugf       func(string, ...interface{})
	configPath   string

	// File I/O
	projectPath string // Project file path for reading
	outputPath  string // Output path for saving (may differ from projectPath)
	dryRun      bool   // If true, don't save changes

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string    // Temporary status message (e.g., "Project saved")
	statusMsgAge time.Time // When status message was set
	focusedPanel string    // "bin" or "timeline" - which panel has focus

	// Timeline cursor: which track and which clip on it
	trackPos int
	clipPos  int // -1 when the track is empty

	// Media bin
	mediaBin  []string
	binCursor int

	// Lane scrolling
	viewport viewport.Model // Vertical scrolling over track lanes
	scroller *LaneScroller
}

// Key bindings
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
	Tab   key.Binding

	// Clip cursor and editing
	PrevClip   key.Binding
	NextClip   key.Binding
	Select     key.Binding
	NudgeLeft  key.Binding
	NudgeRight key.Binding
	AddClip    key.Binding
	Delete     key.Binding
	Undo       key.Binding
	Redo       key.Binding

	// Tracks
	AddVideoTrack key.Binding
	AddAudioTrack key.Binding
	DeleteTrack   key.Binding

	// Transport
	PlayPause  key.Binding
	Stop       key.Binding
	JumpPrev   key.Binding
	JumpNext   key.Binding
	MarkIn     key.Binding
	MarkOut    key.Binding
	ClearMarks key.Binding

	// View
	ZoomIn  key.Binding
	ZoomOut key.Binding
	ZoomFit key.Binding
	Save    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "track up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "track down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "playhead back"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "playhead forward"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch panel"),
	),
	PrevClip: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "previous clip"),
	),
	NextClip: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "next clip"),
	),
	Select: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle select"),
	),
	NudgeLeft: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H", "nudge left"),
	),
	NudgeRight: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L", "nudge right"),
	),
	AddClip: key.NewBinding(
		key.WithKeys("a", "enter"),
		key.WithHelp("a", "add clip at playhead"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete clip"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	AddVideoTrack: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "add video track"),
	),
	AddAudioTrack: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "add audio track"),
	),
	DeleteTrack: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "delete track"),
	),
	PlayPause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "play/pause"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	JumpPrev: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "previous edit point"),
	),
	JumpNext: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "next edit point"),
	),
	MarkIn: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "mark in"),
	),
	MarkOut: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "mark out"),
	),
	ClearMarks: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear marks"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ZoomFit: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "zoom to fit"),
	),
	Save: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "save"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	laneNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	videoClipStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("15"))

	audioClipStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("22")).
			Foreground(lipgloss.Color("15"))

	selectedClipStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("208")).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	cursorClipStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	binItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	binSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true).
				Padding(0, 1)
)

// Run starts the TUI mode with injected dependencies
func Run(opts Options, deps Dependencies) error {
	cfg := deps.Config.Get()

	project, err := deps.LoadProject(opts.ProjectPath)
	if err != nil {
		// Missing file means a fresh project named after it
		project = timeline.NewProject(opts.ProjectPath, cfg.VideoTracks, cfg.AudioTracks)
		project.Zoom = cfg.DefaultZoom
		deps.Debugf("[TUI] Starting new project: %v", err)
	}

	m := initModel(project, opts, deps)

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Save the project on exit (unless dry-run mode)
	if m, ok := finalModel.(model); ok {
		if m.dryRun {
			fmt.Println("\n--dry-run mode: project not modified")
		} else if m.ed.State().Dirty {
			if err := m.saveProject(m.outputPath, m.ed.Project()); err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}

			fmt.Printf("\nSaved project to: %s\n", m.outputPath)
		}
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(project timeline.Project, opts Options, deps Dependencies) model {
	cfg := deps.Config.Get()

	outputPath := opts.ProjectPath
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	m := model{
		sharedConfig: deps.Config,
		ed:           editor.New(project, cfg.MaxHistory),
		loadProject:  deps.LoadProject,
		saveProject:  deps.SaveProject,
		buildClip:    deps.BuildClip,
		debugf:       deps.Debugf,
		configPath:   deps.ConfigPath,

		projectPath: opts.ProjectPath,
		outputPath:  outputPath,
		dryRun:      opts.DryRun,

		focusedPanel: panelTimeline,
		trackPos:     0,
		clipPos:      -1,

		mediaBin: opts.MediaFiles,

		viewport: viewport.New(0, 0), // Width and height set on first WindowSizeMsg
		scroller: NewLaneScroller(0, 0, len(project.Tracks)),
	}

	m.syncClipCursor()

	return m
}

// Init starts the message loop; nothing runs until the first key or resize.
func (m model) Init() tea.Cmd {
	return nil
}

// tick schedules the next playback advance
func tick() tea.Cmd {
	return tea.Tick(playbackTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// currentTrack returns the track under the cursor, or nil when the
// project has no tracks.
func (m *model) currentTrack() *timeline.Track {
	p := m.ed.Project()
	if m.trackPos < 0 || m.trackPos >= len(p.Tracks) {
		return nil
	}

	return &p.Tracks[m.trackPos]
}

// currentClip returns the clip under the cursor, or nil.
func (m *model) currentClip() *timeline.Clip {
	track := m.currentTrack()
	if track == nil || m.clipPos < 0 || m.clipPos >= len(track.Clips) {
		return nil
	}

	return &track.Clips[m.clipPos]
}

// syncClipCursor re-clamps the clip cursor after any edit so it always
// points at a real clip (or -1 on an empty track).
func (m *model) syncClipCursor() {
	p := m.ed.Project()

	if len(p.Tracks) == 0 {
		m.trackPos = 0
		m.clipPos = -1

		return
	}

	if m.trackPos >= len(p.Tracks) {
		m.trackPos = len(p.Tracks) - 1
	}

	if m.trackPos < 0 {
		m.trackPos = 0
	}

	clips := p.Tracks[m.trackPos].Clips
	if len(clips) == 0 {
		m.clipPos = -1

		return
	}

	if m.clipPos >= len(clips) {
		m.clipPos = len(clips) - 1
	}

	if m.clipPos < 0 {
		m.clipPos = 0
	}
}

// setStatus shows a transient status bar message
func (m *model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusMsgAge = time.Now()
}

// ========== Helpers ==========

// baseName returns the file name portion of a path for display
func baseName(path string) string {
	return filepath.Base(path)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
