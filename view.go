// ABOUTME: Read-only project viewer with live file watching and scrolling
// ABOUTME: Monitors the project file for changes and lists clips with viewport navigation

package main

import (
	"fmt"
	"time"

	"cutline/timeline"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
)

// viewRow is one clip line in the flattened clip list
type viewRow struct {
	trackName string
	clip      timeline.Clip
}

// viewModel holds the state for the read-only project viewer
type viewModel struct {
	projectPath string
	project     timeline.Project
	rows        []viewRow
	viewport    viewport.Model
	width       int
	height      int
	fileWatcher *fsnotify.Watcher
	lastReload  time.Time
	errorMsg    string
	ready       bool
	cursorPos   int // Currently selected clip row
}

// Key bindings for view mode
type viewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var viewKeys = viewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles for view mode
var (
	viewTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	viewHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	viewStatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	viewHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	viewErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	viewCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

// fileChangeMsg is sent when the project file changes
type fileChangeMsg struct{}

// reloadCompleteMsg is sent after a project reload completes
type reloadCompleteMsg struct {
	project timeline.Project
	err     error
}

// RunViewMode starts the view-only mode with file watching
func RunViewMode(projectPath string) error {
	project, err := timeline.LoadProject(projectPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(projectPath); err != nil {
		watcher.Close()

		return fmt.Errorf("failed to watch project file: %w", err)
	}

	m := viewModel{
		projectPath: projectPath,
		project:     project,
		rows:        flattenClips(project),
		fileWatcher: watcher,
		lastReload:  time.Now(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		watcher.Close()

		return fmt.Errorf("view mode error: %w", err)
	}

	watcher.Close()

	return nil
}

// flattenClips lists every clip in track order for cursor navigation
func flattenClips(p timeline.Project) []viewRow {
	var rows []viewRow

	for ti := range p.Tracks {
		for ci := range p.Tracks[ti].Clips {
			rows = append(rows, viewRow{
				trackName: p.Tracks[ti].Name,
				clip:      p.Tracks[ti].Clips[ci],
			})
		}
	}

	return rows
}

// Init initializes the view model
func (m viewModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFileChange(m.fileWatcher),
		tea.EnterAltScreen,
	)
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(100 * time.Millisecond)

					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadProject loads the project in the background
func reloadProject(path string) tea.Cmd {
	return func() tea.Msg {
		project, err := timeline.LoadProject(path)
		if err != nil {
			return reloadCompleteMsg{err: err}
		}

		return reloadCompleteMsg{project: project}
	}
}

// ensureCursorVisible scrolls viewport to keep cursor in view
func (m *viewModel) ensureCursorVisible() {
	viewportTop := m.viewport.YOffset
	viewportBottom := m.viewport.YOffset + m.viewport.Height - 1

	if m.cursorPos < viewportTop {
		m.viewport.SetYOffset(m.cursorPos)
	} else if m.cursorPos > viewportBottom {
		m.viewport.SetYOffset(m.cursorPos - m.viewport.Height + 1)
	}
}

// clampCursor keeps the cursor on a real row after a reload shrinks the list
func (m *viewModel) clampCursor() {
	if m.cursorPos >= len(m.rows) {
		m.cursorPos = len(m.rows) - 1
	}

	if m.cursorPos < 0 {
		m.cursorPos = 0
	}
}

// Update handles messages and updates the model
func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title + header row + separator
		footerHeight := 2 // Status + help

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderClipList())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		return m, nil

	case fileChangeMsg:
		return m, tea.Batch(
			reloadProject(m.projectPath),
			waitForFileChange(m.fileWatcher), // Continue watching
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Error reloading: %v", msg.err)
		} else {
			m.project = msg.project
			m.rows = flattenClips(msg.project)
			m.lastReload = time.Now()
			m.errorMsg = ""
			m.clampCursor()
			m.viewport.SetContent(m.renderClipList())
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, viewKeys.Up):
			if m.cursorPos > 0 {
				m.cursorPos--
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderClipList())
			}

		case key.Matches(msg, viewKeys.Down):
			if m.cursorPos < len(m.rows)-1 {
				m.cursorPos++
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderClipList())
			}

		case key.Matches(msg, viewKeys.PageUp):
			m.cursorPos -= m.viewport.Height
			m.clampCursor()
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderClipList())

		case key.Matches(msg, viewKeys.PageDown):
			m.cursorPos += m.viewport.Height
			m.clampCursor()
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderClipList())

		case key.Matches(msg, viewKeys.Top):
			m.cursorPos = 0
			m.viewport.GotoTop()
			m.viewport.SetContent(m.renderClipList())

		case key.Matches(msg, viewKeys.Bottom):
			if len(m.rows) > 0 {
				m.cursorPos = len(m.rows) - 1
			}

			m.viewport.GotoBottom()
			m.viewport.SetContent(m.renderClipList())

		case key.Matches(msg, viewKeys.Reload):
			return m, reloadProject(m.projectPath)
		}
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the view
func (m viewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := viewTitleStyle.Render(fmt.Sprintf("Project Viewer: %s", m.projectPath))

	header := viewHeaderStyle.Render(fmt.Sprintf("%-3s %-12s %-24s %-12s %-12s %-30s",
		"#", "Track", "Clip", "Start", "End", "Source"))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		title, header, m.viewport.View(), m.renderStatus(), m.renderHelp())
}

// renderClipList renders the flattened clip rows for the viewport
func (m viewModel) renderClipList() string {
	if len(m.rows) == 0 {
		return "(no clips)"
	}

	var content string

	for i, row := range m.rows {
		line := fmt.Sprintf("%-3d %-12s %-24s %-12s %-12s %-30s",
			i+1,
			viewTruncate(row.trackName, 12),
			viewTruncate(row.clip.Name, 24),
			row.clip.TimelineStart,
			row.clip.TimelineEnd(),
			viewTruncate(row.clip.SourcePath, 30),
		)

		// Highlight cursor line
		if i == m.cursorPos {
			line = viewCursorStyle.Render(line)
		}

		if i < len(m.rows)-1 {
			content += line + "\n"
		} else {
			content += line // No trailing newline on last row
		}
	}

	return content
}

// renderStatus renders the status bar
func (m viewModel) renderStatus() string {
	reloadTime := m.lastReload.Format("15:04:05")

	var statusText string
	if m.errorMsg != "" {
		statusText = fmt.Sprintf("%d clips | %s | Cursor: %d | %s",
			len(m.rows),
			m.project.Duration,
			m.cursorPos+1,
			viewErrorStyle.Render(m.errorMsg),
		)
	} else {
		statusText = fmt.Sprintf("%d clips | %s | Cursor: %d | Last reload: %s",
			len(m.rows),
			m.project.Duration,
			m.cursorPos+1,
			reloadTime,
		)
	}

	return viewStatusStyle.Width(m.width).Render(statusText)
}

// renderHelp renders the help text
func (m viewModel) renderHelp() string {
	return viewHelpStyle.Render("↑/↓: move cursor | pgup/pgdn: page | g/G: top/bottom | r: reload | q: quit")
}

// viewTruncate shortens a string to maxLen, adding "..." if truncated
func viewTruncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
