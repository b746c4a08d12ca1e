package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/asciicam/internal/core"
)

// Options configure the live view.
type Options struct {
	Tint        core.Tint       // Foreground color for frames
	Source      string          // Source name shown in the status bar
	ControlAddr string          // Control listener address shown in the status bar
	SnapshotDir string          // Where snapshots are written; empty means ~/.asciicam/snapshots
	Placeholder core.Resolution // Size of the "waiting" screen before the first frame
}

// Model is the Bubble Tea model for the live ASCII view.
type Model struct {
	opts     Options
	keys     KeyMap
	help     help.Model
	frame    FrameMsg
	hasFrame bool
	paused   bool
	quitting bool
	stopped  error
	fps      float64
	lastAt   time.Time
	notice   string
	width    int
	height   int
}

// NewModel creates a new live view model.
func NewModel(opts Options) Model {
	if opts.Placeholder.Width <= 0 || opts.Placeholder.Height <= 0 {
		opts.Placeholder = core.DefaultResolution()
	}
	return Model{
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model. Frames arrive from outside via Program.Send.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg, time.Now())

	case SourceStoppedMsg:
		m.stopped = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Snapshot):
		if !m.hasFrame {
			m.notice = "nothing to save yet"
			break
		}
		path, err := m.saveSnapshot(time.Now())
		if err != nil {
			m.notice = "snapshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleFrame stores the newest frame unless the view is paused.
func (m Model) handleFrame(f FrameMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}

	if !m.lastAt.IsZero() {
		if dt := now.Sub(m.lastAt).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps = 0.8*m.fps + 0.2*inst
			}
		}
	}
	m.lastAt = now
	m.frame = f
	m.hasFrame = true
	return m, nil
}

// saveSnapshot writes the current frame to a timestamped text file.
func (m Model) saveSnapshot(now time.Time) (string, error) {
	dir := m.opts.SnapshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".asciicam", "snapshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("asciicam_%s_%04d.txt", now.Format("20060102_150405"), m.frame.Seq%10000)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.frame.Screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	if m.hasFrame {
		sb.WriteString(RenderScreen(m.frame.Screen, m.opts.Tint))
	} else {
		sb.WriteString(RenderScreen(m.placeholder(), core.TintGray))
	}
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// placeholder is shown until the first frame arrives.
func (m Model) placeholder() *core.Screen {
	res := m.opts.Placeholder
	s := core.NewScreen(res.Width, res.Height)
	text := "waiting for frames..."
	if m.stopped != nil {
		text = "source stopped"
	}
	s.DrawTextCentered(res.Height/2, text)
	return s
}

// statusLine summarises resolution, throughput and the control address.
func (m Model) statusLine() string {
	fields := make([]string, 0, 6)
	if m.hasFrame {
		fields = append(fields,
			statusField("res", m.frame.Resolution.String()),
			statusField("fps", fmt.Sprintf("%.1f", m.fps)),
			statusField("frame", fmt.Sprintf("%d", m.frame.Seq)),
			statusField("dropped", fmt.Sprintf("%d", m.frame.Stats.Dropped)),
		)
	}
	if m.opts.Source != "" {
		fields = append(fields, statusField("src", m.opts.Source))
	}
	if m.opts.ControlAddr != "" {
		fields = append(fields, statusField("udp", m.opts.ControlAddr))
	}

	line := statusStyle.Render(strings.Join(fields, "  "))
	if m.paused {
		line += " " + pausedStyle.Render("PAUSED")
	}
	if m.stopped != nil {
		line += " " + alertStyle.Render("source stopped: "+m.stopped.Error())
	}
	if m.notice != "" {
		line += " " + m.notice
	}
	return line
}
