package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/rfkill"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3584e4")).Bold(true)
	onStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ec27e")).Bold(true)
	offStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9996"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9996")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e01b24"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	deadlineStyle = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// timeoutMsg closes the panel once the auto-quit delay elapsed.
type timeoutMsg struct{}

// model is the terminal counterpart of the popup panel.
type model struct {
	ctx        context.Context
	controller *rfkill.Controller
	radios     []*rfkill.Radio
	cursor     int
	timeout    time.Duration
	lastErr    string
	help       help.Model
}

func newModel(ctx context.Context, ctrl *rfkill.Controller, timeout time.Duration) model {
	return model{
		ctx:        ctx,
		controller: ctrl,
		radios:     ctrl.Table().Visible(),
		timeout:    timeout,
		help:       help.New(),
	}
}

func (m model) Init() tea.Cmd {
	if m.timeout <= 0 {
		return nil
	}
	return tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return timeoutMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timeoutMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.radios)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.lastErr = ""
			if len(m.radios) == 0 {
				break
			}
			r := m.radios[m.cursor]
			was := r.Blocked
			if _, err := m.controller.Toggle(m.ctx, r.Class, was); err != nil {
				// Keep showing what the kernel has, not what was asked for.
				r.Blocked = was
				m.lastErr = err.Error()
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(common.AppName))
	b.WriteString("\n")

	for i, r := range m.radios {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		state := onStyle.Render("[ on  ]")
		if r.Blocked {
			state = offStyle.Render("[ off ]")
		}

		device := missingStyle.Render("not found")
		if r.Found {
			device = fmt.Sprintf("%s (rfkill %d)", r.Name, r.Index)
		}

		fmt.Fprintf(&b, "%s%s %-10s %s\n", cursor, state, r.Class.Label(), device)
	}

	if m.lastErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.lastErr) + "\n")
	}
	if m.timeout > 0 {
		b.WriteString("\n" + deadlineStyle.Render(fmt.Sprintf("closes after %s", m.timeout)) + "\n")
	}
	b.WriteString("\n" + m.help.View(keys))

	return panelStyle.Render(b.String()) + "\n"
}

// RunTUI shows the interactive terminal panel until the user quits, the
// timeout expires or ctx is cancelled.
func (c *CLI) RunTUI(ctx context.Context, timeout time.Duration) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return common.ErrNotTerminal
	}

	p := tea.NewProgram(newModel(ctx, c.controller, timeout), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
