// Package tui is an interactive playground for the command pipeline: a single
// input line with live trigger detection, a completion menu, and command
// execution against the real registry.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kudziajaroslaw98/moistus-ai-sub003/internal/command"
)

const maxSuggestions = 6

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	triggerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	nodeTypeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// Model drives the playground loop. It owns a registry-backed executor and
// re-runs trigger detection on every keystroke.
type Model struct {
	input    textinput.Model
	registry *command.Registry
	executor *command.Executor

	trigger     *command.Trigger
	suggestions []*command.Command
	selected    int

	nodeType string
	lastErr  error
	status   string
}

// NewModel builds the playground over an already-populated registry.
func NewModel(reg *command.Registry) Model {
	ti := textinput.New()
	ti.Placeholder = "Type $task, /bold, /meeting ..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return Model{
		input:    ti,
		registry: reg,
		executor: command.NewExecutor(reg),
		nodeType: "text",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if len(m.suggestions) > 0 {
				m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
			}
			return m, nil
		case tea.KeyDown:
			if len(m.suggestions) > 0 {
				m.selected = (m.selected + 1) % len(m.suggestions)
			}
			return m, nil
		case tea.KeyTab, tea.KeyEnter:
			if m.trigger != nil && len(m.suggestions) > 0 {
				m.runCommand(m.suggestions[m.selected])
				return m, nil
			}
			if msg.Type == tea.KeyEnter {
				m.status = "No command at cursor."
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.detect()
	return m, cmd
}

// detect refreshes the trigger and suggestion state from the input buffer.
func (m *Model) detect() {
	m.trigger = m.registry.DetectTrigger(m.input.Value(), m.input.Position())
	m.suggestions = nil
	m.selected = 0
	if m.trigger == nil {
		return
	}

	m.suggestions = m.registry.Search(command.SearchFilter{
		TriggerPattern: m.trigger.Text,
		Limit:          maxSuggestions,
	})
	if len(m.suggestions) == 0 && !m.trigger.IsPartial {
		if c := m.registry.ByTrigger(m.trigger.Text); c != nil {
			m.suggestions = []*command.Command{c}
		}
	}
}

// runCommand executes the chosen command and feeds its result back into the
// input buffer, mimicking what the editor surface does with a Result.
func (m *Model) runCommand(c *command.Command) {
	ctx := command.Context{
		CurrentText:     m.input.Value(),
		CursorPosition:  m.input.Position(),
		TriggerPosition: m.trigger.Start,
		TriggerText:     m.trigger.Text,
	}

	res, err := m.executor.Execute(c.ID, ctx)
	if err != nil {
		m.lastErr = err
		m.status = ""
		return
	}
	m.lastErr = nil

	m.input.SetValue(res.Text)
	m.input.SetCursor(res.CursorPosition)
	if res.NodeType != "" {
		m.nodeType = res.NodeType
	}
	m.status = fmt.Sprintf("Ran %s", c.Label)
	m.detect()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("moistus command playground"))
	sb.WriteString("  ")
	sb.WriteString(nodeTypeStyle.Render("[" + m.nodeType + "]"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	switch {
	case m.lastErr != nil:
		sb.WriteString(errorStyle.Render(m.lastErr.Error()))
		sb.WriteString("\n")
	case m.trigger != nil:
		state := "command"
		if m.trigger.IsPartial {
			state = "typing"
		}
		sb.WriteString(triggerStyle.Render(fmt.Sprintf("%s %s (%s)", m.trigger.Type, m.trigger.Text, state)))
		sb.WriteString("\n")
		for i, c := range m.suggestions {
			line := fmt.Sprintf("  %-10s %s", c.Trigger, c.Label)
			if i == m.selected {
				sb.WriteString(selectedStyle.Render(line))
			} else {
				sb.WriteString(suggestionStyle.Render(line))
			}
			sb.WriteString("\n")
		}
	case m.status != "":
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓ select · tab/enter run · esc quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the playground and blocks until the user quits.
func Run(reg *command.Registry) error {
	p := tea.NewProgram(NewModel(reg))
	_, err := p.Run()
	return err
}
