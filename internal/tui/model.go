// Package tui implements the interactive `sum repl` screen: two operand
// fields whose sum is recomputed on every keystroke.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pengelbrecht/sum/internal/calculator"
	"github.com/pengelbrecht/sum/internal/styles"
)

const (
	fieldA = iota
	fieldB
	fieldCount
)

// maxHistory bounds the in-session list of committed sums.
const maxHistory = 10

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Commit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Commit, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Commit, k.Clear, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep result")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// Model is the REPL state.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	keys    keyMap
	help    help.Model
	sum     calculator.Value
	hasSum  bool
	err     error
	history []string

	quitting bool
}

// New returns a model with the first field focused.
func New() Model {
	m := Model{
		keys: defaultKeyMap(),
		help: help.New(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 24
		ti.Prompt = "› "
		if i == fieldA {
			ti.Placeholder = "a"
		} else {
			ti.Placeholder = "b"
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldA].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.Clear):
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			m.recompute()
			return m, m.setFocus(fieldA)
		case key.Matches(msg, m.keys.Commit):
			if m.focus == fieldA {
				return m, m.setFocus(fieldB)
			}
			m.commit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// recompute parses both fields and updates the live sum. An empty field
// clears the result without reporting an error.
func (m *Model) recompute() {
	m.hasSum = false
	m.err = nil

	var operands [fieldCount]calculator.Value
	for i, in := range m.inputs {
		text := strings.TrimSpace(in.Value())
		if text == "" {
			return
		}
		v, err := calculator.Parse(text)
		if err != nil {
			m.err = err
			return
		}
		operands[i] = v
	}

	m.sum = calculator.Sum(operands[fieldA], operands[fieldB])
	m.hasSum = true
}

func (m *Model) commit() {
	if !m.hasSum {
		return
	}
	a, _ := calculator.Parse(m.inputs[fieldA].Value())
	b, _ := calculator.Parse(m.inputs[fieldB].Value())
	m.history = append(m.history, styles.RenderResult(a, b, m.sum))
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// Sum returns the current result, if both fields hold valid numbers.
func (m Model) Sum() (calculator.Value, bool) {
	return m.sum, m.hasSum
}

// Err returns the parse error for the current input, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.BoldStyle.Render("sum"))
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(styles.MutedStyle.Render("  " + line))
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.inputs[fieldA].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldB].View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorStyle.Render(errorText(m.err)))
	case m.hasSum:
		b.WriteString("= " + styles.ResultStyle.Render(m.sum.String()) + " " + styles.RenderKind(m.sum.Kind()))
	default:
		b.WriteString(styles.MutedStyle.Render("= …"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return styles.BoxStyle.Render(b.String())
}

func errorText(err error) string {
	switch {
	case errors.Is(err, calculator.ErrOutOfRange):
		return "out of range"
	case errors.Is(err, calculator.ErrInvalidNumber):
		return "not a number"
	default:
		return err.Error()
	}
}

// Run starts the REPL and blocks until the user quits or ctx is cancelled.
// Cancellation is a clean exit, not an error.
func Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
