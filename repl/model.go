package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHistory bounds the number of evaluated lines kept on screen.
const maxHistory = 50

type entry struct {
	input  string
	output string
	failed bool
}

// Model is the bubbletea model of an interactive session.
type Model struct {
	opts    Options
	styles  styles
	input   textinput.Model
	history []entry
}

// New creates a session model with a focused input line.
func New(opts Options) Model {
	s := newStyles(opts.Color)

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.PromptStyle = s.prompt
	ti.Placeholder = "print 1 + 2;"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{opts: opts, styles: s, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len(m.opts.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.opts.Tokens = !m.opts.Tokens
			return m, nil
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			output, ok := Eval(line, m.opts)
			m.history = append(m.history, entry{input: line, output: output, failed: !ok})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	for _, e := range m.history {
		b.WriteString(m.styles.prompt.Render(m.opts.Prompt) + m.styles.input.Render(e.input) + "\n")
		if e.output == "" {
			continue
		}
		if e.failed {
			b.WriteString(m.styles.error.Render(e.output) + "\n")
		} else {
			b.WriteString(m.styles.output.Render(e.output) + "\n")
		}
	}

	b.WriteString(m.input.View() + "\n")

	mode := "tree"
	if m.opts.Tokens {
		mode = "tokens"
	}
	b.WriteString(m.styles.help.Render("showing " + mode + " • ctrl+t toggle • esc quit"))

	return b.String()
}
