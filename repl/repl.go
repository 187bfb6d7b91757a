// Package repl implements a read-only terminal inspector over a compiled
// program. It is not an interactive evaluator: it parses and compiles a
// source file once, then lets the user page through the parsed forms, the
// constant pool, and the instruction stream with the Charm libraries
// (Bubbletea, Bubbles, Lipgloss), styled the way an interactive tool in
// this stack normally is.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"miniclj/callables"
	"miniclj/compiler"
	"miniclj/internal/config"
	"miniclj/lexer"
	"miniclj/parser"
)

// Styling, carried over from the stack's usual interactive-tool look.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#767676"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676"))
)

// pane identifies one of the inspector's three read-only views.
type pane int

const (
	paneAST pane = iota
	paneConstants
	paneInstructions
	paneCount
)

func (p pane) label() string {
	switch p {
	case paneAST:
		return "AST"
	case paneConstants:
		return "Constants"
	case paneInstructions:
		return "Instructions"
	default:
		return ""
	}
}

type model struct {
	path     string
	contents [paneCount]string
	active   pane
	view     viewport.Model
	noColor  bool
	compErr  error
}

func (m model) applyStyle(style lipgloss.Style, text string) string {
	if m.noColor {
		return text
	}
	return style.Render(text)
}

// Inspect parses and compiles src, then runs the inspector TUI over the
// result. A compile error is still shown (on the AST pane, with the error
// surfaced in place of the constants/instructions panes) rather than
// aborting before the terminal is even drawn.
func Inspect(path, src string, cfg config.Config) error {
	m := buildModel(path, src, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func buildModel(path, src string, cfg config.Config) model {
	m := model{path: path, noColor: cfg.NoColor}

	l := lexer.New(src)
	p := parser.New(l)
	forms := p.ParseProgram()

	var astBuilder strings.Builder
	if errs := p.Errors(); len(errs) > 0 {
		astBuilder.WriteString("syntax errors:\n")
		for _, e := range errs {
			astBuilder.WriteString("  " + e + "\n")
		}
		m.contents[paneAST] = astBuilder.String()
		m.compErr = fmt.Errorf("parse failed")
		m.view = viewport.New(80, 20)
		m.view.SetContent(m.contents[paneAST])
		return m
	}
	for _, form := range forms {
		astBuilder.WriteString(form.String())
		astBuilder.WriteString("\n")
	}
	m.contents[paneAST] = astBuilder.String()

	registry := callables.NewRegistry()
	comp := compiler.New(registry, cfg.Logger())
	if err := comp.Compile(forms); err != nil {
		m.compErr = err
		m.contents[paneConstants] = m.applyStyle(errorStyle, err.Error())
		m.contents[paneInstructions] = m.applyStyle(errorStyle, err.Error())
	} else {
		var cb strings.Builder
		for i, c := range comp.Constants() {
			fmt.Fprintf(&cb, "%4d  %s\n", i, c.Display())
		}
		m.contents[paneConstants] = cb.String()
		m.contents[paneInstructions] = comp.Instructions().String()
	}

	m.view = viewport.New(80, 20)
	m.view.SetContent(m.contents[paneAST])
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % paneCount
			m.view.SetContent(m.contents[m.active])
			m.view.GotoTop()
			return m, nil
		case "shift+tab", "left", "h":
			m.active = (m.active - 1 + paneCount) % paneCount
			m.view.SetContent(m.contents[m.active])
			m.view.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(m.applyStyle(titleStyle, " "+m.path+" "))
	s.WriteString("\n\n")

	for p := pane(0); p < paneCount; p++ {
		style := tabInactiveStyle
		if p == m.active {
			style = tabActiveStyle
		}
		s.WriteString(m.applyStyle(style, "["+p.label()+"]"))
		s.WriteString(" ")
	}
	s.WriteString("\n\n")

	s.WriteString(m.view.View())
	s.WriteString("\n")

	if m.compErr != nil {
		s.WriteString(m.applyStyle(errorStyle, m.compErr.Error()))
		s.WriteString("\n")
	}

	s.WriteString(m.applyStyle(helpStyle, "tab/shift+tab: switch pane  ↑/↓: scroll  q: quit"))
	return s.String()
}
