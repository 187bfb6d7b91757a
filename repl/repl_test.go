package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"miniclj/internal/config"
)

func TestBuildModelParseErrorSurfacesOnASTPane(t *testing.T) {
	m := buildModel("bad.mclj", "(+ 1 2", config.Config{})
	if m.compErr == nil {
		t.Fatal("expected a compile error for an unclosed form")
	}
	if !strings.Contains(m.contents[paneAST], "syntax errors") {
		t.Errorf("AST pane = %q, want it to mention syntax errors", m.contents[paneAST])
	}
}

func TestBuildModelCompileErrorSurfacesOnConstantsAndInstructionsPanes(t *testing.T) {
	m := buildModel("bad.mclj", "(println undefined-name)", config.Config{NoColor: true})
	if m.compErr == nil {
		t.Fatal("expected a compile error for an undefined symbol")
	}
	if m.contents[paneConstants] == "" || m.contents[paneInstructions] == "" {
		t.Error("expected the compile error to be surfaced on both the constants and instructions panes")
	}
}

func TestBuildModelSuccessPopulatesAllPanes(t *testing.T) {
	m := buildModel("ok.mclj", "(def x 1)\n(println x)", config.Config{})
	if m.compErr != nil {
		t.Fatalf("unexpected compile error: %v", m.compErr)
	}
	for p := pane(0); p < paneCount; p++ {
		if m.contents[p] == "" {
			t.Errorf("pane %s should be non-empty after a successful compile", p.label())
		}
	}
}

func TestUpdateCyclesPanesOnTab(t *testing.T) {
	m := buildModel("ok.mclj", "(println 1)", config.Config{})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next := updated.(model)
	if next.active != paneConstants {
		t.Errorf("active pane after tab = %v, want paneConstants", next.active)
	}
}

func TestUpdateQuitsOnQ(t *testing.T) {
	m := buildModel("ok.mclj", "(println 1)", config.Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("expected a quit command on 'q'")
	}
}
