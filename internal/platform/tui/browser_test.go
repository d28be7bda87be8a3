package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/irodori/internal/core"
	"github.com/vovakirdan/irodori/internal/wairo"
)

func newTestBrowser(width, height int) BrowserModel {
	return NewBrowserModel(core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: 1})
}

func press(m BrowserModel, msg tea.KeyMsg) BrowserModel {
	next, _ := m.Update(msg)
	return next.(BrowserModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserStartsOnFirstFamily(t *testing.T) {
	m := newTestBrowser(120, 40)

	if m.Family() != wairo.Red {
		t.Errorf("Family() = %s, expected Red", m.Family())
	}
	e, ok := m.Selected()
	if !ok {
		t.Fatal("Selected() found nothing")
	}
	if e.QualifiedName() != "RedFamily.Sakura" {
		t.Errorf("Selected() = %s, expected RedFamily.Sakura", e.QualifiedName())
	}
}

func TestBrowserFamilyNavigation(t *testing.T) {
	m := newTestBrowser(120, 40)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Family() != wairo.Yellow {
		t.Errorf("after tab Family() = %s, expected Yellow", m.Family())
	}

	m = press(m, runes("h"))
	m = press(m, runes("h"))
	if m.Family() != wairo.Black {
		t.Errorf("after wrapping back Family() = %s, expected Black", m.Family())
	}

	m = press(m, runes("l"))
	if m.Family() != wairo.Red {
		t.Errorf("after wrapping forward Family() = %s, expected Red", m.Family())
	}
}

func TestBrowserRowNavigation(t *testing.T) {
	m := newTestBrowser(120, 40)

	m = press(m, runes("j"))
	e, _ := m.Selected()
	if e.Name != "Usuzakura" {
		t.Errorf("after down Selected() = %s, expected Usuzakura", e.Name)
	}

	m = press(m, runes("k"))
	e, _ = m.Selected()
	if e.Name != "Sakura" {
		t.Errorf("after up Selected() = %s, expected Sakura", e.Name)
	}
}

func TestBrowserRandomStaysInFamily(t *testing.T) {
	m := newTestBrowser(120, 40)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})

	for range 20 {
		m = press(m, runes("r"))
		e, ok := m.Selected()
		if !ok || e.Family != wairo.Yellow {
			t.Fatalf("random pick = %+v, expected a Yellow entry", e)
		}
	}
}

func TestBrowserQuit(t *testing.T) {
	m := newTestBrowser(120, 40)

	next, cmd := m.Update(runes("q"))
	m = next.(BrowserModel)
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestBrowserViewLayouts(t *testing.T) {
	wide := newTestBrowser(140, 40)
	view := wide.View()
	for _, want := range []string{"RedFamily", "Families", "Sakura", "桜"} {
		if !strings.Contains(view, want) {
			t.Errorf("wide View() missing %q", want)
		}
	}

	narrow := newTestBrowser(60, 30)
	view = narrow.View()
	if strings.Contains(view, "Families") {
		t.Error("narrow View() should not render the sidebar")
	}
	if !strings.Contains(view, "RedFamily.Sakura") {
		t.Error("narrow View() missing preview")
	}
}

func TestBrowserResize(t *testing.T) {
	m := newTestBrowser(60, 30)
	m = press(m, runes("j"))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = next.(BrowserModel)

	if !m.showSidebar {
		t.Error("sidebar should show after widening")
	}
	e, _ := m.Selected()
	if e.Name != "Usuzakura" {
		t.Errorf("cursor lost on resize: Selected() = %s", e.Name)
	}
}
