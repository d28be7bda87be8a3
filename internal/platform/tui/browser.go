package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/irodori/internal/core"
	"github.com/vovakirdan/irodori/internal/textutil"
	"github.com/vovakirdan/irodori/internal/wairo"
)

// Browser layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show family sidebar
	sidebarWidth       = 14 // Width of family sidebar
	previewWidth       = 24 // Width of the color preview panel
	previewHeight      = 6  // Height of the color swatch in the preview
)

// BrowserKeyMap defines the key bindings for the catalog browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	NextFam key.Binding
	PrevFam key.Binding
	Random  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFam, k.PrevFam, k.Random, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFam, k.PrevFam},
		{k.Random, k.Help, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev color"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next color"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev family"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next family"),
		),
		NextFam: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next family"),
		),
		PrevFam: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev family"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random color"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the catalog browser.
type BrowserModel struct {
	families    []wairo.Family // All families in catalog order
	famCursor   int            // Currently selected family index
	entries     []wairo.Entry  // Entries of the selected family
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	src         *textutil.Source
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show family sidebar
}

// NewBrowserModel creates a new browser model sized to cfg.
func NewBrowserModel(cfg core.RuntimeConfig) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		families:    wairo.Families(),
		keys:        DefaultBrowserKeyMap(),
		help:        h,
		src:         textutil.NewSource(cfg.Seed),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showSidebar: cfg.ScreenW >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadFamily(0)

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "Kanji", Width: 10},
		{Title: "Hex", Width: 8},
		{Title: "RGB", Width: 13},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadFamily selects the family at index i and fills the table.
func (m *BrowserModel) loadFamily(i int) {
	if len(m.families) == 0 {
		return
	}
	m.famCursor = i
	m.entries = wairo.InFamily(m.families[i])
	m.updateTableRows()
}

// updateTableRows updates the table with the current entries.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			e.Kanji,
			e.Color().Hex(),
			fmt.Sprintf("%d,%d,%d", e.R, e.G, e.B),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Selected returns the entry under the cursor.
func (m BrowserModel) Selected() (wairo.Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return wairo.Entry{}, false
	}
	return m.entries[i], true
}

// Family returns the family currently shown.
func (m BrowserModel) Family() wairo.Family {
	return m.families[m.famCursor]
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFam), key.Matches(msg, m.keys.Right):
			m.loadFamily((m.famCursor + 1) % len(m.families))
			return m, nil

		case key.Matches(msg, m.keys.PrevFam), key.Matches(msg, m.keys.Left):
			prev := m.famCursor - 1
			if prev < 0 {
				prev = len(m.families) - 1
			}
			m.loadFamily(prev)
			return m, nil

		case key.Matches(msg, m.keys.Random):
			if len(m.entries) > 0 {
				m.table.SetCursor(m.src.Intn(len(m.entries)))
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("和色 WAIRO - %s (%d)", m.Family().Namespace(), len(m.entries))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders sidebar, table and preview side by side.
func (m BrowserModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Families\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range m.families {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.famCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + f.String()))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.table.View()),
		"  ",
		m.renderPreview(),
	)
}

// renderNarrowLayout renders family tabs above the table and preview.
func (m BrowserModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.families))
	for i, f := range m.families {
		if i == m.famCursor {
			tabs[i] = activeTabStyle.Render(f.String())
		} else {
			tabs[i] = tabStyle.Render(" " + f.String() + " ")
		}
	}

	// Wrap tabs if needed
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.Family())
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.renderPreview())

	return b.String()
}

// renderPreview renders a large swatch of the selected color with its names.
func (m BrowserModel) renderPreview() string {
	e, ok := m.Selected()
	if !ok {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No colors in this family.")
	}

	c := e.Color()
	lines := make([]string, 0, previewHeight+3)
	for range previewHeight {
		lines = append(lines, Swatch(c, previewWidth))
	}
	lines = append(lines,
		Label(c, PadRight(e.Name+" "+e.Kanji, previewWidth-2)),
		e.QualifiedName(),
		c.String(),
	)
	return strings.Join(lines, "\n")
}

// IsQuitting returns true if user wants to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the catalog browser until the user quits.
func RunBrowser(cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewBrowserModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
