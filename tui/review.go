// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive review of import candidates before they are written
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticnutai/crmport/models"
)

// Model is the review screen shown between parsing and import. It lets the
// user toggle candidates on and off and change their per-record action.
type Model struct {
	contacts []models.ParsedContact
	cursor   int

	confirmed bool
	aborted   bool

	// UI state
	width  int
	height int
}

// NewModel creates a review model over the candidate list. The slice is
// edited in place so the caller sees the final selection after Run.
func NewModel(contacts []models.ParsedContact) Model {
	return Model{
		contacts: contacts,
		width:    80,
		height:   24,
	}
}

// Confirmed reports whether the user chose to proceed with the import.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Contacts returns the candidate list with the user's edits applied.
func (m Model) Contacts() []models.ParsedContact {
	return m.contacts
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.contacts)-1 {
			m.cursor++
		}
	case " ":
		m.toggleSelected()
	case "a":
		m.cycleAction()
	case "A":
		m.selectAll(true)
	case "N":
		m.selectAll(false)
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) toggleSelected() {
	if m.cursor >= len(m.contacts) {
		return
	}
	c := &m.contacts[m.cursor]
	c.Selected = !c.Selected
	// Re-enabling a duplicate left on skip would silently do nothing, so
	// move it to a useful action.
	if c.Selected && c.Action == models.ActionSkip {
		if c.MatchedClientID != nil {
			c.Action = models.ActionUpdate
		} else {
			c.Action = models.ActionImport
		}
	}
}

func (m *Model) cycleAction() {
	if m.cursor >= len(m.contacts) {
		return
	}
	c := &m.contacts[m.cursor]

	// Update only makes sense with a matched record behind it.
	switch c.Action {
	case models.ActionImport:
		if c.MatchedClientID != nil {
			c.Action = models.ActionUpdate
		} else {
			c.Action = models.ActionSkip
		}
	case models.ActionUpdate:
		c.Action = models.ActionSkip
	default:
		c.Action = models.ActionImport
	}
}

func (m *Model) selectAll(selected bool) {
	for i := range m.contacts {
		c := &m.contacts[i]
		c.Selected = selected
		if selected && c.Action == models.ActionSkip {
			if c.MatchedClientID != nil {
				c.Action = models.ActionUpdate
			} else {
				c.Action = models.ActionImport
			}
		}
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("REVIEW IMPORT"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	s.WriteString(m.renderSummary())
	s.WriteString("\n")

	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderTable() string {
	columns := []table.Column{
		{Title: " ", Width: 3},
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 26},
		{Title: "Phone", Width: 14},
		{Title: "Match", Width: 8},
		{Title: "Action", Width: 8},
	}

	var rows []table.Row
	for _, c := range m.contacts {
		mark := " "
		if c.Selected {
			mark = "✓"
		}

		match := ""
		if c.IsDuplicate {
			match = string(c.MatchReason)
		}

		rows = append(rows, table.Row{
			mark,
			c.Name,
			c.Email,
			c.Phone,
			match,
			string(c.Action),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	if m.cursor < len(rows) {
		t.SetCursor(m.cursor)
	}

	return t.View()
}

func (m Model) renderSummary() string {
	selected := 0
	duplicates := 0
	for _, c := range m.contacts {
		if c.Selected && c.Action != models.ActionSkip {
			selected++
		}
		if c.IsDuplicate {
			duplicates++
		}
	}
	return summaryStyle.Render(fmt.Sprintf(
		"%d contacts, %d duplicates, %d will be processed",
		len(m.contacts), duplicates, selected,
	))
}

func (m Model) renderHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Space: Toggle",
		"a: Action",
		"A/N: All/None",
		"Enter: Import",
		"q: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

// Review runs the screen and returns the edited candidates plus whether the
// user confirmed the import.
func Review(contacts []models.ParsedContact) ([]models.ParsedContact, bool, error) {
	p := tea.NewProgram(NewModel(contacts))
	final, err := p.Run()
	if err != nil {
		return contacts, false, err
	}

	m, ok := final.(Model)
	if !ok {
		return contacts, false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Contacts(), m.Confirmed(), nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
