// ABOUTME: Tests for the import review screen key handling
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ticnutai/crmport/models"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func reviewContacts() []models.ParsedContact {
	matched := uuid.New()
	return []models.ParsedContact{
		{Name: "Dana Cohen", Selected: true, Action: models.ActionImport},
		{
			Name:            "Noa Levi",
			IsDuplicate:     true,
			MatchedClientID: &matched,
			MatchReason:     models.MatchEmail,
			Selected:        false,
			Action:          models.ActionSkip,
		},
	}
}

func TestToggleDuplicatePromotesToUpdate(t *testing.T) {
	m := NewModel(reviewContacts())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	c := m.Contacts()[1]
	if !c.Selected {
		t.Fatal("expected duplicate to be selected after toggle")
	}
	if c.Action != models.ActionUpdate {
		t.Errorf("expected action update for matched duplicate, got %q", c.Action)
	}
}

func TestCycleActionWithoutMatch(t *testing.T) {
	m := NewModel(reviewContacts())

	// Row 0 has no match, so the cycle is import -> skip -> import.
	next, _ := m.Update(keyRune('a'))
	m = next.(Model)
	if got := m.Contacts()[0].Action; got != models.ActionSkip {
		t.Fatalf("after first cycle got %q", got)
	}

	next, _ = m.Update(keyRune('a'))
	m = next.(Model)
	if got := m.Contacts()[0].Action; got != models.ActionImport {
		t.Fatalf("after second cycle got %q", got)
	}
}

func TestCycleActionWithMatch(t *testing.T) {
	m := NewModel(reviewContacts())
	m.cursor = 1
	m.contacts[1].Action = models.ActionImport

	next, _ := m.Update(keyRune('a'))
	m = next.(Model)
	if got := m.Contacts()[1].Action; got != models.ActionUpdate {
		t.Fatalf("matched record should cycle to update, got %q", got)
	}
}

func TestEnterConfirms(t *testing.T) {
	m := NewModel(reviewContacts())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.Confirmed() {
		t.Error("expected confirmed after enter")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestQuitAborts(t *testing.T) {
	m := NewModel(reviewContacts())

	next, _ := m.Update(keyRune('q'))
	m = next.(Model)

	if m.Confirmed() {
		t.Error("q must not confirm the import")
	}
	if !m.aborted {
		t.Error("expected aborted flag")
	}
}

func TestSelectAllAndNone(t *testing.T) {
	m := NewModel(reviewContacts())

	next, _ := m.Update(keyRune('A'))
	m = next.(Model)
	for i, c := range m.Contacts() {
		if !c.Selected {
			t.Errorf("contact %d not selected after select-all", i)
		}
		if c.Action == models.ActionSkip {
			t.Errorf("contact %d left on skip after select-all", i)
		}
	}

	next, _ = m.Update(keyRune('N'))
	m = next.(Model)
	for i, c := range m.Contacts() {
		if c.Selected {
			t.Errorf("contact %d still selected after select-none", i)
		}
	}
}

func TestCursorBounds(t *testing.T) {
	m := NewModel(reviewContacts())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor moved above first row: %d", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor moved past last row: %d", m.cursor)
	}
}
