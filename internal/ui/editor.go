package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GTKoning/SAGradingCLI/internal/storage"
)

// feedbackSep joins the feedback lines into the single-line editor
// field and splits them back on save.
const feedbackSep = "; "

type editState struct {
	index      int
	name       string
	assignment string
	feedback   string
	footnote   string
	field      int
}

func editFields() []string {
	return []string{"name", "assignment", "feedback", "footnote"}
}

func (es editState) currentLabel() string {
	return editFields()[es.field]
}

func (es editState) currentValue() string {
	switch es.field {
	case 0:
		return es.name
	case 1:
		return es.assignment
	case 2:
		return es.feedback
	case 3:
		return es.footnote
	default:
		return ""
	}
}

func (es *editState) setCurrentValue(v string) {
	switch es.field {
	case 0:
		es.name = v
	case 1:
		es.assignment = v
	case 2:
		es.feedback = v
	case 3:
		es.footnote = v
	}
}

// enterEditing switches to the Editing tab. With a selected group it
// opens the field editor; with an empty store the tab just shows its
// placeholder.
func (m Model) enterEditing() (tea.Model, tea.Cmd) {
	m.tab = tabEditing
	if m.selected < 0 || m.selected >= len(m.groups) {
		return m, nil
	}
	g := m.groups[m.selected]
	m.edit = &editState{
		index:      m.selected,
		name:       g.Name,
		assignment: strconv.Itoa(g.Assignment),
		feedback:   strings.Join(g.Feedback, feedbackSep),
		footnote:   g.Footnote,
		field:      0,
	}
	m.input.SetValue(m.edit.currentValue())
	m.input.Placeholder = m.edit.currentLabel()
	m.input.Focus()
	m.status = "Edit group: enter to save field, tab/shift+tab to move, esc to cancel"
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.edit = nil
		m.input.Blur()
		m.tab = tabGroups
		m.status = "Edit cancelled"
		return m, nil
	case "tab":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.field = wrapIndex(m.edit.field+1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case "shift+tab":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.field = wrapIndex(m.edit.field-1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	case "enter":
		m.edit.setCurrentValue(m.input.Value())
		if m.edit.field >= len(editFields())-1 {
			return m.saveEdit()
		}
		m.edit.field++
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	assignment, err := strconv.Atoi(strings.TrimSpace(m.edit.assignment))
	if err != nil {
		m.status = fmt.Sprintf("assignment must be a number: %v", err)
		return m, nil
	}
	g := storage.Group{
		Name:       m.edit.name,
		Assignment: assignment,
		Feedback:   strings.Split(m.edit.feedback, feedbackSep),
		Footnote:   m.edit.footnote,
	}
	groups, err := m.store.UpdateAt(m.edit.index, g)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.groups = groups
	m.selected = normalizeSelection(m.edit.index, len(groups))
	m.edit = nil
	m.input.Blur()
	m.tab = tabGroups
	m.status = "Saved group"
	return m, nil
}
