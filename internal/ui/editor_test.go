package ui

import (
	"testing"
)

func TestEditorOpensForSelectedGroup(t *testing.T) {
	m := newTestModel(t, testGroups(2))
	m = press(t, m, "g")
	m = press(t, m, "down")
	m = press(t, m, "e")
	if m.tab != tabEditing {
		t.Fatalf("tab = %d, want editing", m.tab)
	}
	if m.edit == nil {
		t.Fatal("editor not started")
	}
	if m.edit.index != 1 {
		t.Fatalf("edit index = %d, want 1", m.edit.index)
	}
	if m.input.Value() != "Group 2" {
		t.Fatalf("input = %q, want the selected group name", m.input.Value())
	}
}

func TestEditorPlaceholderOnEmptyStore(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "e")
	if m.tab != tabEditing {
		t.Fatalf("tab = %d, want editing", m.tab)
	}
	if m.edit != nil {
		t.Fatal("editor started with no selection")
	}
}

func TestEditorCancelRestoresGroupsTab(t *testing.T) {
	m := newTestModel(t, testGroups(2))
	m = press(t, m, "g")
	m = press(t, m, "e")
	m = press(t, m, "esc")
	if m.tab != tabGroups {
		t.Fatalf("tab = %d, want groups", m.tab)
	}
	if m.edit != nil {
		t.Fatal("editor still active after cancel")
	}
	if m.groups[0].Name != "Group 1" {
		t.Fatalf("cancel changed the record: %q", m.groups[0].Name)
	}
}

func TestEditorSaveRoundTrips(t *testing.T) {
	m := newTestModel(t, testGroups(2))
	m = press(t, m, "g")
	m = press(t, m, "e")
	// Accept every field unchanged; the last enter saves.
	for i := 0; i < 4; i++ {
		m = press(t, m, "enter")
	}
	if m.edit != nil {
		t.Fatal("editor still active after save")
	}
	if m.tab != tabGroups {
		t.Fatalf("tab = %d, want groups", m.tab)
	}
	reloaded, err := m.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded[0].Name != "Group 1" || reloaded[0].Assignment != 0 {
		t.Fatalf("record changed by no-op edit: %+v", reloaded[0])
	}
	if len(reloaded[0].Feedback) != 1 || reloaded[0].Feedback[0] != "feedback" {
		t.Fatalf("feedback did not round trip: %v", reloaded[0].Feedback)
	}
}

func TestEditorEditsName(t *testing.T) {
	m := newTestModel(t, testGroups(1))
	m = press(t, m, "g")
	m = press(t, m, "e")
	m = press(t, m, "X")
	for i := 0; i < 4; i++ {
		m = press(t, m, "enter")
	}
	if m.groups[0].Name != "Group 1X" {
		t.Fatalf("name = %q, want %q", m.groups[0].Name, "Group 1X")
	}
}

func TestEditorRejectsBadAssignment(t *testing.T) {
	m := newTestModel(t, testGroups(1))
	m = press(t, m, "g")
	m = press(t, m, "e")
	m = press(t, m, "enter") // name -> assignment
	m = press(t, m, "x")     // "0" becomes "0x"
	for i := 0; i < 3; i++ {
		m = press(t, m, "enter")
	}
	if m.edit == nil {
		t.Fatal("editor closed despite invalid assignment")
	}
	if m.status == "Saved group" {
		t.Fatalf("status = %q, save should have been refused", m.status)
	}
	reloaded, err := m.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded[0].Assignment != 0 {
		t.Fatalf("assignment persisted as %d", reloaded[0].Assignment)
	}
}

func TestEditorFieldNavigationWraps(t *testing.T) {
	m := newTestModel(t, testGroups(1))
	m = press(t, m, "g")
	m = press(t, m, "e")
	m = press(t, m, "shift+tab")
	if m.edit.field != len(editFields())-1 {
		t.Fatalf("field = %d, want last", m.edit.field)
	}
	m = press(t, m, "tab")
	if m.edit.field != 0 {
		t.Fatalf("field = %d, want 0", m.edit.field)
	}
}
