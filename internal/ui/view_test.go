package ui

import (
	"strings"
	"testing"
)

func TestHomeViewContent(t *testing.T) {
	m := newTestModel(t, testGroups(1))
	out := m.View()
	if !strings.Contains(out, "SAGrading-CLI") {
		t.Fatalf("home view missing title, got=%q", out)
	}
	if !strings.Contains(out, "Home") || !strings.Contains(out, "Groups") || !strings.Contains(out, "Editing") {
		t.Fatalf("tab bar incomplete, got=%q", out)
	}
}

func TestGroupsViewShowsListAndDetail(t *testing.T) {
	m := newTestModel(t, testGroups(3))
	m = press(t, m, "g")
	m = press(t, m, "down")
	out := m.View()
	for _, name := range []string{"Group 1", "Group 2", "Group 3"} {
		if !strings.Contains(out, name) {
			t.Fatalf("groups view missing %q, got=%q", name, out)
		}
	}
	if !strings.Contains(out, "Assignment") {
		t.Fatalf("detail header missing, got=%q", out)
	}
	if !strings.Contains(out, "graded") {
		t.Fatalf("footnote missing, got=%q", out)
	}
}

func TestGroupsViewEmptyState(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "g")
	out := m.View()
	if !strings.Contains(out, "No groups yet") {
		t.Fatalf("empty state missing, got=%q", out)
	}
}

func TestEditingViewPlaceholder(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "e")
	out := m.View()
	if !strings.Contains(out, "No group selected") {
		t.Fatalf("placeholder missing, got=%q", out)
	}
}

func TestRenderModelIsPure(t *testing.T) {
	m := newTestModel(t, testGroups(2))
	m = press(t, m, "g")
	before := m.selected
	beforeLen := len(m.groups)

	_ = m.buildRenderModel()
	_ = m.View()

	if m.selected != before || len(m.groups) != beforeLen {
		t.Fatal("rendering mutated model state")
	}
	reloaded, err := m.store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reloaded) != beforeLen {
		t.Fatalf("rendering touched the store: len = %d", len(reloaded))
	}
}

func TestHelpLineUsesKeymap(t *testing.T) {
	k := testConfig().Keys
	help := renderHelp(k)
	for _, want := range []string{"q quit", "a add", "d delete", "g groups"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help %q missing %q", help, want)
		}
	}
}
