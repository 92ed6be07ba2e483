// Package ui drives the interactive dashboard: a Bubble Tea model that
// consumes key and tick events, mutates the group store and the list
// selection, and renders the tabbed views.
package ui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GTKoning/SAGradingCLI/internal/config"
	"github.com/GTKoning/SAGradingCLI/internal/storage"
)

type tab int

const (
	tabHome tab = iota
	tabGroups
	tabEditing
)

// tickMsg forces a re-render at a fixed cadence. It carries no state
// and must never change any.
type tickMsg struct{}

func tickEvery(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

type Model struct {
	store  *storage.Store
	cfg    config.Config
	rng    *rand.Rand
	groups []storage.Group
	tab    tab
	// selected is the highlighted row in the Groups view, -1 when the
	// store is empty and no row can be selected.
	selected int
	edit     *editState
	input    textinput.Model
	status   string
	width    int
	height   int
}

// New builds the initial model from a loaded store snapshot.
func New(store *storage.Store, cfg config.Config, groups []storage.Group) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		store:    store,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		groups:   groups,
		tab:      tabHome,
		selected: normalizeSelection(0, len(groups)),
		input:    ti,
		status:   "Press 'g' for groups, 'a' to add, 'd' to delete, 'q' to quit.",
	}
}

// Run performs the initial load and starts the session. Load failures
// are reported before any terminal mode is touched, so a broken store
// file never enters the interactive loop.
func Run(store *storage.Store, cfg config.Config) error {
	groups, err := store.Load()
	if err != nil {
		return err
	}
	program := tea.NewProgram(New(store, cfg, groups), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tickEvery(m.cfg.TickInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tickEvery(m.cfg.TickInterval())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10
	case tea.KeyMsg:
		if m.edit != nil {
			return m.updateEditor(msg)
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Home:
		m.tab = tabHome
	case m.cfg.Keys.Groups:
		m.tab = tabGroups
		m.selected = normalizeSelection(m.selected, len(m.groups))
	case m.cfg.Keys.Editing:
		return m.enterEditing()
	case m.cfg.Keys.Add:
		return m.addGroup()
	case m.cfg.Keys.Delete:
		return m.deleteSelected()
	case m.cfg.Keys.Down:
		if m.tab == tabGroups && m.selected >= 0 {
			m.selected = wrapIndex(m.selected+1, len(m.groups))
		}
	case "down":
		if m.tab == tabGroups && m.selected >= 0 {
			m.selected = wrapIndex(m.selected+1, len(m.groups))
		}
	case m.cfg.Keys.Up:
		if m.tab == tabGroups && m.selected >= 0 {
			m.selected = wrapIndex(m.selected-1, len(m.groups))
		}
	case "up":
		if m.tab == tabGroups && m.selected >= 0 {
			m.selected = wrapIndex(m.selected-1, len(m.groups))
		}
	}
	return m, nil
}

func (m Model) addGroup() (tea.Model, tea.Cmd) {
	groups, err := m.store.Append(storage.RandomGroup(m.rng))
	if err != nil {
		m.status = fmt.Sprintf("add failed: %v", err)
		return m, nil
	}
	m.groups = groups
	if m.selected < 0 {
		m.selected = normalizeSelection(0, len(m.groups))
	}
	m.status = "Added group"
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	if m.tab != tabGroups || m.selected < 0 {
		return m, nil
	}
	groups, removed, err := m.store.RemoveAt(m.selected)
	switch {
	case errors.Is(err, storage.ErrIndex):
		// The store shrank underneath a stale selection. Resync and
		// clamp instead of propagating.
		m.groups, m.selected = m.resync()
		m.status = "selection was stale, resynced"
	case err != nil:
		m.status = fmt.Sprintf("delete failed: %v", err)
	case !removed:
		m.groups = groups
		m.selected = normalizeSelection(m.selected, len(m.groups))
		m.status = "At least one group must remain"
	default:
		m.groups = groups
		if m.selected != 0 {
			m.selected--
		}
		m.selected = normalizeSelection(m.selected, len(m.groups))
		m.status = "Deleted group"
	}
	return m, nil
}

// resync reloads the snapshot after a stale-index failure. A load error
// here keeps the previous snapshot; the selection is clamped either way.
func (m Model) resync() ([]storage.Group, int) {
	groups, err := m.store.Load()
	if err != nil {
		groups = m.groups
	}
	return groups, normalizeSelection(m.selected, len(groups))
}

// normalizeSelection clamps sel into the valid row range, returning -1
// for an empty list.
func normalizeSelection(sel, n int) int {
	if n <= 0 {
		return -1
	}
	if sel < 0 {
		return 0
	}
	if sel >= n {
		return n - 1
	}
	return sel
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
