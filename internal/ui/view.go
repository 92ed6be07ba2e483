package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GTKoning/SAGradingCLI/internal/config"
)

var (
	colorAccent = lipgloss.Color("11")
	colorDim    = lipgloss.Color("240")

	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleTabActive = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	styleTabIdle   = lipgloss.NewStyle().Foreground(colorDim)
	styleSelected  = lipgloss.NewStyle().Bold(true).Background(colorAccent).Foreground(lipgloss.Color("0"))
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader    = lipgloss.NewStyle().Bold(true)
	stylePanel     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// groupDetail is the detail pane for the selected group.
type groupDetail struct {
	name       string
	assignment int
	feedback   string
	footnote   string
}

type groupsView struct {
	names    []string
	selected int
	detail   *groupDetail
}

type editorView struct {
	labels []string
	values []string
	active int
	input  string
}

// renderModel is everything the renderer needs for one frame. Building
// it never mutates the store or the selection.
type renderModel struct {
	tab    tab
	status string
	help   string
	groups *groupsView
	editor *editorView
}

func (m Model) buildRenderModel() renderModel {
	rm := renderModel{
		tab:    m.tab,
		status: m.status,
		help:   renderHelp(m.cfg.Keys),
	}
	switch m.tab {
	case tabGroups:
		gv := groupsView{selected: m.selected}
		for _, g := range m.groups {
			gv.names = append(gv.names, g.Name)
		}
		if m.selected >= 0 && m.selected < len(m.groups) {
			g := m.groups[m.selected]
			gv.detail = &groupDetail{
				name:       g.Name,
				assignment: g.Assignment,
				feedback:   strings.Join(g.Feedback, " "),
				footnote:   g.Footnote,
			}
		}
		rm.groups = &gv
	case tabEditing:
		if m.edit != nil {
			rm.editor = &editorView{
				labels: editFields(),
				values: []string{m.edit.name, m.edit.assignment, m.edit.feedback, m.edit.footnote},
				active: m.edit.field,
				input:  m.input.View(),
			}
		}
	}
	return rm
}

func (m Model) View() string {
	return render(m.buildRenderModel())
}

func render(rm renderModel) string {
	var b strings.Builder

	b.WriteString(renderTabs(rm.tab))
	b.WriteString("\n\n")

	switch rm.tab {
	case tabHome:
		b.WriteString(renderHome())
	case tabGroups:
		b.WriteString(renderGroups(rm.groups))
	case tabEditing:
		b.WriteString(renderEditor(rm.editor))
	}

	b.WriteString("\n\n")
	b.WriteString(rm.status)
	b.WriteString("\n")
	b.WriteString(styleDim.Render(rm.help))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("SAGrading - CLI 2021"))
	return b.String()
}

func renderTabs(active tab) string {
	titles := []string{"Home", "Groups", "Editing"}
	parts := make([]string, 0, len(titles))
	for i, t := range titles {
		if tab(i) == active {
			parts = append(parts, styleTabActive.Render(t))
		} else {
			parts = append(parts, styleTabIdle.Render(t))
		}
	}
	return strings.Join(parts, styleDim.Render(" | "))
}

func renderHome() string {
	lines := []string{
		"Welcome",
		"",
		"to",
		"",
		styleTitle.Render("SAGrading-CLI"),
		"",
		"Press 'g' to access groups, 'a' to add random new groups",
		"and 'd' to delete the currently selected group.",
		"",
		`    \/`,
		styleTitle.Render(`|\---/|`),
		styleTitle.Render(`| o_o |`),
		styleTitle.Render(` \_^_/ `),
	}
	return stylePanel.Render(strings.Join(lines, "\n"))
}

func renderGroups(gv *groupsView) string {
	if gv == nil || len(gv.names) == 0 {
		return stylePanel.Render("No groups yet. Press 'a' to add one.")
	}

	var list strings.Builder
	for i, name := range gv.names {
		if i == gv.selected {
			list.WriteString(styleSelected.Render("> " + name))
		} else {
			list.WriteString("  " + name)
		}
		list.WriteString("\n")
	}

	var detail strings.Builder
	if gv.detail != nil {
		detail.WriteString(styleHeader.Render("Type") + "  " + styleHeader.Render("Assignment") + "  " + styleHeader.Render("Feedback"))
		detail.WriteString("\n")
		detail.WriteString(fmt.Sprintf("%s  %d  %s", gv.detail.name, gv.detail.assignment, gv.detail.feedback))
		detail.WriteString("\n\n")
		detail.WriteString(styleDim.Render(gv.detail.footnote))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		stylePanel.Render(list.String()),
		stylePanel.Render(detail.String()),
	)
}

func renderEditor(ev *editorView) string {
	if ev == nil {
		return stylePanel.Render("No group selected. Pick one in the Groups tab, then press 'e'.")
	}
	var b strings.Builder
	for i, label := range ev.labels {
		prefix := " "
		if i == ev.active {
			prefix = ">"
		}
		val := ev.values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-12s : %s\n", prefix, label, val))
	}
	b.WriteString("\n")
	b.WriteString("Field: " + ev.labels[ev.active])
	b.WriteString("\n")
	b.WriteString(ev.input)
	return stylePanel.Render(b.String())
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s home • %s groups • %s edit • %s add • %s delete • %s quit",
		k.Up, k.Down, k.Home, k.Groups, k.Editing, k.Add, k.Delete, k.Quit)
}
