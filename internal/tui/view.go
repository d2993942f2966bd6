package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gridsmith/internal/ui/swatch"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("Gridsmith • %s", m.title()))
	sections = append(sections, title, mutedStyle.Render(fmt.Sprintf("%s layout %s", m.snap.Layout.SiteType, m.snap.Layout.ID)))

	sections = append(sections, sectionStyle.Render("Layout"), m.renderAreas())

	locks := m.svc.Locks()
	sections = append(sections, sectionStyle.Render("Theme"), swatch.Strip(m.snap.Theme.Colors, locks))
	if concept := swatch.Concept(m.snap.Concept); concept != "" {
		sections = append(sections, mutedStyle.Render("concept ")+concept)
	}

	sections = append(sections, sectionStyle.Render("Add"), fmt.Sprintf("next part: %s (%s)", m.CurrentType().Label, m.CurrentType().Category))

	sections = append(sections, "", m.renderStatus(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderAreas() string {
	var lines []string
	for i, area := range m.snap.Layout.Areas {
		header := fmt.Sprintf("%s (%d)", area.Label, len(area.Components))
		if i == m.area {
			lines = append(lines, activeAreaStyle.Render("▸ "+header))
		} else {
			lines = append(lines, areaStyle.Render("  "+header))
		}

		if len(area.Components) == 0 {
			if i == m.area {
				lines = append(lines, emptyStyle.Render("empty"))
			}
			continue
		}
		for j, id := range area.Components {
			part := m.snap.Parts[id]
			label := fmt.Sprintf("%s [%s]", part.Label, part.Type)
			if i == m.area && j == m.part {
				lines = append(lines, selectedPartStyle.Render("› "+label))
			} else {
				lines = append(lines, partStyle.Render(label))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.errMsg != "" {
		return errorStyle.Render("✗ " + m.errMsg)
	}
	history := fmt.Sprintf("undo:%s redo:%s", yesNo(m.snap.CanUndo), yesNo(m.snap.CanRedo))
	return statusStyle.Render(m.status) + "  " + mutedStyle.Render(history)
}

func (m Model) title() string {
	if strings.TrimSpace(m.snap.Meta.Name) != "" {
		return m.snap.Meta.Name
	}
	return "Untitled design"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
