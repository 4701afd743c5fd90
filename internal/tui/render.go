package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/stats"
	"github.com/akyairhashvil/rollcall/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render("ROLL") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true).Render("CALL")
}

func (m Model) renderHeader() string {
	tabs := []struct {
		key     string
		label   string
		section Section
	}{
		{"1", "Training", SectionTraining},
		{"2", "Roster", SectionRoster},
		{"3", "History", SectionHistory},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := fmt.Sprintf("[%s] %s", t.key, t.label)
		active := m.section == t.section ||
			(t.section == SectionHistory && m.section == SectionSeasonDetail)
		if active {
			parts = append(parts, m.theme.Header.Render(label))
		} else {
			parts = append(parts, m.theme.Dim.Render(label))
		}
	}

	header := renderLogo() + "  " + strings.Join(parts, "  ")
	if m.status != "" {
		style := m.theme.Dim
		if m.statusIsErr {
			style = m.theme.Error
		}
		header += "\n" + style.Render(m.status)
	}
	return header
}

func (m Model) renderFooter() string {
	var help string
	switch m.section {
	case SectionTraining:
		help = "space toggle absent · c commit day · 1/2/3 sections · T theme · q quit"
	case SectionRoster:
		help = "a add · r rename · d remove · 1/2/3 sections · q quit"
	case SectionHistory:
		help = "enter detail · n new season · 1/2/3 sections · q quit"
	case SectionSeasonDetail:
		help = "e export PDF · esc back · q quit"
	}
	return m.theme.Dim.Render(help)
}

func (m Model) nameWidth() int {
	if m.width == 0 {
		return config.TargetNameWidth
	}
	if m.width < config.CompactModeThreshold {
		return config.MinNameWidth
	}
	return util.Clamp(m.width-10, config.MinNameWidth, config.TargetNameWidth)
}

// windowBounds returns the slice of rows to show so the cursor stays
// visible within the row budget.
func windowBounds(cursor, length, max int) (int, int) {
	if length <= max {
		return 0, length
	}
	start := cursor - max/2
	start = util.Clamp(start, 0, length-max)
	return start, start + max
}

func (m Model) renderTraining() string {
	roster := m.app.Roster()
	session := m.app.Session()
	live := stats.LiveStats(roster, session)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Training %s", session.Date)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		m.theme.Present.Render(fmt.Sprintf("present %d (%s)", live.PresentCount, FormatPct(live.PresentPct))),
		m.theme.Absent.Render(fmt.Sprintf("absent %d (%s)", live.AbsentCount, FormatPct(live.AbsentPct))),
	))

	if len(roster) == 0 {
		b.WriteString(m.theme.Dim.Render("Roster is empty. Add members in the roster section."))
		return b.String()
	}

	start, end := windowBounds(m.cursor, len(roster), config.MaxVisibleRows)
	if start > 0 {
		b.WriteString(m.theme.Dim.Render("  ↑ more") + "\n")
	}
	for i := start; i < end; i++ {
		member := roster[i]
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.Cursor.Render("> ")
		}
		mark := m.theme.Present.Render("[ ]")
		style := m.theme.Present
		if session.Records[member.ID] {
			mark = m.theme.Absent.Render("[x]")
			style = m.theme.Absent
		}
		label := truncateLabel(FormatMemberLabel(member), m.nameWidth())
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, style.Render(label)))
	}
	if end < len(roster) {
		b.WriteString(m.theme.Dim.Render("  ↓ more") + "\n")
	}
	return b.String()
}

func (m Model) renderRoster() string {
	roster := m.app.Roster()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Roster (%d members)", len(roster))))
	b.WriteString("\n\n")

	if len(roster) == 0 {
		b.WriteString(m.theme.Dim.Render("No members. Press 'a' to add one."))
		return b.String()
	}

	start, end := windowBounds(m.cursor, len(roster), config.MaxVisibleRows)
	if start > 0 {
		b.WriteString(m.theme.Dim.Render("  ↑ more") + "\n")
	}
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = m.theme.Cursor.Render("> ")
		}
		label := truncateLabel(FormatMemberLabel(roster[i]), m.nameWidth())
		b.WriteString(cursor + label + "\n")
	}
	if end < len(roster) {
		b.WriteString(m.theme.Dim.Render("  ↓ more") + "\n")
	}
	return b.String()
}

func (m Model) renderHistory() string {
	seasons := m.app.Seasons()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Seasons"))
	b.WriteString("\n\n")

	if len(seasons) == 0 {
		b.WriteString(m.theme.Dim.Render("No seasons yet. Press 'n' to start one."))
		return b.String()
	}

	for i, season := range seasons {
		cursor := "  "
		if i == m.historyCursor {
			cursor = m.theme.Cursor.Render("> ")
		}
		line := fmt.Sprintf("%s - %d training days", FormatDateRange(season.StartDate, season.EndDate), len(season.TrainingDays))
		if i == len(seasons)-1 {
			line += " " + m.theme.Highlight.Render("(active)")
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) renderSeasonDetail() string {
	season, err := m.app.SeasonAt(m.detailIndex)
	if err != nil {
		return m.theme.Error.Render(err.Error())
	}
	roster := m.app.Roster()
	overall := stats.SeasonOverallStats(roster, season)
	perMember := stats.PerMemberStats(roster, season)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Season %s", FormatDateRange(season.StartDate, season.EndDate))))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Training days: %d\n", overall.TrainingDays))
	b.WriteString(fmt.Sprintf("Overall %s  %s\n\n",
		m.theme.Present.Render("present "+FormatPct(overall.PresentPct)),
		m.theme.Absent.Render("absent "+FormatPct(overall.AbsentPct)),
	))

	b.WriteString(m.theme.Highlight.Render("Per member"))
	b.WriteString("\n")
	for _, ms := range perMember {
		label := truncateLabel(FormatMemberLabel(ms.Member), m.nameWidth())
		b.WriteString(fmt.Sprintf("  %s: absent %d (%s)\n", label, ms.AbsentCount, FormatPct(ms.AbsentPct)))
	}
	return b.String()
}

func (m Model) renderModal() string {
	switch m.modal {
	case modalConfirmRemove:
		name := ""
		for _, member := range m.app.Roster() {
			if member.ID == m.targetID {
				name = member.Name
			}
		}
		prompt := fmt.Sprintf("Remove %s from the roster? (y/n)", name)
		return m.theme.Input.Render(prompt)
	case modalAddMember, modalRenameMember, modalSeasonStart, modalSeasonEnd:
		title := map[modalKind]string{
			modalAddMember:    "Add member",
			modalRenameMember: "Rename member",
			modalSeasonStart:  "New season - start date",
			modalSeasonEnd:    "New season - end date",
		}[m.modal]
		body := m.theme.Header.Render(title) + "\n" + m.input.View() + "\n" + m.theme.Dim.Render("enter confirm · esc cancel")
		if m.status != "" && m.statusIsErr {
			body += "\n" + m.theme.Error.Render(m.status)
		}
		return m.theme.Input.Render(body)
	}
	return ""
}
