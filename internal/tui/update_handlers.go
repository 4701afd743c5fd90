package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/tracker"
	"github.com/akyairhashvil/rollcall/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.section = SectionTraining
		m.cursor = 0
		return m, nil
	case "2":
		m.section = SectionRoster
		m.cursor = 0
		return m, nil
	case "3":
		m.section = SectionHistory
		return m, nil
	case "T":
		m.themeName = nextTheme(m.themeName)
		m.theme = Themes[m.themeName]
		m.setStatus(fmt.Sprintf("Theme: %s", m.theme.Name))
		return m, nil
	}

	switch m.section {
	case SectionTraining:
		return m.updateTraining(msg)
	case SectionRoster:
		return m.updateRoster(msg)
	case SectionHistory:
		return m.updateHistory(msg)
	case SectionSeasonDetail:
		return m.updateSeasonDetail(msg)
	}
	return m, nil
}

func (m Model) updateTraining(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.app.Roster()
	switch msg.String() {
	case "up", "k":
		m.cursor = util.Clamp(m.cursor-1, 0, maxIndex(len(roster)))
	case "down", "j":
		m.cursor = util.Clamp(m.cursor+1, 0, maxIndex(len(roster)))
	case " ":
		if len(roster) == 0 {
			return m, nil
		}
		member := roster[m.cursor]
		absent := m.app.Session().Records[member.ID]
		if err := m.app.SetAbsence(member.ID, !absent); err != nil {
			m.setError(err)
		} else {
			m.status = ""
		}
	case "c":
		return m.commitDay()
	}
	return m, nil
}

func (m Model) commitDay() (tea.Model, tea.Cmd) {
	if !m.app.HasActiveSeason() {
		m.setStatus("No active season. Enter a date range to start one.")
		return m.openSeasonModal(true)
	}
	err := m.app.CommitTrainingDay()
	var oor *tracker.OutOfRangeError
	switch {
	case err == nil:
		m.setStatus("Training day committed to the active season.")
	case errors.As(err, &oor):
		// The tracker never commits into a non-covering season; offer
		// to start one instead.
		m.setError(err)
		return m.openSeasonModal(true)
	default:
		m.setError(err)
	}
	return m, nil
}

func (m Model) updateRoster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.app.Roster()
	switch msg.String() {
	case "up", "k":
		m.cursor = util.Clamp(m.cursor-1, 0, maxIndex(len(roster)))
	case "down", "j":
		m.cursor = util.Clamp(m.cursor+1, 0, maxIndex(len(roster)))
	case "a":
		return m.openInputModal(modalAddMember, "New member name", "")
	case "r":
		if len(roster) == 0 {
			return m, nil
		}
		m.targetID = roster[m.cursor].ID
		return m.openInputModal(modalRenameMember, "New name", roster[m.cursor].Name)
	case "d":
		if len(roster) == 0 {
			return m, nil
		}
		m.targetID = roster[m.cursor].ID
		m.modal = modalConfirmRemove
		return m, nil
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	seasons := m.app.Seasons()
	switch msg.String() {
	case "up", "k":
		m.historyCursor = util.Clamp(m.historyCursor-1, 0, maxIndex(len(seasons)))
	case "down", "j":
		m.historyCursor = util.Clamp(m.historyCursor+1, 0, maxIndex(len(seasons)))
	case "enter":
		if len(seasons) == 0 {
			return m, nil
		}
		m.detailIndex = m.historyCursor
		m.section = SectionSeasonDetail
	case "n":
		return m.openSeasonModal(false)
	}
	return m, nil
}

func (m Model) updateSeasonDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.section = SectionHistory
	case "e":
		season, err := m.app.SeasonAt(m.detailIndex)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		path, err := GenerateSeasonReport(m.app.Roster(), season, util.ReportsDir(config.AppName))
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Report written to %s", path))
	}
	return m, nil
}

// --- Modals ---

func (m Model) openInputModal(kind modalKind, placeholder, value string) (tea.Model, tea.Cmd) {
	m.modal = kind
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) openSeasonModal(commitAfter bool) (tea.Model, tea.Cmd) {
	m.commitAfter = commitAfter
	m.pendingStart = ""
	return m.openInputModal(modalSeasonStart, "Season start (YYYY-MM-DD)", "")
}

func (m *Model) closeModal() {
	m.modal = modalNone
	m.input.Reset()
	m.input.Blur()
	m.targetID = 0
	m.pendingStart = ""
	m.commitAfter = false
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == modalConfirmRemove {
		switch msg.String() {
		case "y", "Y":
			if err := m.app.RemoveMember(m.targetID); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Member removed.")
				m.cursor = util.Clamp(m.cursor, 0, maxIndex(len(m.app.Roster())))
			}
			m.closeModal()
		case "n", "N", "esc":
			m.closeModal()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEscape:
		m.closeModal()
		return m, nil
	case tea.KeyEnter:
		return m.submitModal()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.modal {
	case modalAddMember:
		member, err := m.app.AddMember(value)
		var ve *tracker.ValidationError
		switch {
		case errors.As(err, &ve):
			m.setError(err)
			return m, nil // keep the modal open for a correction
		case err != nil:
			m.setError(err)
		default:
			m.setStatus(fmt.Sprintf("Added %s.", FormatMemberLabel(member)))
		}
		m.closeModal()

	case modalRenameMember:
		err := m.app.RenameMember(m.targetID, value)
		var ve *tracker.ValidationError
		switch {
		case errors.As(err, &ve):
			m.setError(err)
			return m, nil
		case err != nil:
			m.setError(err)
		default:
			m.setStatus("Member renamed.")
		}
		m.closeModal()

	case modalSeasonStart:
		m.pendingStart = value
		m.input.Reset()
		m.input.Placeholder = "Season end (YYYY-MM-DD)"
		m.modal = modalSeasonEnd
		return m, nil

	case modalSeasonEnd:
		start := m.pendingStart
		err := m.app.StartSeason(start, value)
		var ve *tracker.ValidationError
		switch {
		case errors.As(err, &ve):
			// Restart the two-step prompt with the reason on screen.
			m.setError(err)
			m.pendingStart = ""
			m.input.Reset()
			m.input.Placeholder = "Season start (YYYY-MM-DD)"
			m.modal = modalSeasonStart
			return m, nil
		case err != nil:
			// Save failed but the season exists in memory; warn and
			// carry on so the user can retry the write later.
			m.setError(err)
		default:
			m.setStatus(fmt.Sprintf("Season %s started.", FormatDateRange(start, value)))
		}
		commit := m.commitAfter
		m.closeModal()
		if commit {
			return m.commitDay()
		}
	}
	return m, nil
}

func maxIndex(length int) int {
	if length == 0 {
		return 0
	}
	return length - 1
}
