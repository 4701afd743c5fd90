// Package tui implements the terminal interface: a bubbletea model with
// four sections (training, roster, history, season detail) over the
// tracker's read-only views, pushing back only mutation intents.
package tui

import (
	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/tracker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Section is the high-level view the user is looking at.
type Section int

const (
	SectionTraining Section = iota
	SectionRoster
	SectionHistory
	SectionSeasonDetail
)

type modalKind int

const (
	modalNone modalKind = iota
	modalAddMember
	modalRenameMember
	modalConfirmRemove
	modalSeasonStart
	modalSeasonEnd
)

// Model is the root bubbletea model.
type Model struct {
	app *tracker.App

	section   Section
	themeName string
	theme     Theme

	cursor        int // member cursor in training and roster sections
	historyCursor int
	detailIndex   int // ledger index shown in the detail section

	modal    modalKind
	input    textinput.Model
	targetID int64 // member targeted by rename/remove

	// Season modal state. Start and end dates are collected in two
	// steps; commitAfter retries the day commit once the season exists.
	pendingStart string
	commitAfter  bool

	status      string
	statusIsErr bool
	width       int
	height      int
}

func NewModel(app *tracker.App) Model {
	ti := textinput.New()
	ti.CharLimit = config.MaxNameLength
	ti.Width = 40
	return Model{
		app:       app,
		section:   SectionTraining,
		themeName: "default",
		theme:     Themes["default"],
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateSection(msg)
	}

	if m.modal != modalNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.modal != modalNone {
		return m.theme.Base.Render(m.renderModal())
	}

	var body string
	switch m.section {
	case SectionTraining:
		body = m.renderTraining()
	case SectionRoster:
		body = m.renderRoster()
	case SectionHistory:
		body = m.renderHistory()
	case SectionSeasonDetail:
		body = m.renderSeasonDetail()
	}
	return m.theme.Base.Render(m.renderHeader() + "\n" + body + "\n" + m.renderFooter())
}

// setStatus replaces the transient status line.
func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

// setError surfaces an operation failure; the mutation itself may still
// have been applied (write-through warnings).
func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusIsErr = true
}
