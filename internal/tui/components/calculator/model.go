// Package calculator provides the interactive multi-stage delta-v form.
package calculator

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/stage"
)

const title = "Multi Stage Delta-V Calculator"

// row holds the text inputs of one stage, indexed by stage.Field
type row [3]textinput.Model

// Model is the bubbletea model for the calculator form
type Model struct {
	Session   *actions.Session
	ChartOpts chart.Options
	Keys      KeyMap
	Styles    Styles

	view   actions.View
	inputs map[stage.ID]*row
	cursor int         // focused stage position
	field  stage.Field // focused field
	chart  *chart.Data
	help   help.Model
	done   bool
}

// NewModel creates a calculator form over session
func NewModel(session *actions.Session, opts chart.Options) *Model {
	m := &Model{
		Session:   session,
		ChartOpts: opts,
		Keys:      DefaultKeyMap(),
		Styles:    DefaultStyles(),
		inputs:    make(map[stage.ID]*row),
		help:      help.New(),
	}
	m.view = actions.View{
		Stages: session.Stages().Entries(),
		Status: session.Status(),
	}
	m.syncInputs()
	return m
}

func newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 10
	ti.CharLimit = 24
	ti.SetValue(value)
	return ti
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.AddStage):
		m.dispatch(actions.NewAddStage())
		m.cursor = len(m.view.Stages) - 1
		m.field = stage.FieldWet

	case key.Matches(keyMsg, m.Keys.Remove):
		if id, ok := m.focusedID(); ok {
			m.dispatch(actions.NewRemoveStage(id))
		}

	case key.Matches(keyMsg, m.Keys.MoveUp):
		m.move(-1)

	case key.Matches(keyMsg, m.Keys.MoveDown):
		m.move(1)

	case key.Matches(keyMsg, m.Keys.NextField):
		m.stepField(1)

	case key.Matches(keyMsg, m.Keys.PrevField):
		m.stepField(-1)

	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(m.view.Stages)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.Keys.Calculate):
		m.chart = nil
		m.dispatch(actions.NewCalculate())

	case key.Matches(keyMsg, m.Keys.Plot):
		if m.chart != nil {
			m.chart = nil
		} else {
			m.chart = m.dispatch(actions.NewPlot()).Chart
		}

	default:
		return m, m.updateFocused(msg)
	}

	m.focus()
	return m, nil
}

// updateFocused passes msg to the focused input and records any edit
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	id, ok := m.focusedID()
	if !ok {
		return nil
	}
	r := m.inputs[id]

	before := r[m.field].Value()
	var cmd tea.Cmd
	r[m.field], cmd = r[m.field].Update(msg)
	if after := r[m.field].Value(); after != before {
		m.dispatch(actions.NewSetField(id, m.field, after))
	}
	return cmd
}

func (m *Model) dispatch(a actions.Action) actions.View {
	m.view = m.Session.Dispatch(a)
	m.syncInputs()
	return m.view
}

func (m *Model) move(offset int) {
	id, ok := m.focusedID()
	if !ok {
		return
	}
	m.dispatch(actions.NewMoveStage(id, offset))
	for i, e := range m.view.Stages {
		if e.ID == id {
			m.cursor = i
		}
	}
}

// stepField moves focus across fields, wrapping onto the next or previous stage
func (m *Model) stepField(delta int) {
	n := len(m.view.Stages)
	if n == 0 {
		return
	}
	pos := m.cursor*len(stage.Fields) + int(m.field) + delta
	total := n * len(stage.Fields)
	pos = ((pos % total) + total) % total
	m.cursor = pos / len(stage.Fields)
	m.field = stage.Field(pos % len(stage.Fields))
}

func (m *Model) focusedID() (stage.ID, bool) {
	e, ok := m.Session.Stages().At(m.cursor)
	if !ok {
		return "", false
	}
	return e.ID, true
}

// syncInputs creates inputs for new stages, drops removed ones and clamps the cursor
func (m *Model) syncInputs() {
	live := make(map[stage.ID]bool, len(m.view.Stages))
	for _, e := range m.view.Stages {
		live[e.ID] = true
		if _, ok := m.inputs[e.ID]; !ok {
			m.inputs[e.ID] = &row{newInput(e.Wet), newInput(e.Dry), newInput(e.Isp)}
		}
	}
	for id := range m.inputs {
		if !live[id] {
			delete(m.inputs, id)
		}
	}

	if m.cursor >= len(m.view.Stages) {
		m.cursor = len(m.view.Stages) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.focus()
}

func (m *Model) focus() {
	focusedID, ok := m.focusedID()
	for id, r := range m.inputs {
		for _, f := range stage.Fields {
			if ok && id == focusedID && f == m.field {
				r[f].Focus()
			} else {
				r[f].Blur()
			}
		}
	}
}

// View returns the string representation of the model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Styles.Title.Render(title))
	b.WriteString("\n")

	if len(m.view.Stages) == 0 {
		b.WriteString(m.Styles.Dim.Render("No stages. Press ctrl+a to add one."))
		b.WriteString("\n")
	}

	for i, e := range m.view.Stages {
		label := m.Styles.StageLabel
		marker := "  "
		if i == m.cursor {
			label = m.Styles.ActiveLabel
			marker = m.Styles.ActiveLabel.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(label.Render(fmt.Sprintf("Stage %d", e.Number)))

		r := m.inputs[e.ID]
		for _, f := range stage.Fields {
			b.WriteString("  ")
			b.WriteString(m.Styles.FieldLabel.Render(f.Label()))
			b.WriteString(" [")
			b.WriteString(r[f].View())
			b.WriteString("]")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.chart != nil {
		b.WriteString("\n")
		b.WriteString(chart.Render(*m.chart, m.ChartOpts))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.Keys))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderStatus() string {
	status := m.view.Status
	switch {
	case strings.HasPrefix(status, "Error:"):
		return m.Styles.Error.Render(status)
	case status == actions.StatusCalculateMore:
		return m.Styles.Error.Render(status)
	case m.view.Result != nil && status != actions.StatusIdle:
		return m.Styles.Result.Render(status)
	}
	return status
}

// Run runs the calculator form until the user quits
func Run(session *actions.Session, opts chart.Options) error {
	m := NewModel(session, opts)
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
