// Package tui is an interactive browser over the type table: a query box
// that resolves codes and searches functions as you type.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corey/fstack/internal/app"
	"github.com/corey/fstack/internal/domain/stack"
	"github.com/corey/fstack/internal/render"
)

// Querier is the subset of *app.App the browser needs.
type Querier interface {
	Resolve(input string) app.Resolution
	Query(q app.Query) (app.Outcome, error)
	Opposite(code string) (app.Opposite, bool)
}

// Model is the Bubble Tea model of the browser.
type Model struct {
	app      Querier
	render   *render.Renderer
	input    textinput.Model
	viewport viewport.Model
	slot     stack.Slot // 0 = any slot
	opposite bool       // show the opposite of a code instead of its stack
	content  string
	status   string
	ready    bool
}

// New creates a browser model.
func New(q Querier, r *render.Renderer) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a code (INFP) or a function (Fi, NiT)"
	ti.Focus()
	ti.CharLimit = 32
	m := Model{app: q, render: r, input: ti, viewport: viewport.New(0, 0)}
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles keys and resizes. Every edit re-runs the query.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 + 1 // header, help, query box, spacer, status
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.content)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.slot = (m.slot + 1) % (stack.Inferior + 1)
			m.refresh()
			return m, nil
		case tea.KeyCtrlO:
			m.opposite = !m.opposite
			m.refresh()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("fstack")
	help := helpStyle.Render("tab: slot filter · ctrl+o: opposite · esc: quit")
	input := queryBoxStyle.Render(m.input.View())
	results := resultBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + help + "\n" + results + "\n" + input + "\n" + status
}

// refresh recomputes content and status from the current input.
func (m *Model) refresh() {
	m.content, m.status = m.evaluate(strings.TrimSpace(m.input.Value()))
	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
}

func (m *Model) evaluate(q string) (content, status string) {
	slotNote := "any slot"
	if m.slot != 0 {
		slotNote = "slot " + m.slot.String()
	}
	if q == "" {
		return "Type to search.", slotNote
	}

	if m.opposite {
		op, ok := m.app.Opposite(q)
		if !ok {
			return m.render.Failure(fmt.Sprintf("Unknown type %q.", q)), "opposite"
		}
		return m.render.Opposite(op), "opposite"
	}

	res := m.app.Resolve(q)
	if res.IsCode() {
		return m.render.Lookup(res.Code, res.Stack), "type " + res.Code
	}
	results := res.Results
	if m.slot != 0 {
		out, err := m.app.Query(app.Query{Function: q, Slot: m.slot})
		if err != nil {
			return m.render.Failure(err.Error()), slotNote
		}
		results = out.Results
	}
	if len(results) == 0 {
		return m.render.Failure(fmt.Sprintf("No type or function matches %q.", q)), slotNote
	}
	return m.render.Results(q, results), fmt.Sprintf("%d types · %s", len(results), slotNote)
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(q Querier, r *render.Renderer) error {
	_, err := tea.NewProgram(New(q, r), tea.WithAltScreen()).Run()
	return err
}
