// ABOUTME: Bubble Tea question/answer form for the document assistant
// ABOUTME: Enter asks, ctrl+l clears the answer without touching the pipeline
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sozialinfo/fragdoc/internal/models"
)

// QueryPort is the pipeline-facing subset the form needs.
type QueryPort interface {
	Ask(ctx context.Context, query string) (*models.Answer, error)
}

// Example questions shown under the form, carried over from field usage.
var exampleQuestions = []string{
	"Welche Unterlagen benötige ich für ein Gesuch, wenn ich Nebenkosten beantrage?",
	"Was muss ich beachten, wenn ich ein Hörgerät beantrage?",
}

type answerMsg struct {
	answer *models.Answer
	err    error
}

// Model is the Bubble Tea model for the ask/clear form.
type Model struct {
	service  QueryPort
	input    textinput.Model
	viewport viewport.Model
	status   string
	answer   *models.Answer
	waiting  bool
	ready    bool
}

// New creates the form model.
func New(service QueryPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Formuliere deine Frage und drücke Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, status: "Bereit."}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + len(exampleQuestions) + qh + fh
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderAnswer())
		return m, nil

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = "Anfrage fehlgeschlagen: " + msg.err.Error()
			m.answer = nil
		} else {
			m.status = "Antwort erhalten."
			m.answer = msg.answer
		}
		m.viewport.SetContent(m.renderAnswer())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if m.waiting {
				return m, nil
			}
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.waiting = true
			m.status = "Frage wird beantwortet …"
			return m, m.askCmd(q)
		case "ctrl+l":
			// Pure UI reset; the pipeline is untouched
			m.answer = nil
			m.status = "Antwort gelöscht."
			m.input.SetValue("")
			m.viewport.SetContent(m.renderAnswer())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) askCmd(query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.service.Ask(context.Background(), query)
		return answerMsg{answer: answer, err: err}
	}
}

// View renders the form layout.
func (m Model) View() string {
	if !m.ready {
		return "Laden..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Suchassistent zur individuellen Finanzhilfe")
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)

	var examples strings.Builder
	for _, q := range exampleQuestions {
		examples.WriteString(exampleStyle.Render("Beispiel: \"" + q + "\""))
		examples.WriteString("\n")
	}

	return header + "\n" + answer + "\n" + input + "\n" + status + "\n" + examples.String()
}

func (m Model) renderAnswer() string {
	if m.answer == nil {
		return "Noch keine Antwort. Enter fragt, Ctrl+L löscht, Esc beendet."
	}
	var b strings.Builder
	b.WriteString(m.answer.Text)
	if len(m.answer.UsedChunks) > 0 {
		b.WriteString("\n\n")
		b.WriteString(sourceStyle.Render(fmt.Sprintf("Kontext aus %d Textstellen", len(m.answer.UsedChunks))))
	}
	return b.String()
}

var (
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	exampleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// Run starts the form over the given query service.
func Run(service QueryPort) error {
	p := tea.NewProgram(New(service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
