package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nestjam/pariffiliator/internal/ui"
)

const (
	title       = "Pariffiliator"
	placeholder = "Paste Amazon link..."
	helpText    = "enter: generate • ctrl+y: copy • esc: quit"
	inputWidth  = 60
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F6BBB3")).MarginBottom(1)
	buttonStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(lipgloss.Color("#075265")).Foreground(lipgloss.Color("#FFFFFF"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	resultStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#ADA7BD"))
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type generatedMsg struct {
	link string
	err  error
}

type copyExpiredMsg struct {
	seq uint64
}

// Model - терминальный интерфейс генерации партнерской ссылки.
type Model struct {
	ctx       context.Context
	generator ui.Generator
	clipboard ui.Clipboard
	input     textinput.Model
	notice    string
	state     ui.State
	copiedFor time.Duration
}

// Option определяет опцию настройки модели.
type Option func(*Model)

// WithCopiedFor задает время показа отметки о копировании.
func WithCopiedFor(d time.Duration) Option {
	return func(m *Model) {
		m.copiedFor = d
	}
}

// New создает модель.
func New(ctx context.Context, gen ui.Generator, clipboard ui.Clipboard, options ...Option) Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = inputWidth
	input.Focus()

	m := Model{
		ctx:       ctx,
		generator: gen,
		clipboard: clipboard,
		input:     input,
		copiedFor: ui.DefaultCopiedFor,
	}

	for _, opt := range options {
		opt(&m)
	}

	return m
}

// Run запускает интерфейс и ждет его завершения.
func Run(ctx context.Context, gen ui.Generator, clipboard ui.Clipboard) error {
	_, err := tea.NewProgram(New(ctx, gen, clipboard), tea.WithContext(ctx)).Run()
	return err
}

// State возвращает состояние интерфейса.
func (m Model) State() ui.State {
	return m.state
}

// Init реализует tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update реализует tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.generate()
		case "ctrl+y":
			return m.copy()
		}
	case generatedMsg:
		if msg.err != nil {
			m.state = ui.Reduce(m.state, ui.GenerateFailed{Message: ui.Message(msg.err)})
		} else {
			m.state = ui.Reduce(m.state, ui.GenerateSucceeded{Link: msg.link})
		}
		return m, nil
	case copyExpiredMsg:
		m.state = ui.Reduce(m.state, ui.CopyFlagExpired{Seq: msg.seq})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Input {
		m.state = ui.Reduce(m.state, ui.InputChanged{Text: v})
		m.notice = ""
	}
	return m, cmd
}

func (m Model) generate() (tea.Model, tea.Cmd) {
	if m.state.Busy {
		return m, nil
	}

	m.state = ui.Reduce(m.state, ui.GenerateRequested{})
	m.notice = ""

	ctx, gen, input := m.ctx, m.generator, m.state.Input
	return m, func() tea.Msg {
		link, err := gen.Generate(ctx, input)
		return generatedMsg{link: link.Short, err: err}
	}
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	if m.state.Result == "" {
		return m, nil
	}

	if err := m.clipboard.WriteText(m.state.Result); err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.state = ui.Reduce(m.state, ui.CopyRequested{})
	seq := m.state.CopySeq()
	return m, tea.Tick(m.copiedFor, func(time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

// View реализует tea.Model.
func (m Model) View() string {
	rows := []string{
		titleStyle.Render(title),
		m.input.View(),
		"",
		buttonStyle.Render(m.state.ButtonLabel()),
	}

	if m.state.Error != "" {
		rows = append(rows, "", errorStyle.Render(m.state.Error))
	}

	if m.state.Result != "" {
		rows = append(rows, "", resultStyle.Render(m.state.Result), m.state.CopyButtonLabel())
	}

	if m.notice != "" {
		rows = append(rows, errorStyle.Render(m.notice))
	}

	rows = append(rows, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
