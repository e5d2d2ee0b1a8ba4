package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/derelict"
	"github.com/aretw0/derelict/internal/presentation/animation"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	PlaceHolderText = "Type a choice, or your answer..."
	QuitPrompt      = "Do you really want to exit the game?"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	mediaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type frameMsg struct{}

// Model is the bubbletea model of a full-screen play session.
type Model struct {
	ctx      context.Context
	session  *derelict.Session
	render   *domain.Render
	title    string
	renderer func(string) (string, error)
	interval time.Duration

	input    textarea.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	status    string
	statusErr bool
	seq       *animation.Sequence
	quitModal bool
	err       error
}

// Option configures the Model.
type Option func(*Model)

// WithRenderer renders narrative text, e.g. with NewRenderer.
func WithRenderer(r func(string) (string, error)) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithAnimationInterval sets the frame delay of animated exits. Zero skips them.
func WithAnimationInterval(d time.Duration) Option {
	return func(m *Model) {
		m.interval = d
	}
}

// WithTitle sets the header line.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// New creates the model and starts the session unless it is already in play.
func New(ctx context.Context, sess *derelict.Session, opts ...Option) (Model, error) {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 256
	ta.SetWidth(60)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	m := Model{
		ctx:      ctx,
		session:  sess,
		title:    "DERELICT",
		interval: animation.DefaultInterval,
		input:    ta,
		viewport: viewport.New(60, 20),
	}
	for _, opt := range opts {
		opt(&m)
	}

	var (
		render *domain.Render
		err    error
	)
	if sess.State().SessionID == "" || sess.Ended() {
		render, err = sess.Start(ctx)
	} else {
		render, err = sess.Render(ctx)
	}
	if err != nil {
		return Model{}, err
	}
	m.render = render
	if render.Animation != nil {
		m.startAnimation()
	}
	return m, nil
}

// Run plays the session in the alternate screen until the player quits.
func Run(ctx context.Context, sess *derelict.Session, opts ...Option) error {
	m, err := New(ctx, sess, opts...)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	if m.seq != nil {
		return tea.Batch(textarea.Blink, m.frame())
	}
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.input.SetWidth(msg.Width - 4)
		m.ready = true
		m.refresh()
		return m, nil

	case frameMsg:
		return m.advanceAnimation()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.seq != nil {
				return m, nil
			}
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.submit(input)
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// submit answers a pending guard, or picks a choice. A "/" prefix always picks a choice.
func (m Model) submit(input string) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	forceChoice := false
	if cmd, ok := strings.CutPrefix(input, "/"); ok {
		switch strings.ToLower(cmd) {
		case "quit", "exit", "q":
			m.quitModal = true
			return m, nil
		case "inventory", "inv", "i":
			m.status = m.session.InventoryReport().String()
			m.refresh()
			return m, nil
		case "look", "l":
			render, err := m.session.Render(m.ctx)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			return m.show(render)
		}
		input, forceChoice = cmd, true
	}

	var (
		render *domain.Render
		err    error
	)
	if m.render.AwaitingInput() && !forceChoice {
		if key, ok := m.render.ChoiceFor(input); ok {
			input, forceChoice = key, true
		}
	}
	if m.render.AwaitingInput() && !forceChoice {
		render, err = m.session.ResolveGuardedTransition(m.ctx, input)
	} else {
		render, err = m.session.Choose(m.ctx, input)
	}

	if errors.Is(err, domain.ErrUnknownChoice) {
		m.status = fmt.Sprintf("There is no option %q here.", input)
		m.statusErr = true
		m.refresh()
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m.show(render)
}

func (m Model) show(render *domain.Render) (tea.Model, tea.Cmd) {
	if render.Exit {
		m.quitModal = true
		return m, nil
	}
	m.render = render
	var cmd tea.Cmd
	if render.Animation != nil {
		cmd = m.startAnimation()
	}
	m.refresh()
	return m, cmd
}

func (m *Model) startAnimation() tea.Cmd {
	seq := animation.EscapePod()
	m.seq = &seq
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	if m.interval <= 0 {
		return func() tea.Msg { return frameMsg{} }
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m Model) advanceAnimation() (tea.Model, tea.Cmd) {
	if m.seq == nil {
		return m, nil
	}
	if m.interval > 0 && m.seq.Advance() {
		m.refresh()
		return m, m.frame()
	}

	m.seq = nil
	render, err := m.session.CompleteAnimation(m.ctx)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m.show(render)
}

func (m Model) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.session.End()
			return m, tea.Quit
		case tea.KeyEnter:
			m.session.End()
			return m, tea.Quit
		case tea.KeyEsc:
			m.quitModal = false
			return m, nil
		default:
			switch msg.String() {
			case "y", "Y":
				m.session.End()
				return m, tea.Quit
			case "n", "N":
				m.quitModal = false
				m.input.Focus()
				return m, textarea.Blink
			}
		}
	}
	return m, nil
}

// refresh rebuilds the scrollable scene content.
func (m *Model) refresh() {
	m.viewport.SetContent(m.sceneContent())
	m.viewport.GotoTop()
}

func (m Model) sceneContent() string {
	if m.render == nil {
		return ""
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	if m.render.Message != "" {
		style := successStyle
		if m.render.Outcome == domain.OutcomeFailure {
			style = errorStyle
		}
		b.WriteString(style.Render(wordwrap.String(m.render.Message, width)) + "\n\n")
	}

	b.WriteString(m.narrative(width) + "\n")
	if m.render.Media != "" {
		b.WriteString(mediaStyle.Render("[" + m.render.Media + "]") + "\n")
	}
	if m.render.Input != nil && m.render.Input.Prompt != "" && m.render.Input.Prompt != m.render.Text {
		b.WriteString("\n" + wordwrap.String(m.render.Input.Prompt, width) + "\n")
	}

	if m.seq != nil {
		b.WriteString("\n" + progressBar(m.seq.Progress(), width) + "\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, c := range m.render.Choices {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("%d) %s", i+1, c.Label)) + "\n")
	}
	if m.render.AwaitingInput() && len(m.render.Choices) > 0 {
		b.WriteString(promptStyle.Render(m.render.Input.Hint()) + "\n")
	}
	return b.String()
}

func (m Model) narrative(width int) string {
	if m.renderer != nil {
		if out, err := m.renderer(m.render.Text); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return wordwrap.String(m.render.Text, width)
}

func (m Model) View() string {
	if m.quitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	status := promptStyle.Render("Enter: choose or answer • /inventory • Esc: quit")
	if m.status != "" {
		style := lipgloss.NewStyle()
		if m.statusErr {
			style = errorStyle
		}
		status = style.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		m.viewport.View(),
		status,
		m.input.View(),
	)
}

func (m Model) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit"))
	content.WriteString("\n\n")
	content.WriteString(QuitPrompt)
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to keep playing"))

	modal := modalStyle.Width(50).Render(content.String())
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func progressBar(progress float64, width int) string {
	if width > 60 {
		width = 60
	} else if width < 10 {
		width = 10
	}
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return promptStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}
