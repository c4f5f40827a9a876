// Package tui provides the interactive terminal chat with the health assistant.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranavthakur-code/get-health-help/internal/model/chat"
	"github.com/pranavthakur-code/get-health-help/internal/render"
	chatservice "github.com/pranavthakur-code/get-health-help/internal/service/chat"
)

const eventBuffer = 32

// sessionEventMsg carries a session notification into the update loop.
type sessionEventMsg chatservice.Event

// Model is the bubbletea model of the chat screen.
type Model struct {
	session     *chatservice.Session
	events      chan chatservice.Event
	unsubscribe func()
	renderOpts  render.Options
	now         func() time.Time

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	messages []chat.Message
	rendered map[string]string
	pending  bool
	ready    bool
	closed   bool

	width  int
	height int
}

// NewModel attaches a chat screen to session. Close must be called when the
// program ends; it disposes the session.
func NewModel(session *chatservice.Session, opts render.Options) *Model {
	in := textinput.New()
	in.Placeholder = "Describe your symptoms..."
	in.CharLimit = 1000
	in.Prompt = "› "
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = typingStyle

	m := &Model{
		session:    session,
		events:     make(chan chatservice.Event, eventBuffer),
		renderOpts: opts,
		now:        time.Now,
		input:      in,
		spinner:    s,
		rendered:   make(map[string]string),
	}
	// A full buffer drops the event; apply resyncs from the session, so the
	// next event that gets through restores the screen.
	snap, unsubscribe := session.SubscribeWithSnapshot(func(ev chatservice.Event) {
		select {
		case m.events <- ev:
		default:
		}
	})
	m.unsubscribe = unsubscribe
	m.messages = snap.Messages
	m.pending = snap.Pending
	if m.pending {
		m.input.Blur()
	}
	return m
}

// waitForEvent blocks until the session reports something.
func waitForEvent(events <-chan chatservice.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return sessionEventMsg(ev)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Close()
			return m, tea.Quit

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "/quit" || text == "/exit" {
				m.Close()
				return m, tea.Quit
			}
			if !m.pending && m.session.Submit(text) {
				m.input.Reset()
			}
			return m, nil
		}

	case sessionEventMsg:
		cmds = append(cmds, m.apply(chatservice.Event(msg)), waitForEvent(m.events))

	case spinner.TickMsg:
		if m.pending {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.pending {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// apply reads the current state from the session rather than trusting the
// event alone, so events dropped on a full buffer are recovered.
func (m *Model) apply(ev chatservice.Event) tea.Cmd {
	if ev.Type == chatservice.EventAppended {
		m.messages = m.session.Messages()
		m.refresh()
		m.viewport.GotoBottom()
	}
	return m.syncPending()
}

func (m *Model) syncPending() tea.Cmd {
	pending := m.session.IsPending()
	if pending == m.pending {
		return nil
	}
	m.pending = pending
	if pending {
		m.input.Blur()
		return m.spinner.Tick
	}
	return m.input.Focus()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	headerHeight := 3
	inputHeight := 3
	statusHeight := 2
	vpHeight := height - headerHeight - inputHeight - statusHeight
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 6

	// Cached renders depend on the wrap width.
	m.rendered = make(map[string]string)
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}

	bubbleWidth := m.viewport.Width - 4
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var content strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}
		stamp := timeStyle.Render(render.Clock(msg.CreatedAt) + " · " + render.Relative(msg.CreatedAt, m.now()))

		if msg.Role == chat.RoleUser {
			content.WriteString(userLabelStyle.Render("● "+msg.Role.DisplayName()) + "  " + stamp + "\n")
			content.WriteString(userBubbleStyle.Width(bubbleWidth).Render(msg.Text))
		} else {
			content.WriteString(assistantLabelStyle.Render("✚ "+msg.Role.DisplayName()) + "  " + stamp + "\n")
			content.WriteString(assistantBubbleStyle.Width(bubbleWidth).Render(m.renderBody(msg, bubbleWidth-2)))
		}
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
}

func (m *Model) renderBody(msg chat.Message, width int) string {
	if out, ok := m.rendered[msg.ID]; ok {
		return out
	}
	body := render.Body(msg)
	out, err := render.Markdown(body, m.renderOpts.WithWidth(width))
	if err != nil {
		out = body
	}
	out = strings.Trim(out, "\n")
	m.rendered[msg.ID] = out
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return hintStyle.Render("  Initializing...")
	}

	header := headerStyle.Width(m.width - 2).Render(
		titleStyle.Render("AI Health Assistant") + "  " +
			hintStyle.Render("General guidance only, not a substitute for professional medical advice"))

	status := " "
	if m.pending {
		status = m.spinner.View() + typingStyle.Render(" Health Assistant is typing...")
	}

	input := inputPanelStyle.Width(m.width - 2).Render(m.input.View())
	help := hintStyle.Render("enter send · esc quit")

	return strings.Join([]string{header, m.viewport.View(), status, input, help}, "\n")
}

// Close detaches from the session and disposes it. Safe to call twice.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.unsubscribe()
	m.session.Dispose()
}

// Run starts the full-screen chat and blocks until the user quits.
func Run(session *chatservice.Session, opts render.Options) error {
	m := NewModel(session, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
