// Package chat is the coaching conversation screen. Each visit opens a new
// session; turns are persisted by the coach service, so history survives
// restarts even though the screen itself starts blank.
package chat

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	"github.com/VoidLight00/lemon-protocol/internal/ui/components"
	"github.com/VoidLight00/lemon-protocol/internal/ui/layout"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

type replyMsg struct {
	Text string
	Err  error
}

type turn struct {
	role    string
	content string
}

// ChatScreen holds one coaching conversation.
type ChatScreen struct {
	svc       *coach.Service
	sessionID string
	input     components.TextInput
	turns     []turn
	waiting   bool
	errMsg    string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New opens a fresh coaching session.
func New(svc *coach.Service) *ChatScreen {
	return &ChatScreen{
		svc:       svc,
		sessionID: uuid.NewString(),
		input:     components.NewTextInput("What's on your mind?", false, 500),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Coach"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.turns = append(s.turns, turn{role: "coach", content: msg.Text})
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			text := strings.TrimSpace(s.input.Value())
			if text == "" {
				return s, nil
			}
			s.turns = append(s.turns, turn{role: "you", content: text})
			s.input = components.NewTextInput("What's on your mind?", false, 500)
			s.waiting = true
			s.errMsg = ""

			svc, sessionID := s.svc, s.sessionID
			return s, tea.Batch(s.input.Init(), func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
				defer cancel()
				reply, err := svc.Reply(ctx, sessionID, text)
				return replyMsg{Text: reply, Err: err}
			})
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	youStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	coachStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)

	var b strings.Builder
	if len(s.turns) == 0 {
		b.WriteString(theme.Hint.Render("Your coach is here. Vent, ask, or just check in."))
		b.WriteString("\n")
	}
	for _, t := range s.turns {
		if t.role == "you" {
			b.WriteString(youStyle.Render("You"))
		} else {
			b.WriteString(coachStyle.Render("Coach"))
		}
		b.WriteString("\n" + body.Render(t.content) + "\n\n")
	}

	if s.waiting {
		b.WriteString(theme.Hint.Render("Coach is typing...") + "\n\n")
	}
	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n\n")
	}

	transcript := b.String()

	// Keep the newest lines visible in the space above the input.
	inputView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(s.input.View())

	avail := height - lipgloss.Height(inputView) - 1
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(strings.TrimRight(transcript, "\n"), "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	transcript = strings.Join(lines, "\n")

	content := transcript + "\n" + inputView

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Bottom).
		Render(content)
}
