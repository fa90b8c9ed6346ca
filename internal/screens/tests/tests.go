// Package tests lists the instrument catalog and launches an attempt at the
// selected one.
package tests

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/router"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	"github.com/VoidLight00/lemon-protocol/internal/screens/question"
	"github.com/VoidLight00/lemon-protocol/internal/ui/components"
	"github.com/VoidLight00/lemon-protocol/internal/ui/layout"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

// TestsScreen lets the user pick an instrument to take.
type TestsScreen struct {
	instruments []catalog.Instrument
	sink        results.Sink
	coach       *coach.Service
	selected    int
}

var _ screen.Screen = (*TestsScreen)(nil)
var _ screen.KeyHintProvider = (*TestsScreen)(nil)

// New creates the picker over the given catalog.
func New(cat *catalog.Catalog, sink results.Sink, coachSvc *coach.Service) *TestsScreen {
	return &TestsScreen{
		instruments: cat.All(),
		sink:        sink,
		coach:       coachSvc,
	}
}

func (s *TestsScreen) Init() tea.Cmd {
	return nil
}

func (s *TestsScreen) Title() string {
	return "Tests"
}

func (s *TestsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.instruments)-1 {
			s.selected++
		}
	case "enter":
		in := s.instruments[s.selected]
		sink, coachSvc := s.sink, s.coach
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: question.New(in, sink, coachSvc)}
		}
	}

	return s, nil
}

func (s *TestsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	for i, in := range s.instruments {
		title := fmt.Sprintf("%s  %s", in.Emoji, in.Title)
		line := fmt.Sprintf("%s  %s", title,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("(%d questions)", len(in.Questions))))

		b.WriteString(components.MenuButton(line, i == s.selected, cw))
		b.WriteString("\n")

		if i == s.selected && in.Description != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Width(cw).
				Align(lipgloss.Center).
				Render(in.Description))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
