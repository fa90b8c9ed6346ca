// Package result displays a resolved instrument outcome: the matched band,
// raw scores, and an optional AI debrief. It also persists the result as a
// side effect of being shown.
package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/router"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	chatscreen "github.com/VoidLight00/lemon-protocol/internal/screens/chat"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
	"github.com/VoidLight00/lemon-protocol/internal/ui/components"
	"github.com/VoidLight00/lemon-protocol/internal/ui/layout"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

type savedMsg struct {
	Err error
}

type debriefMsg struct {
	Debrief *coach.Debrief
	Err     error
}

// ResultScreen shows a resolved result and kicks off persistence plus the
// coach debrief in the background.
type ResultScreen struct {
	in    catalog.Instrument
	res   *scoring.Result
	sink  results.Sink
	coach *coach.Service

	saved    bool
	saveErr  error
	debrief  *coach.Debrief
	debriefE error
	waiting  bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. sink and coachSvc may be nil; the screen then
// skips persistence or the debrief respectively.
func New(in catalog.Instrument, res *scoring.Result, sink results.Sink, coachSvc *coach.Service) *ResultScreen {
	return &ResultScreen{
		in:    in,
		res:   res,
		sink:  sink,
		coach: coachSvc,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	var cmds []tea.Cmd

	if s.sink != nil {
		sink := s.sink
		rec := results.Normalize(s.in, s.res)
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return savedMsg{Err: sink.Save(ctx, rec)}
		})
	}

	if s.coach != nil {
		s.waiting = true
		svc := s.coach
		in, res := s.in, s.res
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			d, err := svc.Debrief(ctx, in, res)
			return debriefMsg{Debrief: d, Err: err}
		})
	}

	return tea.Batch(cmds...)
}

func (s *ResultScreen) Title() string {
	return s.in.Title
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
	if s.coach != nil {
		hints = append([]layout.KeyHint{{Key: "C", Description: "Talk it over"}}, hints...)
	}
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saved = msg.Err == nil
		s.saveErr = msg.Err
		return s, nil

	case debriefMsg:
		s.waiting = false
		s.debrief = msg.Debrief
		s.debriefE = msg.Err
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "c" && s.coach != nil {
			svc := s.coach
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(svc)}
			}
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	headline := theme.Title.Render(fmt.Sprintf("%s  %s", s.res.Emoji, s.res.Title))
	if s.res.Description != "" {
		headline += "\n\n" + lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw-8).
			Render(s.res.Description)
	}
	sections = append(sections, components.Card(headline, cw))

	if scoreView := s.renderScores(cw); scoreView != "" {
		sections = append(sections, scoreView)
	}

	if len(s.res.Tips) > 0 {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Things to try"))
		for _, tip := range s.res.Tips {
			b.WriteString("\n  • " + tip)
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw).
			Render(b.String()))
	}

	if dv := s.renderDebrief(cw); dv != "" {
		sections = append(sections, dv)
	}

	if s.saveErr != nil {
		sections = append(sections, theme.Hint.Render("Saved locally; will sync when the server is reachable."))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *ResultScreen) renderScores(cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	switch s.res.Kind {
	case catalog.ScoringSum:
		b.WriteString(label.Render("Score: "))
		b.WriteString(value.Render(fmt.Sprintf("%d", s.res.Total)))
		b.WriteString(label.Render(fmt.Sprintf(" (of %d–%d)", s.in.MinTotal(), s.in.MaxTotal())))

	case catalog.ScoringCategoryMax:
		if s.res.TotalBanded {
			b.WriteString(label.Render("Overall: "))
			b.WriteString(value.Render(fmt.Sprintf("%d", s.res.Total)))
			b.WriteString(label.Render("   Main issue: "))
			b.WriteString(value.Render(s.res.MainIssue))
			b.WriteString("\n")
		}
		for i, cs := range s.res.Categories {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(label.Render(cs.Category + ": "))
			b.WriteString(value.Render(fmt.Sprintf("%d", cs.Score)))
		}

	case catalog.ScoringDimension:
		for i, d := range s.res.Dimensions {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(label.Render(d.Name + ": "))
			b.WriteString(value.Render(fmt.Sprintf("%d (%s)", d.Score, d.Level)))
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *ResultScreen) renderDebrief(cw int) string {
	if s.coach == nil {
		return ""
	}
	if s.waiting {
		return theme.Hint.Render("The coach is reading your result...")
	}
	if s.debriefE != nil {
		return theme.Hint.Render("Debrief unavailable: " + s.debriefE.Error())
	}
	if s.debrief == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Coach's take"))
	b.WriteString("\n" + s.debrief.Summary)
	if len(s.debrief.Strengths) > 0 {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("Strengths"))
		for _, it := range s.debrief.Strengths {
			b.WriteString("\n  • " + it)
		}
	}
	if len(s.debrief.GrowthAreas) > 0 {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("Growth areas"))
		for _, it := range s.debrief.GrowthAreas {
			b.WriteString("\n  • " + it)
		}
	}
	if len(s.debrief.Suggestions) > 0 {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render("Suggestions"))
		for _, it := range s.debrief.Suggestions {
			b.WriteString("\n  • " + it)
		}
	}

	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw).
		Render(b.String())
}
