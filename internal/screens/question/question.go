// Package question runs one instrument attempt: it walks the user through
// every item on its Likert scale, records answers, and hands the completed
// attempt to the scoring engine.
package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/attempt"
	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/router"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	resultscreen "github.com/VoidLight00/lemon-protocol/internal/screens/result"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
	"github.com/VoidLight00/lemon-protocol/internal/ui/components"
	"github.com/VoidLight00/lemon-protocol/internal/ui/layout"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

// QuestionScreen steps through an instrument's questions one at a time.
type QuestionScreen struct {
	att    *attempt.Attempt
	sink   results.Sink
	coach  *coach.Service
	idx    int
	sel    components.LikertSelect
	errMsg string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New starts a fresh attempt at the given instrument.
func New(in catalog.Instrument, sink results.Sink, coachSvc *coach.Service) *QuestionScreen {
	s := &QuestionScreen{
		att:   attempt.New(in),
		sink:  sink,
		coach: coachSvc,
	}
	s.sel = s.selectorFor(0)
	return s
}

func (s *QuestionScreen) selectorFor(idx int) components.LikertSelect {
	q := s.att.Instrument.Questions[idx]
	opts := make([]components.LikertOption, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, components.LikertOption{Value: o.Value, Text: o.Text})
	}
	sel := components.NewLikertSelect(q.Text, opts)
	if prev, ok := s.att.Answer(q.ID); ok {
		sel.Preselect(prev.Value)
	}
	return sel
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.att.Instrument.Title
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.idx > 0 {
			s.idx--
			s.sel = s.selectorFor(s.idx)
		}
		return s, nil

	case "enter":
		q := s.att.Instrument.Questions[s.idx]
		if err := s.att.RecordAnswer(q.ID, s.sel.Value()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""

		if s.idx < len(s.att.Instrument.Questions)-1 {
			s.idx++
			s.sel = s.selectorFor(s.idx)
			return s, nil
		}
		return s.finish()
	}

	var cmd tea.Cmd
	s.sel, cmd = s.sel.Update(msg)
	return s, cmd
}

// finish scores the completed attempt and replaces this screen with the
// result view. The attempt is complete here by construction: the last
// question was just answered and backward navigation never erases answers.
func (s *QuestionScreen) finish() (screen.Screen, tea.Cmd) {
	res, err := scoring.Evaluate(s.att.Instrument, s.att.Answers())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	next := resultscreen.New(s.att.Instrument, res, s.sink, s.coach)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuestionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	total := len(s.att.Instrument.Questions)
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.idx+1, total),
		float64(s.att.Answered())/float64(total),
		false,
		cw,
	)

	var sections []string
	sections = append(sections, progress.View())
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(s.sel.View())
	sections = append(sections, card)

	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
