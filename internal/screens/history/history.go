// Package history lists previously saved results, newest first, with
// expandable per-result detail.
package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/router"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	"github.com/VoidLight00/lemon-protocol/internal/store"
	"github.com/VoidLight00/lemon-protocol/internal/ui/layout"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen displays past test results.
type HistoryScreen struct {
	repo     store.ResultRepo
	results  []store.ResultRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.repo.List(context.Background(), store.ResultQueryOpts{Limit: 50})
		return historyLoadedMsg{Results: rows, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take a test!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.results {
		dateStr := rec.CreatedAt.Local().Format("Jan 02, 2006")

		syncStr := ""
		if !rec.Synced {
			syncStr = "  ⏳ local only"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s %s — %s%s",
			prefix, dateStr, rec.ResultEmoji, rec.TestTitle, rec.ResultTitle, syncStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range resultDetails(rec) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// resultDetails flattens a record's optional score fields into display lines.
func resultDetails(rec store.ResultRecord) []string {
	var details []string

	if rec.HasTotal {
		details = append(details, fmt.Sprintf("Total: %d", rec.TotalScore))
	}
	if rec.MainIssue != "" {
		details = append(details, "Main issue: "+rec.MainIssue)
	}
	details = append(details, scoreLines(rec.CategoryScores)...)
	details = append(details, scoreLines(rec.DimensionScores)...)

	for _, tip := range rec.Tips {
		details = append(details, "• "+tip)
	}
	if len(details) == 0 {
		details = append(details, "Result: "+rec.ResultType)
	}
	return details
}

func scoreLines(scores map[string]int) []string {
	if len(scores) == 0 {
		return nil
	}
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", k, scores[k]))
	}
	return lines
}
