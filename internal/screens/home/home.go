// Package home is the application's landing screen: a short status card and
// the main menu.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/router"
	"github.com/VoidLight00/lemon-protocol/internal/screen"
	chatscreen "github.com/VoidLight00/lemon-protocol/internal/screens/chat"
	"github.com/VoidLight00/lemon-protocol/internal/screens/history"
	"github.com/VoidLight00/lemon-protocol/internal/screens/placeholder"
	"github.com/VoidLight00/lemon-protocol/internal/screens/tests"
	"github.com/VoidLight00/lemon-protocol/internal/store"
	"github.com/VoidLight00/lemon-protocol/internal/ui/components"
	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu        components.Menu
	menuLabels  []string
	testCount   int
	resultCount int
	coachReady  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. coachSvc is nil when no LLM provider is
// configured; the chat entry then degrades to a placeholder.
func New(cat *catalog.Catalog, resultRepo store.ResultRepo, coachSvc *coach.Service, sink results.Sink) *HomeScreen {
	var resultCount int
	if resultRepo != nil {
		if rows, err := resultRepo.List(context.Background(), store.ResultQueryOpts{}); err == nil {
			resultCount = len(rows)
		}
	}

	menuLabels := []string{"TAKE A TEST", "TALK TO COACH", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tests.New(cat, sink, coachSvc)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if coachSvc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Coach")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(coachSvc)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if resultRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(resultRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		testCount:   cat.Len(),
		resultCount: resultCount,
		coachReady:  coachSvc != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := theme.Title.Render("🍋 Lemon Protocol") + "\n" +
		theme.Subtitle.Render("relationship check-ins, decoded")
	sections = append(sections, components.Card(title, cw))

	sections = append(sections, h.renderStats(cw))

	var menu strings.Builder
	for i, label := range h.menuLabels {
		menu.WriteString(components.MenuButton(label, i == h.menu.Selected, cw))
		if i < len(h.menuLabels)-1 {
			menu.WriteString("\n")
		}
	}
	sections = append(sections, menu.String())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	coachStr := "offline"
	if h.coachReady {
		coachStr = "ready"
	}

	stats := fmt.Sprintf("%s %s   %s %s   %s %s",
		value.Render(fmt.Sprintf("%d", h.testCount)), label.Render("tests"),
		value.Render(fmt.Sprintf("%d", h.resultCount)), label.Render("results"),
		value.Render(coachStr), label.Render("coach"))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
