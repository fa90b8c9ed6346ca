package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/VoidLight00/lemon-protocol/internal/ui/theme"
)

// LikertOption is one selectable response on a Likert scale.
type LikertOption struct {
	Value int
	Text  string
}

// LikertSelect picks one option from an agreement scale. There is no right
// answer; the chosen option simply carries a score value.
type LikertSelect struct {
	Question string
	Options  []LikertOption
	Selected int
}

// NewLikertSelect creates a selector with the first option highlighted.
func NewLikertSelect(question string, options []LikertOption) LikertSelect {
	return LikertSelect{
		Question: question,
		Options:  options,
	}
}

// Preselect highlights the option with the given value, if present.
// Used when the user navigates back to an already answered question.
func (l *LikertSelect) Preselect(value int) {
	for i, o := range l.Options {
		if o.Value == value {
			l.Selected = i
			return
		}
	}
}

// Init returns nil.
func (l LikertSelect) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (l LikertSelect) Update(msg tea.Msg) (LikertSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(kmsg.String()[0]-'0') - 1
		if idx >= 0 && idx < len(l.Options) {
			l.Selected = idx
		}
	}

	return l, nil
}

// Value returns the score value of the highlighted option.
func (l LikertSelect) Value() int {
	return l.Options[l.Selected].Value
}

// View renders the question and its options.
func (l LikertSelect) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(l.Question) + "\n\n"

	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Text)

		if i == l.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
