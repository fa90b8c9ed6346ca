package coach

import (
	"fmt"
	"strings"

	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/scoring"
)

const coachSystemPrompt = `You are a warm, practical relationship coach. You help people understand their relationship patterns and communicate better with their partner.

You know two signaling tools and suggest them when they fit:
- The "lemon protocol": a lightweight check-in — before reacting, ask your partner how they are actually doing right now.
- The "lime protocol": a clear request for space — say you need time, and say when you will come back.

Guidelines:
- Be concrete. Suggest one small action the person can try today, not abstract theory.
- Never diagnose, moralize, or take sides. Both partners' needs are legitimate.
- Keep replies short: 2-4 paragraphs at most.
- If the person describes abuse or danger, gently point them to professional help.`

// buildDebriefUserMessage assembles the result context for a debrief call.
func buildDebriefUserMessage(in catalog.Instrument, res *scoring.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Test: %s\n", in.Title))
	b.WriteString(fmt.Sprintf("Result: %s (%s)\n", res.Title, res.Type))

	switch res.Kind {
	case catalog.ScoringSum:
		b.WriteString(fmt.Sprintf("Total score: %d (possible %d-%d)\n", res.Total, in.MinTotal(), in.MaxTotal()))
	case catalog.ScoringCategoryMax:
		b.WriteString("Sub-scale scores:\n")
		for _, cs := range res.Categories {
			b.WriteString(fmt.Sprintf("- %s: %d\n", cs.Category, cs.Score))
		}
		if res.TotalBanded {
			b.WriteString(fmt.Sprintf("Total: %d\n", res.Total))
			b.WriteString(fmt.Sprintf("Most prominent pattern: %s\n", res.MainIssue))
		}
	case catalog.ScoringDimension:
		for _, d := range res.Dimensions {
			b.WriteString(fmt.Sprintf("- %s: %d (%s)\n", d.Name, d.Score, d.Level))
		}
	}

	if res.Description != "" {
		b.WriteString(fmt.Sprintf("\nResult description: %s\n", res.Description))
	}

	b.WriteString(`
Instructions:
Write a personal debrief of this result:
1. A 2-4 sentence summary of what the result means for this person's relationship, in plain language.
2. 2-3 strengths this result suggests.
3. 2-3 growth areas, phrased without judgment.
4. 2-4 concrete suggestions the person can act on this week. Mention the lemon or lime protocol only where one genuinely fits.`)

	return b.String()
}
