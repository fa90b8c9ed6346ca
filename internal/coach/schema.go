package coach

import "github.com/VoidLight00/lemon-protocol/internal/llm"

// DebriefSchema defines the JSON schema for result debrief generation.
var DebriefSchema = &llm.Schema{
	Name:        "result-debrief",
	Description: "A personal walkthrough of one diagnostic result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentence plain-language reading of the result",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 strengths the result suggests",
			},
			"growth_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 non-judgmental growth areas",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete actions for this week",
			},
		},
		"required":             []any{"summary", "strengths", "growth_areas", "suggestions"},
		"additionalProperties": false,
	},
}
