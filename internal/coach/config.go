package coach

// HistoryLimit caps how many prior turns are replayed into a reply prompt.
const HistoryLimit = 40

// Config holds coaching generation settings.
type Config struct {
	ReplyMaxTokens   int
	DebriefMaxTokens int
	Temperature      float64
}

// DefaultConfig returns sensible defaults for coaching conversations.
func DefaultConfig() Config {
	return Config{
		ReplyMaxTokens:   1024,
		DebriefMaxTokens: 512,
		Temperature:      0.7,
	}
}
