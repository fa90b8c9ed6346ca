package cmd

import (
	"fmt"
	"os"

	"github.com/VoidLight00/lemon-protocol/internal/app"
	"github.com/VoidLight00/lemon-protocol/internal/catalog"
	"github.com/VoidLight00/lemon-protocol/internal/coach"
	"github.com/VoidLight00/lemon-protocol/internal/llm"
	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Catalog:    catalog.Default(),
		ResultRepo: st.ResultRepo(),
	}

	// Results always land locally; the remote sink is layered on top when
	// configured so a dead server never loses a result.
	local := results.NewLocalSink(st.ResultRepo())
	opts.Sink = local
	if rc := results.RemoteConfigFromEnv(); rc.Enabled() {
		opts.Sink = results.WithFallback(results.NewRemoteSink(rc), local)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coaching features will be unavailable.")
	} else {
		opts.Coach = coach.NewService(provider, st.ChatRepo(), coach.DefaultConfig())
	}

	return app.Run(opts)
}
