package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/VoidLight00/lemon-protocol/internal/results"
	"github.com/VoidLight00/lemon-protocol/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect and manage saved test results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		testID, _ := cmd.Flags().GetString("test")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rows, err := s.ResultRepo().List(ctx, store.ResultQueryOpts{
			TestID: testID,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No results saved yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-28s  %s\n",
			"ID", "Date", "Test", "Result", "Synced")
		fmt.Println(strings.Repeat("─", 92))

		for _, r := range rows {
			synced := "✓"
			if !r.Synced {
				synced = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-24s  %-28s  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.TestTitle, 24),
				truncate(r.ResultTitle, 28),
				synced,
			)
		}
		return nil
	},
}

var resultsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push locally retained results to the remote service",
	RunE: func(cmd *cobra.Command, args []string) error {
		rc := results.RemoteConfigFromEnv()
		if !rc.Enabled() {
			return fmt.Errorf("no remote configured: set LEMON_RESULTS_URL")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		n, err := results.Resync(ctx, s.ResultRepo(), results.NewRemoteSink(rc))
		if n > 0 {
			fmt.Printf("Delivered %d result(s).\n", n)
		}
		if err != nil {
			return fmt.Errorf("sync stopped: %w", err)
		}
		if n == 0 {
			fmt.Println("Everything already synced.")
		}
		return nil
	},
}

var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved results",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.ResultRepo().Clear(context.Background())
		if err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		fmt.Printf("Deleted %d result(s).\n", n)
		return nil
	},
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsListCmd.Flags().StringP("test", "t", "", "Filter by test ID (e.g. attachment-style)")
	resultsClearCmd.Flags().Bool("force", false, "Actually delete")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsSyncCmd)
	resultsCmd.AddCommand(resultsClearCmd)
}
