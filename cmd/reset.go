package cmd

import (
	"context"
	"fmt"

	"github.com/VoidLight00/lemon-protocol/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved results and conversations",
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

		ctx := context.Background()

		nResults, err := s.ResultRepo().Clear(ctx)
		if err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		nTurns, err := s.ChatRepo().Clear(ctx)
		if err != nil {
			return fmt.Errorf("clear conversations: %w", err)
		}

		fmt.Printf("Deleted %d result(s) and %d chat turn(s).\n", nResults, nTurns)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete")
}
