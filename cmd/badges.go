package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and which ones you have earned",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		prog, err := progress.NewStore(context.Background(), progress.NewRepo(st.ProgressRepo()))
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		snap := prog.Snapshot()

		earned := 0
		fmt.Println("Badges")
		fmt.Println(strings.Repeat("─", 72))
		for _, b := range badge.Catalog() {
			mark := " "
			if snap.HasBadge(b.ID) {
				mark = "✓"
				earned++
			}
			fmt.Printf("[%s] %-20s  %s\n", mark, b.Name, b.Description)
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%d of %d earned\n", earned, len(badge.Catalog()))
		return nil
	},
}
