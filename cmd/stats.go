package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
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

		ctx := context.Background()
		prog, err := progress.NewStore(ctx, progress.NewRepo(st.ProgressRepo()))
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		snap := prog.Snapshot()

		fmt.Printf("Streak: %d day(s)    Badges: %d/%d    Questions seen: %d\n\n",
			snap.Streak, len(snap.Badges), len(badge.Catalog()), len(snap.QuestionBank))

		fmt.Println("Accuracy by Topic")
		fmt.Println(strings.Repeat("─", 56))
		for _, topic := range catalog.AllTopics() {
			score := snap.Scores[topic]
			if score.TotalAttempted == 0 {
				fmt.Printf("%-36s  %s\n", topic, "no attempts")
				continue
			}
			pct := 100 * score.TotalCorrect / score.TotalAttempted
			fmt.Printf("%-36s  %3d%%  (%d/%d)\n",
				topic, pct, score.TotalCorrect, score.TotalAttempted)
		}

		recent, err := st.EventRepo().RecentQuizzes(ctx, 10)
		if err != nil {
			return fmt.Errorf("query quiz history: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Quizzes")
		fmt.Println(strings.Repeat("─", 56))
		for _, q := range recent {
			fmt.Printf("%-16s  %-24s  %-8s  %d/%d\n",
				q.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(q.Topic, 24),
				q.Difficulty,
				q.Score,
				q.TotalQuestions,
			)
		}
		return nil
	},
}
