package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingoleap/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		language, _ := cmd.Flags().GetString("language")

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
		results, err := s.EventRepo().QueryQuizEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quiz events: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-12s  %-7s  %-6s  %s\n",
			"Timestamp", "Language", "Level", "Correct", "Score", "Passed")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range results {
			if language != "" && r.LanguageID != language {
				continue
			}
			passed := "no"
			if r.Passed {
				passed = "yes"
			}
			fmt.Printf("%-19s  %-10s  %-12s  %2d / %-2d  %5d%%  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.LanguageID,
				r.Level,
				r.CorrectAnswers,
				r.TotalQuestions,
				r.Score,
				passed,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	statsCmd.Flags().StringP("language", "l", "", "Filter by language ID (e.g. es, fr, ja)")
}
