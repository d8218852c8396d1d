package handlers

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/core"
	"newslens/internal/keywords"
	"newslens/internal/logger"
	"newslens/internal/sentiment"
	"newslens/internal/topics"
)

// NewTrendsCmd creates the trends command. It splits the corpus at its
// timestamp midpoint and reports topic movement between the two halves.
func NewTrendsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Report topic movement between the recent and older halves of the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			cutoff := time.Time{}
			if days > 0 {
				cutoff = now.AddDate(0, 0, -days)
			}
			docs, err := loadDocumentsSince(now, cutoff)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No documents to analyze.")
				return nil
			}

			logger.Get().Info().Int("documents", len(docs)).Msg("analyzing topic trends")

			cfg := config.Get().Engine
			analyzer := topics.NewAnalyzer(keywords.NewExtractor(keywords.WithMinTermLength(cfg.Keywords.MinTermLength)))

			recent, older := splitByRecency(docs)
			report := analyzer.BuildTrendReport(recent, older, now)
			fmt.Println(report.Format())

			fmt.Println(sentiment.Summarize(docs).Format())
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "limit the analysis to documents published in the last N days")

	return cmd
}

// splitByRecency orders the corpus newest-first and splits it at the floor
// midpoint; on odd counts the extra document falls into the older half.
func splitByRecency(docs []core.Document) (recent, older []core.Document) {
	sorted := make([]core.Document, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}
