package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/core"
	"newslens/internal/keywords"
	"newslens/internal/logger"
	"newslens/internal/topics"
)

// NewTopicsCmd creates the topics command.
func NewTopicsCmd() *cobra.Command {
	var byCategory bool
	var emerging bool

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Discover named topics across the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			docs, err := loadDocuments(now)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Get().Info().Str("run_id", runID).Int("documents", len(docs)).Msg("discovering topics")

			cfg := config.Get().Engine
			analyzer := topics.NewAnalyzer(keywords.NewExtractor(keywords.WithMinTermLength(cfg.Keywords.MinTermLength)))

			switch {
			case byCategory:
				grouped := analyzer.ByCategory(docs, cfg.Topics.CategoryMinArticles)
				if len(grouped) == 0 {
					fmt.Println("No topics found.")
					return nil
				}
				for category, list := range grouped {
					fmt.Printf("## %s\n", category)
					printTopics(list)
					fmt.Println()
				}
			case emerging:
				printTopics(analyzer.Emerging(docs))
			default:
				printTopics(analyzer.Discover(docs, cfg.Topics.MinArticles))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "discover topics independently per category")
	cmd.Flags().BoolVar(&emerging, "emerging", false, "enrich topics with trend direction and velocity")

	return cmd
}

// printTopics renders a topic list as markdown bullets.
func printTopics(list []core.Topic) {
	if len(list) == 0 {
		fmt.Println("No topics found.")
		return
	}
	for _, t := range list {
		line := fmt.Sprintf("- **%s** (%d articles", t.Keyword, t.Count)
		if t.Velocity != 0 || t.Trend != core.TrendStable {
			line += fmt.Sprintf(", %s %+.1f%%", t.Trend, t.Velocity)
		}
		line += ")"
		if len(t.RelatedKeywords) > 0 {
			line += "; related: " + strings.Join(t.RelatedKeywords, ", ")
		}
		fmt.Println(line)
	}
}
