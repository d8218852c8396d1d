package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/logger"
	"newslens/internal/query"
)

// NewQueryCmd creates the query command.
func NewQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Translate a free-text question into filters and run it against the corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			now := time.Now()

			docs, err := loadDocuments(now)
			if err != nil {
				return err
			}

			logger.Get().Info().Str("query", text).Int("documents", len(docs)).Msg("interpreting query")

			parser := query.NewParser()
			parsed := parser.Parse(text, now)
			results := query.ApplyFilters(docs, parsed)

			fmt.Println(query.GenerateResponse(parsed, results, now))
			for _, d := range results {
				fmt.Printf("- [%d] %s (%s)\n", d.ID, d.Title, d.Category)
			}

			ambiguity := parser.DetectAmbiguity(text, docs)
			if ambiguity.IsAmbiguous {
				fmt.Printf("\nThis query is ambiguous (clarity %d/10).\n", ambiguity.ClarityScore)
				for _, opt := range ambiguity.Options {
					fmt.Printf("- Did you mean %s? (%s)\n", opt.Label, opt.Description)
				}
				for _, s := range ambiguity.Suggestions {
					fmt.Printf("- Suggestion: %s\n", s)
				}
			}
			return nil
		},
	}
}
