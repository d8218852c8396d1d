package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"newslens/internal/clustering"
	"newslens/internal/config"
	"newslens/internal/logger"
)

// NewClusterCmd creates the cluster command.
func NewClusterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster",
		Short: "Group documents covering the same story",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			docs, err := loadDocuments(now)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger.Get().Info().Str("run_id", runID).Int("documents", len(docs)).Msg("clustering corpus")

			cfg := config.Get().Engine.Clustering
			clusterer := clustering.NewSimilarityClusterer()
			clusterer.SimilarityThreshold = cfg.SimilarityThreshold
			clusterer.CategoryThreshold = cfg.CategoryThreshold
			clusterer.MaxTerms = cfg.MaxTerms

			clusters := clusterer.Cluster(docs)
			if len(clusters) == 0 {
				fmt.Println("No documents to cluster.")
				return nil
			}

			for _, c := range clusters {
				fmt.Printf("## %s (%d members)\n", c.ID, c.Size())
				fmt.Printf("Representative: [%d] %s\n", c.Representative.ID, c.Representative.Title)
				for _, d := range c.Documents {
					fmt.Printf("- [%d] %s (%s)\n", d.ID, d.Title, d.Category)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
