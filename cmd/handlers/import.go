package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/logger"
	"newslens/internal/sources"
	"newslens/internal/store"
)

// NewImportCmd creates the import command, which loads a JSON corpus into
// the document store.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <corpus.json>",
		Short: "Import a JSON corpus into the document store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := sources.LoadJSON(args[0])
			if err != nil {
				return err
			}

			s, err := store.NewStore(config.Get().Store.Path)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.SaveDocuments(docs); err != nil {
				return err
			}

			total, err := s.Count()
			if err != nil {
				return err
			}

			logger.Get().Info().Int("imported", len(docs)).Int("total", total).Msg("corpus imported")
			fmt.Printf("Imported %d documents (%d total in store).\n", len(docs), total)
			return nil
		},
	}
}
