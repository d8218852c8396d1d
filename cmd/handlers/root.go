package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/core"
	"newslens/internal/logger"
	"newslens/internal/sources"
	"newslens/internal/store"
)

var (
	cfgFile   string
	inputFile string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "newslens",
		Short: "newslens derives keywords, story clusters, and topic trends from a news corpus.",
		Long: `newslens is a content analytics engine for short news documents.
It extracts salient keywords, groups near-duplicate coverage into story
clusters, names topics and tracks their momentum over time, and translates
free-text questions into structured filters with an ambiguity report.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.newslens.yaml)")
	rootCmd.PersistentFlags().StringVar(&inputFile, "input", "", "JSON corpus file (default is the document store, falling back to the sample corpus)")

	rootCmd.AddCommand(NewTopicsCmd())
	rootCmd.AddCommand(NewClusterCmd())
	rootCmd.AddCommand(NewTrendsCmd())
	rootCmd.AddCommand(NewQueryCmd())
	rootCmd.AddCommand(NewImportCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)
}

// loadDocuments resolves the corpus for an analysis command: the --input
// JSON file when given, otherwise the document store, otherwise the built-in
// sample corpus.
func loadDocuments(now time.Time) ([]core.Document, error) {
	return loadDocumentsSince(now, time.Time{})
}

// loadDocumentsSince resolves the corpus restricted to documents published at
// or after cutoff. A zero cutoff keeps everything.
func loadDocumentsSince(now, cutoff time.Time) ([]core.Document, error) {
	if inputFile != "" {
		docs, err := sources.LoadJSON(inputFile)
		if err != nil {
			return nil, err
		}
		return filterSince(docs, cutoff), nil
	}

	path := config.Get().Store.Path
	if _, err := os.Stat(path); err == nil {
		s, err := store.NewStore(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		docs, err := listStored(s, cutoff)
		if err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			return docs, nil
		}
	}

	logger.Debug("no stored corpus found, using the sample corpus")
	return filterSince(sources.SampleCorpus(now), cutoff), nil
}

func listStored(s *store.Store, cutoff time.Time) ([]core.Document, error) {
	if cutoff.IsZero() {
		return s.ListDocuments()
	}
	return s.ListDocumentsSince(cutoff)
}

// filterSince keeps documents published at or after cutoff. Undated documents
// are dropped once a cutoff is in play, matching the store query.
func filterSince(docs []core.Document, cutoff time.Time) []core.Document {
	if cutoff.IsZero() {
		return docs
	}
	var kept []core.Document
	for _, d := range docs {
		if !d.PublishedAt.IsZero() && !d.PublishedAt.Before(cutoff) {
			kept = append(kept, d)
		}
	}
	return kept
}
