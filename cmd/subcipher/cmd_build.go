// Command subcipher - build-model: corpus → persisted reference model.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
	"github.com/vdlabac/subcipher/corpus"
)

var (
	buildCorpusPath string // local corpus file (raw text)
	buildFetch      bool   // fetch the corpus from Wikisource instead
	buildFetchPage  string // Wikisource page when fetching
	buildOutPath    string // output model JSON
	buildTopN       int    // how many top bigrams to print
)

var buildCmd = &cobra.Command{
	Use:   "build-model",
	Short: "Build a smoothed bigram reference model from a corpus",
	Long: `Reads a raw-text corpus (or fetches one from the Czech Wikisource),
normalizes it into the 27-symbol alphabet, builds the additively smoothed
bigram matrix and writes the model record {matrix, alphabet, source_length}
as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			raw string
			err error
		)
		switch {
		case buildFetch:
			slog.Info("fetching corpus", "page", buildFetchPage)
			client := &http.Client{Timeout: 60 * time.Second}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			raw, err = corpus.Fetch(ctx, client, "", buildFetchPage)
			if err != nil {
				return err
			}
		case buildCorpusPath != "":
			var data []byte
			data, err = os.ReadFile(buildCorpusPath)
			if err != nil {
				return err
			}
			raw = string(data)
		default:
			return fmt.Errorf("either --corpus or --fetch is required")
		}

		normalized := cipher.Normalize(raw)
		slog.Info("corpus normalized", "raw_len", len(raw), "normalized_len", len(normalized))

		model, err := bigram.Build(normalized, cfg.Pseudocount)
		if err != nil {
			return err
		}
		if err = model.SaveFile(buildOutPath); err != nil {
			return err
		}
		slog.Info("model written", "path", buildOutPath, "source_len", model.SourceLen())

		if buildTopN > 0 {
			fmt.Printf("top %d bigrams:\n", buildTopN)
			for _, bp := range model.TopBigrams(buildTopN) {
				fmt.Printf("  %c%c: %.4f\n", bp.First, bp.Second, bp.Prob)
			}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildCorpusPath, "corpus", "", "path to a raw-text corpus file")
	buildCmd.Flags().BoolVar(&buildFetch, "fetch", false, "fetch the corpus from the Czech Wikisource")
	buildCmd.Flags().StringVar(&buildFetchPage, "page", corpus.DefaultPage, "Wikisource page to fetch")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "model.json", "output model file")
	buildCmd.Flags().IntVar(&buildTopN, "top", 10, "print the N most probable bigrams (0 to disable)")
	buildCmd.Flags().Float64Var(&cfg.Pseudocount, "pseudocount", cfg.Pseudocount, "additive smoothing constant")

	rootCmd.AddCommand(buildCmd)
}
