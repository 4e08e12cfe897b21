// Command subcipher - crack: recover the key of one ciphertext.
package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
	"github.com/vdlabac/subcipher/metropolis"
	"github.com/vdlabac/subcipher/plot"
)

var (
	crackInPath   string // input ciphertext ("-" for stdin)
	crackOutPath  string // output plaintext ("-" for stdout)
	crackKeyPath  string // optional file to write the recovered key into
	crackPlotPath string // optional HTML fitness-history chart
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover the substitution key of a ciphertext by annealing search",
	Long: `Runs the Metropolis-Hastings search against the reference bigram model
and writes the best decryption found. With --chains > 1, that many
independent chains run concurrently (seeds derived from --seed) and the
best result wins. --plot writes the fitness history as an HTML chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := bigram.LoadFile(cfg.Model)
		if err != nil {
			return err
		}

		raw, err := readInput(crackInPath)
		if err != nil {
			return err
		}
		ct, err := cipher.NewText(strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		opts := metropolis.DefaultOptions()
		opts.Iterations = cfg.Iterations
		opts.InitialTemp = cfg.Temperature
		opts.Seed = cfg.Seed
		opts.Chains = cfg.Chains

		slog.Info("cracking", "len", len(ct), "iterations", opts.Iterations,
			"temperature", opts.InitialTemp, "chains", opts.Chains)

		start := time.Now()
		res, err := metropolis.SearchParallel(cmd.Context(), ct, model, opts)
		if err != nil {
			return err
		}
		slog.Info("search finished", "elapsed", time.Since(start),
			"best_fitness", fmt.Sprintf("%.4f", res.BestFitness))

		if crackKeyPath != "" {
			if err = writeOutput(crackKeyPath, res.Key.String()); err != nil {
				return err
			}
		} else {
			slog.Info("recovered key", "key", res.Key.String())
		}
		if crackPlotPath != "" {
			line := plot.HistoryLine(res.History, "Fitness history")
			if err = plot.WriteHTML(crackPlotPath, line); err != nil {
				return err
			}
			slog.Info("history chart written", "path", crackPlotPath)
		}
		return writeOutput(crackOutPath, res.Plaintext.String())
	},
}

func init() {
	crackCmd.Flags().StringVar(&crackInPath, "in", "-", "input ciphertext file (- for stdin)")
	crackCmd.Flags().StringVar(&crackOutPath, "out", "-", "output plaintext file (- for stdout)")
	crackCmd.Flags().StringVar(&crackKeyPath, "key-out", "", "write the recovered key to this file")
	crackCmd.Flags().StringVar(&crackPlotPath, "plot", "", "write an HTML fitness-history chart to this file")
	crackCmd.Flags().StringVar(&cfg.Model, "model", cfg.Model, "reference model JSON")
	crackCmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "search iterations per chain")
	crackCmd.Flags().Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "initial temperature T0")
	crackCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "base RNG seed (0: fixed default stream)")
	crackCmd.Flags().IntVar(&cfg.Chains, "chains", cfg.Chains, "independent chains run in parallel")

	rootCmd.AddCommand(crackCmd)
}
