// Command subcipher - crack-all: bulk-crack a directory of ciphertexts.
//
// Mirrors the classic homework layout: every *_ciphertext.txt in the input
// directory produces a *_plaintext.txt and *_key.txt in the output
// directory, plus a summary.txt with per-file fitness. Files are processed
// with a bounded number of workers; each worker runs its own chains, so the
// effective parallelism is workers × chains.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
	"github.com/vdlabac/subcipher/metropolis"
)

// ciphertextSuffix selects input files and is replaced to derive output names.
const ciphertextSuffix = "_ciphertext.txt"

var (
	crackAllDir     string // input directory
	crackAllOutDir  string // output directory
	crackAllWorkers int    // concurrent files; 0 ⇒ GOMAXPROCS
)

// fileResult is one row of the bulk summary.
type fileResult struct {
	name    string
	fitness float64
	err     error
}

var crackAllCmd = &cobra.Command{
	Use:   "crack-all",
	Short: "Crack every *_ciphertext.txt file in a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := bigram.LoadFile(cfg.Model)
		if err != nil {
			return err
		}

		matches, err := filepath.Glob(filepath.Join(crackAllDir, "*"+ciphertextSuffix))
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no *%s files in %s", ciphertextSuffix, crackAllDir)
		}
		sort.Strings(matches)

		if err = os.MkdirAll(crackAllOutDir, 0o755); err != nil {
			return err
		}

		workers := crackAllWorkers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		slog.Info("bulk crack", "files", len(matches), "workers", workers, "chains", cfg.Chains)

		var (
			g, ctx  = errgroup.WithContext(cmd.Context())
			mu      sync.Mutex
			results = make([]fileResult, 0, len(matches))
		)
		g.SetLimit(workers)

		for _, path := range matches {
			path := path
			g.Go(func() error {
				if cerr := ctx.Err(); cerr != nil {
					return cerr
				}
				res := crackOneFile(ctx, path, model)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				// Per-file failures go to the summary, not to errgroup:
				// one bad file must not cancel the rest of the batch.
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return err
		}

		sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })
		return writeSummary(filepath.Join(crackAllOutDir, "summary.txt"), results)
	},
}

// crackOneFile cracks a single ciphertext file and writes its plaintext and
// key next to the summary.
func crackOneFile(ctx context.Context, path string, model *bigram.Model) fileResult {
	name := filepath.Base(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fileResult{name: name, err: err}
	}
	ct, err := cipher.NewText(strings.TrimSpace(string(raw)))
	if err != nil {
		return fileResult{name: name, err: err}
	}

	opts := metropolis.DefaultOptions()
	opts.Iterations = cfg.Iterations
	opts.InitialTemp = cfg.Temperature
	opts.Chains = cfg.Chains
	// Per-file seeds derive from the base seed and the file name so a rerun
	// of the same directory reproduces byte-identical outputs.
	opts.Seed = deriveFileSeed(cfg.Seed, name)

	start := time.Now()
	res, err := metropolis.SearchParallel(ctx, ct, model, opts)
	if err != nil {
		return fileResult{name: name, err: err}
	}
	slog.Info("file cracked", "file", name, "len", len(ct),
		"fitness", fmt.Sprintf("%.4f", res.BestFitness), "elapsed", time.Since(start))

	base := strings.TrimSuffix(name, ciphertextSuffix)
	if err = os.WriteFile(filepath.Join(crackAllOutDir, base+"_plaintext.txt"),
		[]byte(res.Plaintext.String()+"\n"), 0o644); err != nil {
		return fileResult{name: name, err: err}
	}
	if err = os.WriteFile(filepath.Join(crackAllOutDir, base+"_key.txt"),
		[]byte(res.Key.String()+"\n"), 0o644); err != nil {
		return fileResult{name: name, err: err}
	}
	return fileResult{name: name, fitness: res.BestFitness}
}

// deriveFileSeed folds a file name into the base seed (FNV-1a over the
// name, SplitMix-style avalanche is overkill here).
func deriveFileSeed(base int64, name string) int64 {
	var h uint64 = 1469598103934665603
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= 1099511628211
	}
	return base ^ int64(h)
}

// writeSummary writes the per-file outcome table.
func writeSummary(path string, results []fileResult) error {
	var b strings.Builder
	b.WriteString("BULK DECRYPTION SUMMARY\n")
	b.WriteString("=======================\n\n")

	ok := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(&b, "%s: FAILED (%v)\n", r.name, r.err)
			continue
		}
		ok++
		fmt.Fprintf(&b, "%s: OK (fitness: %.4f)\n", r.name, r.fitness)
	}
	fmt.Fprintf(&b, "\ntotal succeeded: %d/%d\n", ok, len(results))

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func init() {
	crackAllCmd.Flags().StringVar(&crackAllDir, "dir", "test_files", "directory with *_ciphertext.txt files")
	crackAllCmd.Flags().StringVar(&crackAllOutDir, "out", "decrypted_results", "output directory")
	crackAllCmd.Flags().IntVar(&crackAllWorkers, "workers", 0, "concurrent files (0: GOMAXPROCS)")
	crackAllCmd.Flags().StringVar(&cfg.Model, "model", cfg.Model, "reference model JSON")
	crackAllCmd.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "search iterations per file")
	crackAllCmd.Flags().Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "initial temperature T0")
	crackAllCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "base RNG seed (0: fixed default stream)")
	crackAllCmd.Flags().IntVar(&cfg.Chains, "chains", cfg.Chains, "chains per file")

	rootCmd.AddCommand(crackAllCmd)
}
