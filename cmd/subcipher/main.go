// Command subcipher is the toolchain around the substitution-cipher
// key-search engine: build a reference bigram model from a corpus,
// encrypt/decrypt under explicit keys, crack ciphertexts (single file or
// whole directories), render diagnostics, and serve a small JSON API demo.
//
// Usage:
//
//	subcipher build-model --corpus krakatit.txt --out model.json
//	subcipher build-model --fetch --out model.json
//	subcipher encrypt --in plain.txt --out cipher.txt
//	subcipher crack --model model.json --in cipher.txt --chains 4 --plot history.html
//	subcipher crack-all --model model.json --dir test_files --out decrypted_results
//	subcipher serve --model model.json --addr :8080
//
// All long-running defaults (iterations, temperature, chains, seed,
// pseudocount, model path) can be pinned in a YAML config file passed via
// --config; explicit flags win over the file.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cfg holds the merged configuration (YAML file defaults, overridden by
// flags where the user set them explicitly).
var cfg = defaultConfig()

// configPath is the optional YAML config file (--config).
var configPath string

var rootCmd = &cobra.Command{
	Use:   "subcipher",
	Short: "Break monoalphabetic substitution ciphers with a bigram model and annealing search",
	Long: `subcipher works over a fixed 27-symbol alphabet (A-Z plus '_' as the
word separator). It builds a smoothed bigram model from a reference corpus
and recovers substitution keys from ciphertext alone with a
Metropolis-Hastings / simulated-annealing search over key-space.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file with crack defaults")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		// File values become the new baseline; flags the user set
		// explicitly on the command line still win (they are applied by
		// cobra after this hook via their bound variables only when
		// changed, so re-apply file values just for unchanged flags).
		cfg.mergeUnchanged(cmd, loaded)
		return nil
	}
}
