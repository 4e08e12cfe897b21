// Command subcipher - decrypt: decrypt a ciphertext under a known key.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdlabac/subcipher/cipher"
)

var (
	decryptInPath  string // input ciphertext ("-" for stdin)
	decryptOutPath string // output plaintext ("-" for stdout)
	decryptKeyStr  string // key string (required)
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a ciphertext under a known substitution key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := cipher.ParseKey(decryptKeyStr)
		if err != nil {
			return err
		}

		raw, err := readInput(decryptInPath)
		if err != nil {
			return err
		}

		ct, err := cipher.NewText(strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		pt, err := cipher.Decrypt(ct, key)
		if err != nil {
			return err
		}
		return writeOutput(decryptOutPath, pt.String())
	},
}

func init() {
	decryptCmd.Flags().StringVar(&decryptInPath, "in", "-", "input file (- for stdin)")
	decryptCmd.Flags().StringVar(&decryptOutPath, "out", "-", "output file (- for stdout)")
	decryptCmd.Flags().StringVar(&decryptKeyStr, "key", "", "27-symbol key string")
	_ = decryptCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(decryptCmd)
}
