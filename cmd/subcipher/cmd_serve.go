// Command subcipher - serve: JSON API demo around the core engine.
//
// The API is deliberately synchronous and stateless: every request carries
// everything the core needs, the immutable reference model is shared
// read-only across handlers, and the fitness history comes back as a plain
// float array any front-end can plot directly.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vdlabac/subcipher/bigram"
	"github.com/vdlabac/subcipher/cipher"
	"github.com/vdlabac/subcipher/metropolis"
)

var serveAddr string // listen address

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a JSON API demo (encrypt, decrypt, crack)",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := bigram.LoadFile(cfg.Model)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router := newRouter(model)

		slog.Info("serving", "addr", serveAddr, "model", cfg.Model)
		return router.Run(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&cfg.Model, "model", cfg.Model, "reference model JSON")

	rootCmd.AddCommand(serveCmd)
}

// newRouter wires the API routes around the shared read-only model.
// Split out of the command so handler tests can hit it with httptest.
func newRouter(model *bigram.Model) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source_len": model.SourceLen()})
	})
	api.POST("/encrypt", handleEncrypt)
	api.POST("/decrypt", handleDecrypt)
	api.POST("/crack", handleCrack(model))

	return router
}

// encryptRequest is the /api/encrypt payload. An empty key means "generate
// one from seed and return it".
type encryptRequest struct {
	Text string `json:"text" binding:"required"`
	Key  string `json:"key"`
	Seed int64  `json:"seed"`
}

func handleEncrypt(c *gin.Context) {
	var req encryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		key cipher.Key
		err error
	)
	if req.Key != "" {
		key, err = cipher.ParseKey(req.Key)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		key = cipher.NewRandomKey(rngForSeed(req.Seed))
	}

	normalized := cipher.Normalize(req.Text)
	ct, err := cipher.Encrypt(normalized, key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ciphertext": ct.String(),
		"key":        key.String(),
		"normalized": normalized.String(),
	})
}

// decryptRequest is the /api/decrypt payload.
type decryptRequest struct {
	Ciphertext string `json:"ciphertext" binding:"required"`
	Key        string `json:"key" binding:"required"`
}

func handleDecrypt(c *gin.Context) {
	var req decryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key, err := cipher.ParseKey(req.Key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ct, err := cipher.NewText(strings.TrimSpace(req.Ciphertext))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pt, err := cipher.Decrypt(ct, key)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plaintext": pt.String()})
}

// crackRequest is the /api/crack payload; zero values fall back to the
// engine defaults.
type crackRequest struct {
	Ciphertext  string  `json:"ciphertext" binding:"required"`
	Iterations  int     `json:"iterations"`
	Temperature float64 `json:"temperature"`
	Seed        int64   `json:"seed"`
	Chains      int     `json:"chains"`
}

func handleCrack(model *bigram.Model) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req crackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ct, err := cipher.NewText(strings.TrimSpace(req.Ciphertext))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		opts := metropolis.DefaultOptions()
		if req.Iterations > 0 {
			opts.Iterations = req.Iterations
		}
		if req.Temperature > 0 {
			opts.InitialTemp = req.Temperature
		}
		opts.Seed = req.Seed
		if req.Chains > 0 {
			opts.Chains = req.Chains
		}

		res, err := metropolis.SearchParallel(c.Request.Context(), ct, model, opts)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, metropolis.ErrBadTemperature) || errors.Is(err, cipher.ErrInvalidSymbol) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"key":          res.Key.String(),
			"plaintext":    res.Plaintext.String(),
			"best_fitness": res.BestFitness,
			"history":      res.History,
		})
	}
}
