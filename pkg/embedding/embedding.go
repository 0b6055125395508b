// Package embedding converts text to float32 vectors via any server that
// speaks the OpenAI /v1/embeddings contract (vLLM, Ollama,
// text-embeddings-inference, OpenAI itself) and scores vector pairs with
// cosine similarity.
//
// The reconciler only depends on the Embedder interface, so tests can swap
// in a deterministic stub without a running model server.
package embedding

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Embedder converts text to vectors. Implementations must be deterministic
// for identical input text under a fixed model.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns embeddings for multiple texts, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the vector dimension, or 0 before the first call
	// when the dimension is auto-detected.
	Dimension() int

	// Model returns the model name.
	Model() string
}

// Config configures the embedding client.
type Config struct {
	// Endpoint is the base URL of the embedding server, e.g.
	// "http://localhost:8003". Empty means no server: New returns a
	// zero-vector embedder so structural-only comparisons still work.
	Endpoint string

	// Model is the model name sent with each request.
	Model string

	// Dimension is the expected vector dimension; 0 auto-detects it from
	// the first response.
	Dimension int

	// BatchSize caps the number of texts per HTTP request. Default 32.
	BatchSize int

	// Timeout bounds each HTTP request. Default 30s.
	Timeout time.Duration

	// Logger receives debug messages. Defaults to a nop logger.
	Logger *zap.Logger
}

func (c *Config) applyDefaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = 32
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// New creates an Embedder from config. Without an endpoint it returns a
// zeroEmbedder producing zero vectors of the configured dimension.
func New(cfg Config) Embedder {
	cfg.applyDefaults()
	if cfg.Endpoint == "" {
		dim := cfg.Dimension
		if dim <= 0 {
			dim = 384
		}
		return &zeroEmbedder{dim: dim, model: cfg.Model}
	}
	return newHTTPEmbedder(cfg)
}

// zeroEmbedder returns zero vectors. Every pair of texts then scores 0
// similarity, which degrades the comparison to purely structural.
type zeroEmbedder struct {
	dim   int
	model string
}

func (z *zeroEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, z.dim), nil
}

func (z *zeroEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = make([]float32, z.dim)
	}
	return out, nil
}

func (z *zeroEmbedder) Dimension() int { return z.dim }
func (z *zeroEmbedder) Model() string  { return z.model }
