package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// httpEmbedder talks to an OpenAI-compatible /v1/embeddings server.
type httpEmbedder struct {
	endpoint  string
	model     string
	batchSize int
	client    *http.Client
	log       *zap.Logger

	mu  sync.Mutex // protects dim on first detection
	dim int
}

func newHTTPEmbedder(cfg Config) *httpEmbedder {
	return &httpEmbedder{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		model:     cfg.Model,
		batchSize: cfg.BatchSize,
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       cfg.Logger,
		dim:       cfg.Dimension,
	}
}

// embedRequest is the JSON body sent to /v1/embeddings.
type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// embedResponse is the OpenAI-format JSON response from /v1/embeddings.
type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
}

func (e *httpEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *httpEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	result := make([][]float32, len(texts))
	for start := 0; start < len(texts); start += e.batchSize {
		end := start + e.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		vecs, err := e.request(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embedding texts [%d:%d]: %w", start, end, err)
		}
		copy(result[start:end], vecs)
	}
	return result, nil
}

func (e *httpEmbedder) request(ctx context.Context, texts []string) ([][]float32, error) {
	body, err := json.Marshal(embedRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := e.endpoint + "/v1/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(detail))
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("no embeddings returned from %s", url)
	}

	if e.Dimension() == 0 && len(parsed.Data[0].Embedding) > 0 {
		e.mu.Lock()
		if e.dim == 0 {
			e.dim = len(parsed.Data[0].Embedding)
			e.log.Debug("detected embedding dimension",
				zap.Int("dimension", e.dim),
				zap.String("model", parsed.Model))
		}
		e.mu.Unlock()
	}

	// Responses carry an index per item; reassemble in input order.
	vecs := make([][]float32, len(texts))
	for _, item := range parsed.Data {
		if item.Index >= 0 && item.Index < len(vecs) {
			vecs[item.Index] = item.Embedding
		}
	}
	for i, v := range vecs {
		if v == nil {
			return nil, fmt.Errorf("missing embedding for input index %d", i)
		}
	}
	return vecs, nil
}

func (e *httpEmbedder) Dimension() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dim
}

func (e *httpEmbedder) Model() string { return e.model }
