package matching

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini model used for skill-name embeddings.
const defaultEmbeddingModel = "text-embedding-004"

// GeminiScorer is an optional SemanticScorer backed by Gemini embeddings.
// Embeddings are memoized per text: both inputs are built from the immutable
// catalog or the request's own skill names, so cached entries can never go
// stale within a process.
type GeminiScorer struct {
	client *genai.Client
	model  string

	mu    sync.Mutex
	cache map[string][]float32
}

// NewGeminiScorer creates a GeminiScorer. An empty model selects the default
// embedding model.
func NewGeminiScorer(ctx context.Context, apiKey, model string) (*GeminiScorer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini scorer: API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini scorer: create client: %w", err)
	}
	if model == "" {
		model = defaultEmbeddingModel
	}
	return &GeminiScorer{
		client: client,
		model:  model,
		cache:  make(map[string][]float32),
	}, nil
}

// Similarity embeds both texts and returns their cosine similarity clamped
// to [0,1].
func (s *GeminiScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	sim := cosine32(va, vb)
	if sim < 0 {
		sim = 0
	}
	if sim > 1 {
		sim = 1
	}
	return sim, nil
}

// Close releases the underlying client.
func (s *GeminiScorer) Close() error {
	return s.client.Close()
}

func (s *GeminiScorer) embed(ctx context.Context, text string) ([]float32, error) {
	s.mu.Lock()
	if vec, ok := s.cache[text]; ok {
		s.mu.Unlock()
		return vec, nil
	}
	s.mu.Unlock()

	em := s.client.EmbeddingModel(s.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini scorer: embed: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini scorer: empty embedding response")
	}

	s.mu.Lock()
	s.cache[text] = resp.Embedding.Values
	s.mu.Unlock()
	return resp.Embedding.Values, nil
}

func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
