package matcher

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"ess-chatbot/internal/catalog"
	pkgLog "ess-chatbot/pkg/log"
)

// DefaultThreshold is the minimum cosine similarity for a nominal match.
// Below it the matcher returns the reserved unknown intent.
const DefaultThreshold = 0.5

// Embedder converts texts to fixed-length vectors. Deterministic for
// identical input. Implemented by pkg/voyage.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Matcher is the interface for intent classification.
type Matcher interface {
	Match(ctx context.Context, query string) (Result, error)
}

// EmbeddingMatcher classifies queries by cosine similarity against
// cached example embeddings.
type EmbeddingMatcher struct {
	l         pkgLog.Logger
	embedder  Embedder
	catalog   *catalog.Catalog
	threshold float64

	// Example embeddings, indexed like catalog.All(). Written once by
	// Warm, read-only afterwards: safe to share across callers.
	examples [][][]float32

	// Repeated queries skip the embedding call: embed() is deterministic.
	queryCache *lru.Cache[string, []float32]
}

var _ Matcher = (*EmbeddingMatcher)(nil)

// New creates an EmbeddingMatcher. Call Warm before Match.
func New(l pkgLog.Logger, embedder Embedder, cat *catalog.Catalog, threshold float64, cacheSize int) (*EmbeddingMatcher, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cacheSize <= 0 {
		cacheSize = 256
	}

	cache, err := lru.New[string, []float32](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	return &EmbeddingMatcher{
		l:          l,
		embedder:   embedder,
		catalog:    cat,
		threshold:  threshold,
		queryCache: cache,
	}, nil
}
