package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"ess-chatbot/internal/model"
)

// Result is the outcome of classifying one query.
type Result struct {
	Intent     string
	Confidence float64
}

// ErrNotWarmed is returned when Match is called before Warm.
var ErrNotWarmed = errors.New("matcher: example embeddings not computed, call Warm first")

// Warm embeds every catalog example in one batch call and caches the
// vectors for the process lifetime. Must be called once at startup.
func (m *EmbeddingMatcher) Warm(ctx context.Context) error {
	defs := m.catalog.All()

	var texts []string
	for _, def := range defs {
		texts = append(texts, def.Examples...)
	}

	vecs, err := m.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed catalog examples: %w", err)
	}
	if len(vecs) != len(texts) {
		return fmt.Errorf("embedder returned %d vectors for %d examples", len(vecs), len(texts))
	}

	m.examples = make([][][]float32, len(defs))
	offset := 0
	for i, def := range defs {
		m.examples[i] = vecs[offset : offset+len(def.Examples)]
		offset += len(def.Examples)
	}

	m.l.Infof(ctx, "matcher: warmed %d example embeddings across %d intents", len(texts), len(defs))
	return nil
}

// Match embeds the query and scores it against every intent. The score
// of an intent is the maximum similarity over its examples: one strong
// paraphrase match beats many weak ones. Ties are broken by catalog
// declaration order, first wins. A best score below the threshold
// yields the reserved unknown intent with that score as confidence.
func (m *EmbeddingMatcher) Match(ctx context.Context, query string) (Result, error) {
	if m.examples == nil {
		return Result{}, ErrNotWarmed
	}

	queryVec, err := m.embedQuery(ctx, query)
	if err != nil {
		return Result{}, err
	}

	defs := m.catalog.All()
	bestIdx := -1
	bestScore := math.Inf(-1)

	for i := range defs {
		score := math.Inf(-1)
		for _, exampleVec := range m.examples[i] {
			if s := cosineSimilarity(queryVec, exampleVec); s > score {
				score = s
			}
		}
		// Strict greater: the first-declared intent keeps a tie.
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Result{Intent: model.IntentUnknown, Confidence: 0}, nil
	}

	if bestScore < m.threshold {
		m.l.Debugf(ctx, "matcher: low confidence %.3f (best %q), routing to unknown", bestScore, defs[bestIdx].Name)
		return Result{Intent: model.IntentUnknown, Confidence: bestScore}, nil
	}

	return Result{Intent: defs[bestIdx].Name, Confidence: bestScore}, nil
}

// embedQuery embeds a single query, consulting the LRU cache first.
func (m *EmbeddingMatcher) embedQuery(ctx context.Context, query string) ([]float32, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	if vec, ok := m.queryCache.Get(key); ok {
		return vec, nil
	}

	vecs, err := m.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for 1 query", len(vecs))
	}

	m.queryCache.Add(key, vecs[0])
	return vecs[0], nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
