// Package matching scores a normalized user skill set against every career
// in the catalog, blending importance-weighted overlap, required-skill
// coverage and semantic similarity into one ranked match percentage.
package matching

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"
)

// SemanticScorer computes a bounded similarity in [0,1] between two
// skill-name texts. Any implementation satisfying the bound fulfils the
// contract; the engine treats it as a pluggable capability.
type SemanticScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// semanticStopWords filters glue words from skill-name texts before
// vectorizing.
var semanticStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "has": true,
	"requires": true, "skills": true, "user": true, "career": true,
}

// TFIDFScorer is the default SemanticScorer: TF-IDF vectors over the career
// profile corpus with cosine similarity. It is deterministic and needs no
// network access.
type TFIDFScorer struct {
	idf  map[string]float64
	docs int
}

// NewTFIDFScorer builds document frequencies from the given corpus. The
// corpus is typically one profile text per career, built once at startup.
func NewTFIDFScorer(corpus []string) *TFIDFScorer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	s := &TFIDFScorer{idf: make(map[string]float64, len(df)), docs: len(corpus)}
	for tok, n := range df {
		// Smoothed IDF keeps terms that appear in every document non-zero.
		s.idf[tok] = math.Log(float64(1+s.docs)/float64(1+n)) + 1
	}
	return s
}

// Similarity returns the cosine similarity between the TF-IDF vectors of the
// two texts. Terms unseen in the corpus get the maximum IDF.
func (s *TFIDFScorer) Similarity(_ context.Context, a, b string) (float64, error) {
	va := s.vectorize(a)
	vb := s.vectorize(b)
	return cosine(va, vb), nil
}

func (s *TFIDFScorer) vectorize(text string) map[string]float64 {
	counts := make(map[string]float64)
	total := 0.0
	for _, tok := range tokenize(text) {
		counts[tok]++
		total++
	}
	if total == 0 {
		return nil
	}

	unseenIDF := math.Log(float64(1+s.docs)) + 1
	vec := make(map[string]float64, len(counts))
	for tok, n := range counts {
		idf, ok := s.idf[tok]
		if !ok {
			idf = unseenIDF
		}
		vec[tok] = (n / total) * idf
	}
	return vec
}

// cosine computes the cosine similarity of two sparse vectors.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dot := 0.0
	for tok, va := range a {
		if vb, ok := b[tok]; ok {
			dot += va * vb
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v map[string]float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// tokenize lowercases and splits text into terms, keeping tech suffixes
// like "c++", "c#" and "node.js" intact.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len(w) >= 2 && !semanticStopWords[w] {
			tokens = append(tokens, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// sortedTokens is used by tests to assert tokenizer behavior.
func sortedTokens(text string) []string {
	tokens := tokenize(text)
	sort.Strings(tokens)
	return tokens
}
