// Package qa answers free-text career questions from the catalog's curated
// Q&A table using token overlap, with a relevance floor below which no
// answer is returned.
package qa

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/career-advisor/internal/catalog"
)

// DefaultRelevanceFloor is the minimum normalized overlap score for a match.
const DefaultRelevanceFloor = 0.2

// Token weights: hits against the stored question text count double versus
// hits against its tags.
const (
	questionTokenWeight = 2
	tagTokenWeight      = 1
)

// Answer is a successful lookup. Confidence is the stored editorial value of
// the record, not the overlap score.
type Answer struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
	Relevance  float64 `json:"relevance"`
}

// Engine looks up answers in the catalog's Q&A table.
type Engine struct {
	cat   *catalog.Catalog
	floor float64
}

// New creates a Q&A engine. A non-positive floor selects the default.
func New(cat *catalog.Catalog, floor float64) *Engine {
	if floor <= 0 {
		floor = DefaultRelevanceFloor
	}
	return &Engine{cat: cat, floor: floor}
}

// Lookup scores every stored record against the query and returns the best
// one at or above the relevance floor. The second return is false when
// nothing qualifies; an unanswerable question is a data condition, not an
// error. Ties go to the record with the lexically smaller question so
// repeated queries always pick the same answer.
func (e *Engine) Lookup(query string) (*Answer, bool) {
	tokens := tokenizeQuery(query)
	if len(tokens) == 0 {
		return nil, false
	}

	records := e.cat.QARecords()
	type scored struct {
		rec       catalog.QARecord
		relevance float64
	}
	var candidates []scored
	for _, rec := range records {
		rel := relevance(tokens, rec)
		if rel >= e.floor {
			candidates = append(candidates, scored{rec: rec, relevance: rel})
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].relevance != candidates[j].relevance {
			return candidates[i].relevance > candidates[j].relevance
		}
		return candidates[i].rec.Question < candidates[j].rec.Question
	})

	best := candidates[0]
	return &Answer{
		Question:   best.rec.Question,
		Answer:     best.rec.Answer,
		Category:   best.rec.Category,
		Confidence: best.rec.Confidence,
		Relevance:  best.relevance,
	}, true
}

// relevance is the weighted token overlap between the query and one record,
// normalized by the best score the query could reach so it stays in [0,1].
func relevance(queryTokens map[string]bool, rec catalog.QARecord) float64 {
	questionTokens := tokenizeQuery(rec.Question)
	tagTokens := make(map[string]bool)
	for _, tag := range rec.Tags {
		for tok := range tokenizeQuery(tag) {
			tagTokens[tok] = true
		}
	}

	score := 0
	for tok := range queryTokens {
		switch {
		case questionTokens[tok]:
			score += questionTokenWeight
		case tagTokens[tok]:
			score += tagTokenWeight
		}
	}
	max := len(queryTokens) * questionTokenWeight
	return float64(score) / float64(max)
}

// qaStopWords drops glue words that would inflate overlap on any record.
var qaStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "what": true,
	"how": true, "can": true, "you": true, "about": true, "does": true,
	"should": true, "with": true, "that": true, "this": true,
}

func tokenizeQuery(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len(w) >= 2 && !qaStopWords[w] {
			tokens[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}
