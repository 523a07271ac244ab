package resume

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/types"
)

type zeroScorer struct{}

func (zeroScorer) Similarity(context.Context, string, string) (float64, error) {
	return 0, nil
}

func resumeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(&catalog.Snapshot{
		Version: "t1",
		Skills: []types.Skill{
			{ID: "python", Name: "Python", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "sql", Name: "SQL", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "machine-learning", Name: "Machine Learning", Category: types.CategoryTechnical, Class: types.ClassConcept},
			{ID: "communication", Name: "Communication", Category: types.CategorySoft, Class: types.ClassSoft},
			{ID: "leadership", Name: "Leadership", Category: types.CategorySoft, Class: types.ClassSoft},
		},
		Careers: []types.Career{
			{
				ID:   "data-scientist",
				Name: "Data Scientist",
				Requirements: []types.SkillRequirement{
					{SkillID: "python", Importance: 9, Tier: types.TierRequired, Difficulty: types.LevelIntermediate},
					{SkillID: "sql", Importance: 7, Tier: types.TierRequired, Difficulty: types.LevelBeginner},
					{SkillID: "machine-learning", Importance: 8, Tier: types.TierRequired, Difficulty: types.LevelAdvanced},
					{SkillID: "communication", Importance: 5, Tier: types.TierOptional, Difficulty: types.LevelIntermediate},
				},
			},
			{
				ID:   "keywordless",
				Name: "Keywordless",
				Requirements: []types.SkillRequirement{
					{SkillID: "leadership", Importance: 5, Tier: types.TierRequired, Difficulty: types.LevelBeginner},
				},
			},
		},
		Keywords: []catalog.CareerKeyword{
			{CareerID: "data-scientist", Keyword: "python", Weight: 2},
			{CareerID: "data-scientist", Keyword: "sql", Weight: 1},
			{CareerID: "data-scientist", Keyword: "machine learning", Weight: 2},
		},
	})
	require.NoError(t, err)
	return cat
}

func resumeEngine(t *testing.T) *Engine {
	t.Helper()
	cat := resumeCatalog(t)
	matcher := matching.New(cat, zeroScorer{}, matching.DefaultConfig(), nil)
	return New(cat, matcher)
}

func TestFormattingScore(t *testing.T) {
	// 5 sections (40) + 10 bullets (20) + 25 lines (20) + 500 words (20).
	full := formattingScore(types.ResumeFeatures{
		SectionCount: 5, BulletCount: 10, LineCount: 25, WordCount: 500,
	})
	assert.Equal(t, 100.0, full)

	// 2 sections (16) + 3 bullets (6) + 12 lines (10) + 150 words (10).
	partial := formattingScore(types.ResumeFeatures{
		SectionCount: 2, BulletCount: 3, LineCount: 12, WordCount: 150,
	})
	assert.Equal(t, 42.0, partial)

	assert.Equal(t, 0.0, formattingScore(types.ResumeFeatures{}))

	// Section and bullet points saturate at their budgets.
	saturated := formattingScore(types.ResumeFeatures{SectionCount: 50, BulletCount: 50})
	assert.Equal(t, 60.0, saturated)
}

func TestContentScore(t *testing.T) {
	// 6 skills (20) + both categories (20) + 300 words (25) + 3 indicators (15).
	features := types.ResumeFeatures{
		WordCount: 300,
		RawText:   "Led a project with measurable impact and experience in data work",
	}
	assert.Equal(t, 80.0, contentScore(features, 4, 2))

	// Single category halves the balance points.
	assert.Equal(t, 70.0, contentScore(features, 6, 0))

	assert.Equal(t, 0.0, contentScore(types.ResumeFeatures{}, 0, 0))
}

func TestKeywordScore(t *testing.T) {
	engine := resumeEngine(t)

	// python (2) and machine learning (2) of total weight 5 present: 80.
	features := types.ResumeFeatures{
		RawText: "Built Machine Learning pipelines in Python",
	}
	assert.Equal(t, 80.0, engine.keywordScore(features, "data-scientist"))

	// No keyword table and no career both yield zero.
	assert.Equal(t, 0.0, engine.keywordScore(features, "keywordless"))
	assert.Equal(t, 0.0, engine.keywordScore(features, ""))
}

func TestActionVerbScore(t *testing.T) {
	// 8 verbs over 10 bullets hits the 0.8 cap exactly.
	verbs := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "developed"
		}
		return out
	}
	assert.Equal(t, 100.0, actionVerbScore(types.ResumeFeatures{BulletCount: 10, ActionVerbs: verbs(8)}))

	// 4 of 10 is half the cap.
	assert.Equal(t, 50.0, actionVerbScore(types.ResumeFeatures{BulletCount: 10, ActionVerbs: verbs(4)}))

	// Without bullets, word count estimates sentences: 100 words is 5 sentences.
	assert.Equal(t, 50.0, actionVerbScore(types.ResumeFeatures{WordCount: 100, ActionVerbs: verbs(2)}))

	assert.Equal(t, 0.0, actionVerbScore(types.ResumeFeatures{}))
}

func TestScore_CompositeUsesFixedWeights(t *testing.T) {
	engine := resumeEngine(t)

	features := types.ResumeFeatures{
		SkillIDs:     []string{"python", "sql", "communication"},
		RawText:      "Python and SQL projects delivered measurable impact and experience",
		WordCount:    400,
		LineCount:    30,
		SectionCount: 4,
		BulletCount:  8,
		ActionVerbs:  []string{"developed", "implemented", "designed"},
	}

	score, err := engine.Score(context.Background(), features, "data-scientist")
	require.NoError(t, err)

	want := score.Breakdown.Formatting*0.25 +
		score.Breakdown.Content*0.35 +
		score.Breakdown.Keyword*0.25 +
		score.Breakdown.ActionVerb*0.15
	assert.InDelta(t, want, score.Overall, 0.05)
	assert.GreaterOrEqual(t, score.Overall, 0.0)
	assert.LessOrEqual(t, score.Overall, 100.0)
}

func TestScore_TargetDefaultsToTopFit(t *testing.T) {
	engine := resumeEngine(t)

	// The extracted skills fit data-scientist best, so its keyword table is
	// applied even though no target was named.
	features := types.ResumeFeatures{
		SkillIDs:  []string{"python", "sql", "machine-learning"},
		RawText:   "Python, SQL and machine learning throughout",
		WordCount: 50,
	}

	score, err := engine.Score(context.Background(), features, "")
	require.NoError(t, err)

	require.NotEmpty(t, score.CareerFits)
	assert.Equal(t, "data-scientist", score.CareerFits[0].CareerID)
	assert.Equal(t, 100.0, score.Breakdown.Keyword)
}

func TestScore_SuggestionsCappedAndHighPriorityFirst(t *testing.T) {
	engine := resumeEngine(t)

	// An empty resume trips every threshold rule.
	score, err := engine.Score(context.Background(), types.ResumeFeatures{}, "data-scientist")
	require.NoError(t, err)

	require.Len(t, score.Suggestions, DefaultMaxSuggestions)
	for i, s := range score.Suggestions[:3] {
		assert.Equal(t, "high", s.Priority, "suggestion %d", i)
	}
}

func TestScore_GoodResumeHasFewSuggestions(t *testing.T) {
	engine := resumeEngine(t)

	features := types.ResumeFeatures{
		SkillIDs: []string{"python", "sql", "machine-learning", "communication", "leadership"},
		RawText: "Experience leading projects in Python, SQL and machine learning " +
			"with measurable results, delivered impact and improved outcomes",
		WordCount:    500,
		LineCount:    40,
		SectionCount: 5,
		BulletCount:  12,
		ActionVerbs: []string{
			"developed", "implemented", "designed", "managed", "led",
			"analyzed", "built", "delivered", "improved", "launched",
		},
	}

	score, err := engine.Score(context.Background(), features, "data-scientist")
	require.NoError(t, err)

	assert.Equal(t, 100.0, score.Breakdown.Formatting)
	assert.Equal(t, 100.0, score.Breakdown.Keyword)
	assert.Equal(t, 100.0, score.Breakdown.ActionVerb)
	assert.NotEmpty(t, score.Strengths)
	for _, s := range score.Suggestions {
		assert.NotEqual(t, "formatting", s.Category)
	}
}

func TestDedupe(t *testing.T) {
	in := []types.Suggestion{
		{Category: "skills", Priority: "high", Text: "same"},
		{Category: "skills", Priority: "medium", Text: "same"},
		{Category: "skills", Priority: "medium", Text: "other"},
	}
	out := dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, "high", out[0].Priority)
}
