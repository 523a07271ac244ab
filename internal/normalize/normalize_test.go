package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(&catalog.Snapshot{
		Version: "t1",
		Skills: []types.Skill{
			{ID: "python", Name: "Python", Category: types.CategoryTechnical, Class: types.ClassLanguage, Synonyms: []string{"py"}},
			{ID: "tensorflow", Name: "TensorFlow", Category: types.CategoryTechnical, Class: types.ClassFramework, Synonyms: []string{"tf"}},
			{ID: "git", Name: "Git", Category: types.CategoryTechnical, Class: types.ClassUtility},
			{ID: "statistics", Name: "Statistics", Category: types.CategoryTechnical, Class: types.ClassConcept},
			{ID: "communication", Name: "Communication", Category: types.CategorySoft, Class: types.ClassSoft},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestNormalize_ExplicitLevelAnnotations(t *testing.T) {
	n := New(testCatalog(t), 0)

	cases := []struct {
		raw   string
		level types.Level
	}{
		{"Python (Advanced)", types.LevelAdvanced},
		{"Python ( beginner )", types.LevelBeginner},
		{"Python - Intermediate", types.LevelIntermediate},
		{"Python : Advanced", types.LevelAdvanced},
	}
	for _, tc := range cases {
		res := n.Normalize([]string{tc.raw})
		require.Contains(t, res.Skills, "python", "input %q", tc.raw)
		assert.Equal(t, tc.level, res.Skills["python"].Level, "input %q", tc.raw)
		assert.True(t, res.Skills["python"].Explicit, "input %q", tc.raw)
	}
}

func TestNormalize_DefaultLevelByClass(t *testing.T) {
	n := New(testCatalog(t), 0)

	res := n.Normalize([]string{"Python", "TensorFlow", "Git", "Statistics", "Communication"})

	// Languages default to Intermediate, frameworks to Advanced, utilities to
	// Beginner, concepts and soft skills to Intermediate.
	assert.Equal(t, types.LevelIntermediate, res.Skills["python"].Level)
	assert.Equal(t, types.LevelAdvanced, res.Skills["tensorflow"].Level)
	assert.Equal(t, types.LevelBeginner, res.Skills["git"].Level)
	assert.Equal(t, types.LevelIntermediate, res.Skills["statistics"].Level)
	assert.Equal(t, types.LevelIntermediate, res.Skills["communication"].Level)

	for id, skill := range res.Skills {
		assert.False(t, skill.Explicit, "skill %s had no annotation", id)
	}
}

func TestNormalize_SynonymResolution(t *testing.T) {
	n := New(testCatalog(t), 0)

	res := n.Normalize([]string{"py", "TF (Advanced)"})
	assert.Contains(t, res.Skills, "python")
	require.Contains(t, res.Skills, "tensorflow")
	assert.Equal(t, types.LevelAdvanced, res.Skills["tensorflow"].Level)
}

func TestNormalize_FuzzyMatch(t *testing.T) {
	n := New(testCatalog(t), 0)

	// One deletion away from "Python": similarity 5/6 clears the threshold.
	res := n.Normalize([]string{"Pyton"})
	assert.Contains(t, res.Skills, "python")
	assert.Empty(t, res.Unrecognized)

	// One substitution in a ten-letter name: similarity 0.9.
	res = n.Normalize([]string{"Tensorflaw"})
	assert.Contains(t, res.Skills, "tensorflow")
}

func TestNormalize_UnrecognizedBelowThreshold(t *testing.T) {
	n := New(testCatalog(t), 0)

	res := n.Normalize([]string{"Underwater Basket Weaving"})
	assert.Empty(t, res.Skills)
	assert.Equal(t, []string{"Underwater Basket Weaving"}, res.Unrecognized)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "unrecognized_skill", res.Warnings[0].Code)
}

func TestNormalize_ExplicitWinsOverDefaultOnDuplicate(t *testing.T) {
	n := New(testCatalog(t), 0)

	// Explicit first, plain later: the explicit level must survive.
	res := n.Normalize([]string{"Python (Advanced)", "Python"})
	assert.Equal(t, types.LevelAdvanced, res.Skills["python"].Level)

	// Plain first, explicit later: the explicit level wins.
	res = n.Normalize([]string{"Python", "Python (Beginner)"})
	assert.Equal(t, types.LevelBeginner, res.Skills["python"].Level)

	// Two explicit entries: last one wins.
	res = n.Normalize([]string{"Python (Beginner)", "Python (Advanced)"})
	assert.Equal(t, types.LevelAdvanced, res.Skills["python"].Level)
}

func TestNormalize_SkipsBlankEntries(t *testing.T) {
	n := New(testCatalog(t), 0)

	res := n.Normalize([]string{"", "   ", "Python"})
	assert.Len(t, res.Skills, 1)
	assert.Empty(t, res.Unrecognized)
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New(testCatalog(t), 0)
	input := []string{"Pyton", "tf", "Communication", "nonsense skill"}

	first := n.Normalize(input)
	for i := 0; i < 10; i++ {
		again := n.Normalize(input)
		assert.Equal(t, first.Skills, again.Skills)
		assert.Equal(t, first.Unrecognized, again.Unrecognized)
	}
}

func TestDefaultLevel_UnknownSkillFallsBack(t *testing.T) {
	n := New(testCatalog(t), 0)
	assert.Equal(t, types.LevelBeginner, n.DefaultLevel("ghost"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("python", "python"))
	assert.Equal(t, 0.0, similarity("", ""))

	// "pyhton" vs "python": distance 2 over length 6.
	assert.InDelta(t, 1.0-2.0/6.0, similarity("pyhton", "python"), 1e-9)
}
