package benchmark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func benchCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(&catalog.Snapshot{
		Version: "t1",
		Skills: []types.Skill{
			{ID: "python", Name: "Python", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "sql", Name: "SQL", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "pandas", Name: "Pandas", Category: types.CategoryTechnical, Class: types.ClassFramework},
			{ID: "spark", Name: "Spark", Category: types.CategoryTechnical, Class: types.ClassFramework},
			{ID: "communication", Name: "Communication", Category: types.CategorySoft, Class: types.ClassSoft},
		},
		Careers: []types.Career{
			{ID: "data-scientist", Name: "Data Scientist"},
			{ID: "unpeopled", Name: "Unpeopled"},
		},
		Peers: []types.PeerProfile{
			{CareerID: "data-scientist", SkillIDs: []string{"python", "sql", "pandas"}, ExperienceYears: 2, Salary: 80000},
			{CareerID: "data-scientist", SkillIDs: []string{"python", "sql"}, ExperienceYears: 4, Salary: 100000},
			{CareerID: "data-scientist", SkillIDs: []string{"python", "spark", "communication"}, ExperienceYears: 6, Salary: 120000},
			{CareerID: "data-scientist", SkillIDs: []string{"python", "sql", "pandas", "spark"}, ExperienceYears: 8, Salary: 140000},
		},
	})
	require.NoError(t, err)
	return cat
}

func userSkills(ids ...string) types.UserSkills {
	user := make(types.UserSkills, len(ids))
	for _, id := range ids {
		user[id] = types.UserSkill{SkillID: id, Level: types.LevelIntermediate}
	}
	return user
}

func TestCompare_Statistics(t *testing.T) {
	engine := New(benchCatalog(t))

	cmp, err := engine.Compare(Input{Skills: userSkills("python")}, "data-scientist")
	require.NoError(t, err)
	require.True(t, cmp.Sufficient)

	assert.Equal(t, 4, cmp.Statistics.TotalPeers)
	// (2+4+6+8)/4 = 5.0
	assert.Equal(t, 5.0, cmp.Statistics.AvgExperienceYears)
	assert.Equal(t, 110000, cmp.Statistics.AvgSalary)
	// even count: (100000+120000)/2
	assert.Equal(t, 110000, cmp.Statistics.MedianSalary)
	assert.Equal(t, 80000, cmp.Statistics.MinSalary)
	assert.Equal(t, 140000, cmp.Statistics.MaxSalary)
	// (3+2+3+4)/4 = 3.0
	assert.Equal(t, 3.0, cmp.Statistics.AvgSkillCount)
}

func TestCompare_PrevalenceSortedAndFlagged(t *testing.T) {
	engine := New(benchCatalog(t))

	cmp, err := engine.Compare(Input{Skills: userSkills("python", "pandas")}, "data-scientist")
	require.NoError(t, err)

	// python 4/4, sql 3/4, then pandas and spark tied at 2/4 breaking on id,
	// communication 1/4 last.
	require.Len(t, cmp.Prevalence, 5)
	assert.Equal(t, "python", cmp.Prevalence[0].SkillID)
	assert.Equal(t, 1.0, cmp.Prevalence[0].Prevalence)
	assert.True(t, cmp.Prevalence[0].UserHas)
	assert.Equal(t, "sql", cmp.Prevalence[1].SkillID)
	assert.Equal(t, 0.75, cmp.Prevalence[1].Prevalence)
	assert.Equal(t, "pandas", cmp.Prevalence[2].SkillID)
	assert.Equal(t, "spark", cmp.Prevalence[3].SkillID)
	assert.Equal(t, "communication", cmp.Prevalence[4].SkillID)
	assert.False(t, cmp.Prevalence[4].UserHas)
}

func TestCompare_MissingCommonExcludesHeldSkills(t *testing.T) {
	engine := New(benchCatalog(t))

	cmp, err := engine.Compare(Input{Skills: userSkills("python", "pandas")}, "data-scientist")
	require.NoError(t, err)

	// Held skills never appear; order follows prevalence.
	require.Len(t, cmp.MissingCommon, 3)
	assert.Equal(t, "sql", cmp.MissingCommon[0].SkillID)
	assert.Equal(t, "spark", cmp.MissingCommon[1].SkillID)
	assert.Equal(t, "communication", cmp.MissingCommon[2].SkillID)
}

func TestCompare_MissingCommonCapped(t *testing.T) {
	engine := New(benchCatalog(t))
	engine.maxMissingCommon = 1

	cmp, err := engine.Compare(Input{Skills: userSkills()}, "data-scientist")
	require.NoError(t, err)

	require.Len(t, cmp.MissingCommon, 1)
	assert.Equal(t, "python", cmp.MissingCommon[0].SkillID)
}

func TestCompare_Percentiles(t *testing.T) {
	engine := New(benchCatalog(t))

	exp := 6.0
	salary := 80000
	cmp, err := engine.Compare(Input{
		Skills:          userSkills("python", "sql", "pandas"),
		ExperienceYears: &exp,
		Salary:          &salary,
	}, "data-scientist")
	require.NoError(t, err)

	// Peer skill counts are 3,2,3,4; three peers hold <= 3 skills.
	assert.Equal(t, 75.0, cmp.SkillCountPercentile)

	// Experience 6 covers peers at 2, 4 and 6.
	require.NotNil(t, cmp.ExperiencePercentile)
	assert.Equal(t, 75.0, *cmp.ExperiencePercentile)

	// Salary 80000 covers only the lowest peer.
	require.NotNil(t, cmp.SalaryPercentile)
	assert.Equal(t, 25.0, *cmp.SalaryPercentile)
}

func TestCompare_OmittedInputsOmitPercentiles(t *testing.T) {
	engine := New(benchCatalog(t))

	cmp, err := engine.Compare(Input{Skills: userSkills("python")}, "data-scientist")
	require.NoError(t, err)

	assert.Nil(t, cmp.ExperiencePercentile)
	assert.Nil(t, cmp.SalaryPercentile)
}

func TestCompare_NoPeersIsInsufficientNotError(t *testing.T) {
	engine := New(benchCatalog(t))

	cmp, err := engine.Compare(Input{Skills: userSkills("python")}, "unpeopled")
	require.NoError(t, err)

	assert.False(t, cmp.Sufficient)
	assert.Equal(t, "unpeopled", cmp.CareerID)
	assert.Empty(t, cmp.Prevalence)
	assert.Zero(t, cmp.Statistics.TotalPeers)
}

func TestCompare_UnknownCareer(t *testing.T) {
	engine := New(benchCatalog(t))

	_, err := engine.Compare(Input{}, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCareerNotFound))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3, median([]int{1, 3, 5}))
	assert.Equal(t, 4, median([]int{1, 3, 5, 7}))
	assert.Equal(t, 9, median([]int{9}))
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	assert.Equal(t, 0.0, percentile(values, 5))
	assert.Equal(t, 50.0, percentile(values, 20))
	assert.Equal(t, 100.0, percentile(values, 40))
	assert.Equal(t, 0.0, percentile(nil, 10))
}
