// Package benchmark compares a user against the anonymized peer population
// recorded for one career: skill prevalence, salary and experience spread,
// and where the user sits in the distribution.
package benchmark

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// ErrCareerNotFound reports an unknown career id.
var ErrCareerNotFound = fmt.Errorf("benchmark: career not found")

// DefaultMaxMissingCommon caps the list of common peer skills the user lacks.
const DefaultMaxMissingCommon = 5

// Input carries the user side of a peer comparison. ExperienceYears and
// Salary are optional; when nil the matching percentile is omitted from the
// result rather than faked.
type Input struct {
	Skills          types.UserSkills
	ExperienceYears *float64
	Salary          *int
}

// Engine runs peer comparisons against the read-only catalog.
type Engine struct {
	cat              *catalog.Catalog
	maxMissingCommon int
}

// New creates a benchmarking engine.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat, maxMissingCommon: DefaultMaxMissingCommon}
}

// Compare benchmarks the user against the peers of one career.
//
// When the career has no recorded peers the comparison is returned with
// Sufficient set to false and no statistics; a missing population is a data
// condition, not an error. Percentiles are the fraction of peers with a value
// less than or equal to the user's, scaled to [0,100].
func (e *Engine) Compare(in Input, careerID string) (*types.PeerComparison, error) {
	career, ok := e.cat.Career(careerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCareerNotFound, careerID)
	}

	cmp := &types.PeerComparison{
		CareerID:   career.ID,
		CareerName: career.Name,
	}

	peers := e.cat.PeersFor(careerID)
	if len(peers) == 0 {
		return cmp, nil
	}
	cmp.Sufficient = true
	cmp.Statistics = statistics(peers)
	cmp.Prevalence = e.prevalence(peers, in.Skills)
	cmp.MissingCommon = missingCommon(cmp.Prevalence, e.maxMissingCommon)

	counts := make([]float64, len(peers))
	for i, p := range peers {
		counts[i] = float64(len(p.SkillIDs))
	}
	cmp.SkillCountPercentile = percentile(counts, float64(len(in.Skills)))

	if in.ExperienceYears != nil {
		years := make([]float64, len(peers))
		for i, p := range peers {
			years[i] = p.ExperienceYears
		}
		v := percentile(years, *in.ExperienceYears)
		cmp.ExperiencePercentile = &v
	}
	if in.Salary != nil {
		salaries := make([]float64, len(peers))
		for i, p := range peers {
			salaries[i] = float64(p.Salary)
		}
		v := percentile(salaries, float64(*in.Salary))
		cmp.SalaryPercentile = &v
	}

	return cmp, nil
}

// prevalence reports, per skill held by any peer, the fraction of peers
// holding it, sorted by prevalence descending with skill id breaking ties.
func (e *Engine) prevalence(peers []types.PeerProfile, user types.UserSkills) []types.SkillPrevalence {
	counts := make(map[string]int)
	for _, p := range peers {
		for _, id := range p.SkillIDs {
			counts[id]++
		}
	}

	out := make([]types.SkillPrevalence, 0, len(counts))
	for id, n := range counts {
		_, has := user[id]
		out = append(out, types.SkillPrevalence{
			SkillID:    id,
			Name:       e.cat.SkillName(id),
			Prevalence: float64(n) / float64(len(peers)),
			UserHas:    has,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prevalence != out[j].Prevalence {
			return out[i].Prevalence > out[j].Prevalence
		}
		return out[i].SkillID < out[j].SkillID
	})
	return out
}

// missingCommon picks the most prevalent peer skills the user lacks. The
// input is already sorted by prevalence descending.
func missingCommon(prevalence []types.SkillPrevalence, limit int) []types.SkillPrevalence {
	var out []types.SkillPrevalence
	for _, p := range prevalence {
		if p.UserHas {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func statistics(peers []types.PeerProfile) types.PeerStatistics {
	stats := types.PeerStatistics{TotalPeers: len(peers)}

	salaries := make([]int, 0, len(peers))
	totalExp := 0.0
	totalSalary := 0
	totalSkills := 0
	for _, p := range peers {
		totalExp += p.ExperienceYears
		totalSalary += p.Salary
		totalSkills += len(p.SkillIDs)
		salaries = append(salaries, p.Salary)
	}
	sort.Ints(salaries)

	n := float64(len(peers))
	stats.AvgExperienceYears = round1(totalExp / n)
	stats.AvgSalary = totalSalary / len(peers)
	stats.MedianSalary = median(salaries)
	stats.MinSalary = salaries[0]
	stats.MaxSalary = salaries[len(salaries)-1]
	stats.AvgSkillCount = round1(float64(totalSkills) / n)
	return stats
}

// median expects a sorted slice; an even length averages the middle pair.
func median(sorted []int) int {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// percentile returns 100 × fraction of values <= v, always within [0,100].
func percentile(values []float64, v float64) float64 {
	if len(values) == 0 {
		return 0
	}
	atOrBelow := 0
	for _, x := range values {
		if x <= v {
			atOrBelow++
		}
	}
	return round1(float64(atOrBelow) / float64(len(values)) * 100)
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
