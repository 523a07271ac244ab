// Package gap computes importance-weighted completion for one target career
// and categorizes missing skills by tier, difficulty and category.
package gap

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// ErrCareerNotFound reports an unknown target career id.
var ErrCareerNotFound = fmt.Errorf("gap: career not found")

// Engine produces gap reports against the read-only catalog.
type Engine struct {
	cat *catalog.Catalog
}

// New creates a gap analysis engine.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Report computes the gap between a user skill map and the target career.
//
// Completion is 100 × (Σ importance of required skills held) / (Σ importance
// of all required skills). When the denominator is zero the career has no
// weighted requirements: CompletionDefined is false and the percentage must
// not be interpreted. Tier and difficulty are taken verbatim from the
// catalog, never re-derived.
func (e *Engine) Report(user types.UserSkills, careerID string) (*types.GapReport, error) {
	career, ok := e.cat.Career(careerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCareerNotFound, careerID)
	}

	report := &types.GapReport{
		CareerID:   career.ID,
		CareerName: career.Name,
	}

	totalRequiredImportance := 0
	heldRequiredImportance := 0
	heldRequired := 0
	heldOptional := 0

	for _, req := range career.Requirements {
		skill, _ := e.cat.Skill(req.SkillID)
		required := req.Tier == types.TierRequired
		if required {
			report.TotalRequired++
			totalRequiredImportance += req.Importance
		} else {
			report.TotalOptional++
		}

		userSkill, held := user[req.SkillID]
		if held {
			if required {
				heldRequired++
				heldRequiredImportance += req.Importance
			} else {
				heldOptional++
			}
			report.Held = append(report.Held, types.HeldSkill{
				SkillID:    req.SkillID,
				Name:       skill.Name,
				Importance: req.Importance,
				Tier:       req.Tier,
				Level:      userSkill.Level,
			})
			continue
		}

		missing := types.GapSkill{
			SkillID:    req.SkillID,
			Name:       skill.Name,
			Importance: req.Importance,
			Difficulty: req.Difficulty,
			Category:   skill.Category,
		}
		if skill.Category == types.CategorySoft {
			report.SoftGaps = append(report.SoftGaps, missing)
		}
		if required {
			report.RequiredMissing = append(report.RequiredMissing, missing)
		} else {
			report.OptionalMissing = append(report.OptionalMissing, missing)
		}
	}

	if totalRequiredImportance > 0 {
		report.CompletionDefined = true
		report.Completion = round1(float64(heldRequiredImportance) / float64(totalRequiredImportance) * 100)
	}
	if report.TotalRequired > 0 {
		report.RequiredCompletion = round1(float64(heldRequired) / float64(report.TotalRequired) * 100)
	}
	if report.TotalOptional > 0 {
		report.OptionalCoverage = round1(float64(heldOptional) / float64(report.TotalOptional) * 100)
	}

	// Quick wins first: importance descending, then easier difficulty,
	// then skill id for a stable order.
	sortGapSkills(report.RequiredMissing)
	sortGapSkills(report.OptionalMissing)
	sortGapSkills(report.SoftGaps)

	return report, nil
}

func sortGapSkills(skills []types.GapSkill) {
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Importance != skills[j].Importance {
			return skills[i].Importance > skills[j].Importance
		}
		if skills[i].Difficulty.Rank() != skills[j].Difficulty.Rank() {
			return skills[i].Difficulty.Rank() < skills[j].Difficulty.Rank()
		}
		return skills[i].SkillID < skills[j].SkillID
	})
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
