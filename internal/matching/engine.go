package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// Default weights for the match blend. The two lexical terms carry 85% of
// the weight, so exact skill matches always dominate near-duplicates found
// only semantically.
const (
	weightedOverlapWeight  = 0.60
	requiredCoverageWeight = 0.25
	semanticWeight         = 0.15
)

// Bonus points rewarding required-skill coverage bands and semantic affinity.
const (
	bonusCoverageExcellent = 15 // required coverage >= 80%
	bonusCoverageGood      = 10 // required coverage >= 60%
	bonusCoverageDecent    = 5  // required coverage >= 40%
	bonusComplementary     = 5  // broad overlap beyond required skills
	bonusSemantic          = 5  // semantic similarity > semanticBonusFloor
	semanticBonusFloor     = 0.3
)

// Score guardrails preventing unrealistic percentages for thin careers or
// low required coverage.
const (
	smallCareerSkillCount = 8
	smallCareerScoreCap   = 75
	highScoreFloorCov     = 80
	highScoreCap          = 85
	midScoreFloorCov      = 60
	midScoreCap           = 65
)

// DefaultMaxMissing caps the missing-skill list per career in match results.
const DefaultMaxMissing = 5

// Config carries the tunable display limits of the engine. Blend weights are
// fixed; tests assert exact outputs for literal inputs.
type Config struct {
	MaxMissing int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{MaxMissing: DefaultMaxMissing}
}

// Engine ranks careers for a user skill set. It only ever reads the catalog.
type Engine struct {
	cat    *catalog.Catalog
	scorer SemanticScorer
	cfg    Config
	logger *slog.Logger

	profiles map[string]string // career id -> profile text for semantic scoring
}

// New creates a matching engine. When scorer is nil a TF-IDF scorer over the
// catalog's career profiles is used.
func New(cat *catalog.Catalog, scorer SemanticScorer, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxMissing <= 0 {
		cfg.MaxMissing = DefaultMaxMissing
	}

	profiles := make(map[string]string)
	var corpus []string
	for _, career := range cat.Careers() {
		text := careerProfileText(cat, career)
		profiles[career.ID] = text
		corpus = append(corpus, text)
	}
	if scorer == nil {
		scorer = NewTFIDFScorer(corpus)
	}

	return &Engine{cat: cat, scorer: scorer, cfg: cfg, logger: logger, profiles: profiles}
}

// Match scores the user against every career and returns results sorted by
// match percentage descending, ties broken by career id ascending. Careers
// with zero requirements are excluded and logged as degenerate data. An empty
// skill map yields 0% for every career, never an error.
func (e *Engine) Match(ctx context.Context, user types.UserSkills) ([]types.MatchResult, error) {
	userText := userProfileText(e.cat, user)

	var results []types.MatchResult
	for _, career := range e.cat.Careers() {
		if len(career.Requirements) == 0 {
			e.logger.Warn("career has no skill requirements, excluded from ranking",
				slog.String("career_id", career.ID))
			continue
		}

		semantic := 0.0
		if userText != "" {
			sim, err := e.scorer.Similarity(ctx, userText, e.profiles[career.ID])
			if err != nil {
				// Semantic scoring is an enhancement; degrade to lexical-only.
				e.logger.Warn("semantic similarity failed, using 0",
					slog.String("career_id", career.ID), slog.Any("error", err))
			} else {
				semantic = sim
			}
		}

		results = append(results, e.scoreCareer(career, user, semantic))
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchPercentage != results[j].MatchPercentage {
			return results[i].MatchPercentage > results[j].MatchPercentage
		}
		return results[i].CareerID < results[j].CareerID
	})
	return results, nil
}

// MatchSkillIDs runs Match over a bare list of canonical skill ids, as used
// by the resume scorer where levels are not known.
func (e *Engine) MatchSkillIDs(ctx context.Context, skillIDs []string) ([]types.MatchResult, error) {
	user := make(types.UserSkills, len(skillIDs))
	for _, id := range skillIDs {
		if _, ok := e.cat.Skill(id); !ok {
			continue
		}
		user[id] = types.UserSkill{SkillID: id, Level: types.LevelIntermediate}
	}
	return e.Match(ctx, user)
}

// scoreCareer computes one career's match result from the lexical overlap
// and the precomputed semantic similarity.
func (e *Engine) scoreCareer(career types.Career, user types.UserSkills, semantic float64) types.MatchResult {
	totalImportance := 0
	matchedImportance := 0
	totalRequired := 0
	heldRequired := 0
	var matched []string
	var missing []types.MissingSkill

	for _, req := range career.Requirements {
		totalImportance += req.Importance
		_, held := user[req.SkillID]
		if req.Tier == types.TierRequired {
			totalRequired++
			if held {
				heldRequired++
			}
		}
		if held {
			matchedImportance += req.Importance
			matched = append(matched, req.SkillID)
		} else if req.Tier == types.TierRequired {
			missing = append(missing, types.MissingSkill{
				SkillID:    req.SkillID,
				Name:       e.cat.SkillName(req.SkillID),
				Importance: req.Importance,
				Tier:       req.Tier,
				Difficulty: req.Difficulty,
			})
		}
	}

	weightedOverlap := 0.0
	if totalImportance > 0 {
		weightedOverlap = float64(matchedImportance) / float64(totalImportance) * 100
	}
	requiredCoverage := 0.0
	if totalRequired > 0 {
		requiredCoverage = float64(heldRequired) / float64(totalRequired) * 100
	}

	base := weightedOverlap*weightedOverlapWeight +
		requiredCoverage*requiredCoverageWeight +
		semantic*100*semanticWeight

	bonus := 0.0
	if heldRequired > 0 {
		switch {
		case requiredCoverage >= 80:
			bonus += bonusCoverageExcellent
		case requiredCoverage >= 60:
			bonus += bonusCoverageGood
		case requiredCoverage >= 40:
			bonus += bonusCoverageDecent
		}
	}
	if len(matched) > 0 && float64(len(matched)) >= 0.5*float64(heldRequired) {
		bonus += bonusComplementary
	}
	if semantic > semanticBonusFloor {
		bonus += bonusSemantic
	}

	final := base + bonus
	if final > 100 {
		final = 100
	}
	if len(career.Requirements) < smallCareerSkillCount && final > smallCareerScoreCap {
		final = smallCareerScoreCap
	}
	if final > 90 && requiredCoverage < highScoreFloorCov {
		final = highScoreCap
	}
	if final > 70 && requiredCoverage < midScoreFloorCov {
		final = midScoreCap
	}
	final = round1(final)

	sort.Strings(matched)
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Importance != missing[j].Importance {
			return missing[i].Importance > missing[j].Importance
		}
		return missing[i].SkillID < missing[j].SkillID
	})
	if len(missing) > e.cfg.MaxMissing {
		missing = missing[:e.cfg.MaxMissing]
	}

	return types.MatchResult{
		CareerID:        career.ID,
		CareerName:      career.Name,
		MatchPercentage: final,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Components: types.MatchComponents{
			WeightedOverlap:  round1(weightedOverlap),
			RequiredCoverage: round1(requiredCoverage),
			Semantic:         semantic,
			Bonus:            bonus,
		},
		Explanation: explain(career.Name, len(matched), heldRequired, totalRequired, semantic),
	}
}

// careerProfileText builds the skill-name text used for semantic scoring.
func careerProfileText(cat *catalog.Catalog, career types.Career) string {
	names := make([]string, 0, len(career.Requirements))
	for _, req := range career.Requirements {
		names = append(names, cat.SkillName(req.SkillID))
	}
	return fmt.Sprintf("%s requires skills: %s", career.Name, strings.Join(names, ", "))
}

// userProfileText builds the user side of the semantic comparison. Empty for
// an empty skill map so semantic scoring contributes nothing.
func userProfileText(cat *catalog.Catalog, user types.UserSkills) string {
	if len(user) == 0 {
		return ""
	}
	ids := user.IDs()
	sort.Strings(ids)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, cat.SkillName(id))
	}
	return "user has skills: " + strings.Join(names, ", ")
}

func explain(careerName string, matchedCount, heldRequired, totalRequired int, semantic float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d skills matched for %s", matchedCount, careerName)
	if totalRequired > 0 {
		fmt.Fprintf(&sb, ", %d of %d required skills held", heldRequired, totalRequired)
	}
	if semantic > semanticBonusFloor {
		sb.WriteString(", strong semantic affinity")
	}
	return sb.String()
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
