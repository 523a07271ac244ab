// Package normalize maps free-text skill strings to canonical skill ids
// with a proficiency level. Resolution is exact match, then synonym lookup,
// then fuzzy match; tokens below the fuzzy threshold are reported as
// unrecognized rather than merged into an arbitrary skill.
package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// DefaultFuzzyThreshold is the minimum similarity ratio for a fuzzy match to
// be accepted. At 0.80 a single edit on a five-letter name still resolves,
// while short unrelated words stay unrecognized.
const DefaultFuzzyThreshold = 0.80

// Level annotation forms: "Skill (Level)", "Skill - Level", "Skill : Level".
var (
	parenLevelRe = regexp.MustCompile(`(?i)^(.+?)\s*\(\s*(Beginner|Intermediate|Advanced)\s*\)\s*$`)
	sepLevelRe   = regexp.MustCompile(`(?i)^(.+?)\s*[-:]\s*(Beginner|Intermediate|Advanced)\s*$`)
)

// defaultLevels assigns a proficiency default per skill class. The policy is
// total: every class has an entry and unknown classes fall back to Beginner,
// so new vocabulary entries inherit a default without code changes.
var defaultLevels = map[types.SkillClass]types.Level{
	types.ClassLanguage:  types.LevelIntermediate,
	types.ClassFramework: types.LevelAdvanced,
	types.ClassUtility:   types.LevelBeginner,
	types.ClassConcept:   types.LevelIntermediate,
	types.ClassSoft:      types.LevelIntermediate,
}

// Result is the outcome of normalizing a batch of raw skill strings.
type Result struct {
	Skills       types.UserSkills
	Unrecognized []string
	Warnings     []types.Warning
}

// Normalizer resolves raw skill strings against the catalog vocabulary.
type Normalizer struct {
	cat       *catalog.Catalog
	threshold float64
}

// New creates a Normalizer with the given fuzzy threshold. A non-positive
// threshold selects DefaultFuzzyThreshold.
func New(cat *catalog.Catalog, threshold float64) *Normalizer {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &Normalizer{cat: cat, threshold: threshold}
}

// Normalize maps raw strings to a user skill map. Explicit level annotations
// win over defaults; among duplicates the last-seen entry wins unless an
// earlier entry was explicit and the later one is not.
func (n *Normalizer) Normalize(raw []string) Result {
	res := Result{Skills: make(types.UserSkills)}

	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, explicit, level := splitLevel(entry)

		id, ok := n.resolve(name)
		if !ok {
			res.Unrecognized = append(res.Unrecognized, name)
			res.Warnings = append(res.Warnings, types.Warning{
				Code:    "unrecognized_skill",
				Message: fmt.Sprintf("skill %q was not recognized and was ignored", name),
			})
			continue
		}

		if !explicit {
			level = n.DefaultLevel(id)
		}

		prev, seen := res.Skills[id]
		if seen && prev.Explicit && !explicit {
			continue // an explicit level never loses to an inferred default
		}
		res.Skills[id] = types.UserSkill{SkillID: id, Level: level, Explicit: explicit}
	}

	sort.Strings(res.Unrecognized)
	return res
}

// DefaultLevel returns the category-keyed default proficiency for a skill.
func (n *Normalizer) DefaultLevel(skillID string) types.Level {
	skill, ok := n.cat.Skill(skillID)
	if !ok {
		return types.LevelBeginner
	}
	if level, ok := defaultLevels[skill.Class]; ok {
		return level
	}
	return types.LevelBeginner
}

// resolve runs the resolution chain: exact canonical, synonym, fuzzy.
func (n *Normalizer) resolve(name string) (string, bool) {
	if id, ok := n.cat.ResolveName(name); ok {
		return id, true
	}
	return n.fuzzyResolve(name)
}

// fuzzyResolve finds the closest canonical name or synonym by normalized
// edit-distance similarity. The best candidate must clear the threshold;
// equal similarities resolve to the lexically smaller skill id so repeated
// calls stay deterministic.
func (n *Normalizer) fuzzyResolve(name string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return "", false
	}

	bestID := ""
	bestScore := 0.0
	for _, skill := range n.cat.Skills() {
		candidates := append([]string{skill.Name}, skill.Synonyms...)
		for _, cand := range candidates {
			score := similarity(target, strings.ToLower(cand))
			if score > bestScore || (score == bestScore && bestID != "" && skill.ID < bestID) {
				bestScore = score
				bestID = skill.ID
			}
		}
	}

	if bestScore >= n.threshold {
		return bestID, true
	}
	return "", false
}

// similarity is 1 - editDistance/maxLen, in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// splitLevel strips a trailing level annotation from a raw skill string.
func splitLevel(entry string) (name string, explicit bool, level types.Level) {
	if m := parenLevelRe.FindStringSubmatch(entry); m != nil {
		return strings.TrimSpace(m[1]), true, canonicalLevel(m[2])
	}
	if m := sepLevelRe.FindStringSubmatch(entry); m != nil {
		return strings.TrimSpace(m[1]), true, canonicalLevel(m[2])
	}
	return entry, false, ""
}

// canonicalLevel normalizes the case of a matched level word.
func canonicalLevel(raw string) types.Level {
	switch strings.ToLower(raw) {
	case "beginner":
		return types.LevelBeginner
	case "intermediate":
		return types.LevelIntermediate
	case "advanced":
		return types.LevelAdvanced
	default:
		return types.LevelBeginner
	}
}
