// Package resume scores already-extracted resume features for ATS readiness
// and career fit. Parsing files is the external collaborator's job; this
// package never opens files.
package resume

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/types"
)

// Composite weights for the four sub-scores. They sum to 1.0; tests assert
// exact composites for literal inputs.
const (
	formattingWeight = 0.25
	contentWeight    = 0.35
	keywordWeight    = 0.25
	actionVerbWeight = 0.15
)

// Formatting sub-score point allocation.
const (
	pointsPerSection  = 8  // 5 sections reach the 40-point section budget
	sectionBudget     = 40
	pointsPerBullet   = 2 // 10 bullets reach the 20-point bullet budget
	bulletBudget      = 20
	lineBudgetFull    = 20 // line count >= 20
	lineBudgetPartial = 10 // line count >= 10
	lengthBudget      = 20 // word count within [250, 1000]
	lengthPartial     = 10 // word count within [100, 250)
)

// Action-verb scoring: the ratio of detected verbs to bullets (or estimated
// sentences) is capped at actionVerbCap before scaling to 100.
const (
	actionVerbCap    = 0.8
	wordsPerSentence = 20 // crude sentence estimate when no bullets exist
)

// Suggestion thresholds per sub-score.
const (
	formattingFloor = 70
	contentFloor    = 70
	keywordFloor    = 60
	actionVerbFloor = 60
)

// DefaultMaxSuggestions caps the deduplicated suggestion list.
const DefaultMaxSuggestions = 5

// DefaultMaxCareerFits caps the per-career fit ranking in a resume score.
const DefaultMaxCareerFits = 5

// Engine scores resume features against the catalog, reusing the matching
// engine for per-career fit.
type Engine struct {
	cat            *catalog.Catalog
	matcher        *matching.Engine
	maxSuggestions int
	maxFits        int
}

// New creates a resume scoring engine.
func New(cat *catalog.Catalog, matcher *matching.Engine) *Engine {
	return &Engine{
		cat:            cat,
		matcher:        matcher,
		maxSuggestions: DefaultMaxSuggestions,
		maxFits:        DefaultMaxCareerFits,
	}
}

// Score computes the composite resume score. targetCareerID selects the
// keyword list; when empty, the top fitted career's keywords are used.
func (e *Engine) Score(ctx context.Context, features types.ResumeFeatures, targetCareerID string) (*types.ResumeScore, error) {
	fits, err := e.matcher.MatchSkillIDs(ctx, features.SkillIDs)
	if err != nil {
		return nil, fmt.Errorf("resume career fit: %w", err)
	}
	if len(fits) > e.maxFits {
		fits = fits[:e.maxFits]
	}

	if targetCareerID == "" && len(fits) > 0 {
		targetCareerID = fits[0].CareerID
	}

	technical, soft := e.splitByCategory(features.SkillIDs)

	breakdown := types.ResumeBreakdown{
		Formatting: formattingScore(features),
		Content:    contentScore(features, technical, soft),
		Keyword:    e.keywordScore(features, targetCareerID),
		ActionVerb: actionVerbScore(features),
	}

	overall := breakdown.Formatting*formattingWeight +
		breakdown.Content*contentWeight +
		breakdown.Keyword*keywordWeight +
		breakdown.ActionVerb*actionVerbWeight

	score := &types.ResumeScore{
		Overall:      round1(overall),
		Breakdown:    breakdown,
		Suggestions:  e.suggestions(breakdown, technical, soft, fits),
		Strengths:    strengths(features, technical, soft, fits),
		Improvements: improvements(features, fits),
		CareerFits:   fits,
	}
	return score, nil
}

// splitByCategory counts extracted skills per catalog category. Unknown ids
// are ignored; the parser may extract tokens the vocabulary lacks.
func (e *Engine) splitByCategory(skillIDs []string) (technical, soft int) {
	for _, id := range skillIDs {
		skill, ok := e.cat.Skill(id)
		if !ok {
			continue
		}
		if skill.Category == types.CategorySoft {
			soft++
		} else {
			technical++
		}
	}
	return technical, soft
}

func formattingScore(f types.ResumeFeatures) float64 {
	score := 0.0

	sectionScore := float64(f.SectionCount * pointsPerSection)
	if sectionScore > sectionBudget {
		sectionScore = sectionBudget
	}
	score += sectionScore

	bulletScore := float64(f.BulletCount * pointsPerBullet)
	if bulletScore > bulletBudget {
		bulletScore = bulletBudget
	}
	score += bulletScore

	switch {
	case f.LineCount >= 20:
		score += lineBudgetFull
	case f.LineCount >= 10:
		score += lineBudgetPartial
	}

	switch {
	case f.WordCount >= 250 && f.WordCount <= 1000:
		score += lengthBudget
	case f.WordCount >= 100:
		score += lengthPartial
	}

	return clamp100(score)
}

// contentIndicators are impact words whose presence raises the content score.
var contentIndicators = []string{
	"experience", "project", "achievement", "result", "impact",
	"responsibility", "goal", "objective", "delivered", "improved",
}

func contentScore(f types.ResumeFeatures, technical, soft int) float64 {
	score := 0.0

	total := technical + soft
	switch {
	case total >= 10:
		score += 30
	case total >= 5:
		score += 20
	case total >= 3:
		score += 10
	}

	switch {
	case technical > 0 && soft > 0:
		score += 20
	case technical > 0 || soft > 0:
		score += 10
	}

	switch {
	case f.WordCount >= 300:
		score += 25
	case f.WordCount >= 200:
		score += 15
	case f.WordCount >= 100:
		score += 10
	}

	text := strings.ToLower(f.RawText)
	hits := 0
	for _, ind := range contentIndicators {
		if strings.Contains(text, ind) {
			hits++
		}
	}
	indicatorScore := float64(hits * 5)
	if indicatorScore > 25 {
		indicatorScore = 25
	}
	score += indicatorScore

	return clamp100(score)
}

// keywordScore measures overlap between the resume text and the target
// career's keyword table, weighted when the table carries weights.
func (e *Engine) keywordScore(f types.ResumeFeatures, careerID string) float64 {
	if careerID == "" {
		return 0
	}
	keywords := e.cat.KeywordsFor(careerID)
	if len(keywords) == 0 {
		return 0
	}

	text := strings.ToLower(f.RawText)
	matchedWeight := 0.0
	totalWeight := 0.0
	for _, kw := range keywords {
		w := kw.Weight
		if w <= 0 {
			w = 1
		}
		totalWeight += w
		if strings.Contains(text, strings.ToLower(kw.Keyword)) {
			matchedWeight += w
		}
	}
	return clamp100(matchedWeight / totalWeight * 100)
}

func actionVerbScore(f types.ResumeFeatures) float64 {
	denom := f.BulletCount
	if denom == 0 {
		denom = f.WordCount / wordsPerSentence
	}
	if denom == 0 {
		return 0
	}

	ratio := float64(len(f.ActionVerbs)) / float64(denom)
	if ratio > actionVerbCap {
		ratio = actionVerbCap
	}
	return clamp100(ratio / actionVerbCap * 100)
}

// suggestions fires threshold rules per sub-score, deduplicates by category
// and text, and caps the list. High-priority entries sort first.
func (e *Engine) suggestions(b types.ResumeBreakdown, technical, soft int, fits []types.MatchResult) []types.Suggestion {
	var out []types.Suggestion

	if b.Formatting < formattingFloor {
		out = append(out, types.Suggestion{
			Category: "formatting",
			Priority: "high",
			Text:     "Improve resume structure with clear sections and bullet points",
			Details:  "Add sections like Summary, Experience, Skills, Education, and Projects",
		})
	}
	if b.Content < contentFloor {
		out = append(out, types.Suggestion{
			Category: "content",
			Priority: "high",
			Text:     "Add more specific achievements and quantifiable results",
			Details:  "Include metrics, percentages, and specific outcomes from your work",
		})
	}
	if b.Keyword < keywordFloor && len(fits) > 0 && len(fits[0].MissingSkills) > 0 {
		names := make([]string, 0, len(fits[0].MissingSkills))
		for _, m := range fits[0].MissingSkills {
			names = append(names, m.Name)
		}
		out = append(out, types.Suggestion{
			Category: "keywords",
			Priority: "medium",
			Text:     "Incorporate missing keywords: " + strings.Join(names, ", "),
			Details:  "Add these skills naturally throughout your resume",
		})
	}
	if b.ActionVerb < actionVerbFloor {
		out = append(out, types.Suggestion{
			Category: "action_verbs",
			Priority: "medium",
			Text:     "Use more action verbs to start bullet points",
			Details:  "Examples: Developed, Implemented, Designed, Managed, Led, Analyzed",
		})
	}
	if technical == 0 {
		out = append(out, types.Suggestion{
			Category: "skills",
			Priority: "high",
			Text:     "Add technical skills relevant to your target role",
			Details:  "Include programming languages, tools, and technologies",
		})
	}
	if soft == 0 {
		out = append(out, types.Suggestion{
			Category: "skills",
			Priority: "medium",
			Text:     "Include soft skills like communication and teamwork",
			Details:  "Add skills like Leadership, Problem Solving, Communication",
		})
	}

	out = dedupe(out)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority == "high" && out[j].Priority != "high"
	})
	if len(out) > e.maxSuggestions {
		out = out[:e.maxSuggestions]
	}
	return out
}

func dedupe(in []types.Suggestion) []types.Suggestion {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		key := s.Category + "|" + s.Text
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func strengths(f types.ResumeFeatures, technical, soft int, fits []types.MatchResult) []string {
	var out []string
	if total := technical + soft; total >= 8 {
		out = append(out, fmt.Sprintf("Strong skill diversity (%d skills identified)", total))
	}
	if technical >= 5 {
		out = append(out, fmt.Sprintf("Strong technical background (%d technical skills)", technical))
	}
	if soft >= 3 {
		out = append(out, fmt.Sprintf("Good soft skills coverage (%d soft skills)", soft))
	}
	if len(fits) > 0 {
		switch {
		case fits[0].MatchPercentage >= 80:
			out = append(out, "Excellent fit for "+fits[0].CareerName)
		case fits[0].MatchPercentage >= 60:
			out = append(out, "Good potential for "+fits[0].CareerName)
		}
	}
	if f.WordCount >= 300 {
		out = append(out, "Comprehensive content coverage")
	}
	return out
}

func improvements(f types.ResumeFeatures, fits []types.MatchResult) []string {
	var out []string
	if len(fits) > 0 && len(fits[0].MissingSkills) > 0 {
		out = append(out, "Critical skill gaps for "+fits[0].CareerName)
	}
	if f.WordCount < 200 {
		out = append(out, "Resume content could be more detailed")
	}
	if f.BulletCount < 5 {
		out = append(out, "Add more bullet points for better readability")
	}
	return out
}

func clamp100(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
