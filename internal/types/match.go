package types

// MissingSkill is a career requirement the user does not hold.
type MissingSkill struct {
	SkillID    string `json:"skill_id"`
	Name       string `json:"name"`
	Importance int    `json:"importance"`
	Tier       Tier   `json:"tier"`
	Difficulty Level  `json:"difficulty"`
}

// MatchComponents breaks down how a match percentage was assembled.
type MatchComponents struct {
	WeightedOverlap  float64 `json:"weighted_overlap"`  // 0-100, importance-weighted skill overlap
	RequiredCoverage float64 `json:"required_coverage"` // 0-100, fraction of required skills held
	Semantic         float64 `json:"semantic"`          // 0-1, similarity between skill-name texts
	Bonus            float64 `json:"bonus"`             // coverage and similarity bonuses applied
}

// MatchResult scores one career against a user skill set.
// Produced fresh per request, never persisted.
type MatchResult struct {
	CareerID        string          `json:"career_id"`
	CareerName      string          `json:"career_name"`
	MatchPercentage float64         `json:"match_percentage"` // 0-100
	MatchedSkills   []string        `json:"matched_skills"`
	MissingSkills   []MissingSkill  `json:"missing_skills"`
	Components      MatchComponents `json:"components"`
	Explanation     string          `json:"explanation,omitempty"`
}
