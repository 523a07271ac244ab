package types

// GapSkill is one skill entry in a gap report, tagged with its stored
// tier and difficulty from the catalog.
type GapSkill struct {
	SkillID    string        `json:"skill_id"`
	Name       string        `json:"name"`
	Importance int           `json:"importance"`
	Difficulty Level         `json:"difficulty"`
	Category   SkillCategory `json:"category"`
}

// HeldSkill is a career requirement the user already satisfies.
type HeldSkill struct {
	SkillID    string `json:"skill_id"`
	Name       string `json:"name"`
	Importance int    `json:"importance"`
	Tier       Tier   `json:"tier"`
	Level      Level  `json:"level"` // the user's level, not the requirement difficulty
}

// GapReport quantifies the distance between a user skill set and one
// target career. Completion is importance-weighted over required skills only.
// When the career has no required importance, CompletionDefined is false and
// Completion carries no meaning; consumers must special-case it.
type GapReport struct {
	CareerID           string     `json:"career_id"`
	CareerName         string     `json:"career_name"`
	Completion         float64    `json:"completion_percentage"` // 0-100 when defined
	CompletionDefined  bool       `json:"completion_defined"`
	RequiredCompletion float64    `json:"required_completion"` // 0-100, count-based
	OptionalCoverage   float64    `json:"optional_coverage"`   // 0-100, count-based
	Held               []HeldSkill `json:"held_skills"`
	RequiredMissing    []GapSkill `json:"required_missing"` // importance desc, easier difficulty first on ties
	OptionalMissing    []GapSkill `json:"optional_missing"`
	SoftGaps           []GapSkill `json:"soft_skill_gaps"`
	TotalRequired      int        `json:"total_required"`
	TotalOptional      int        `json:"total_optional"`
}
