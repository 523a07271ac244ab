package types

// ResumeFeatures is the structured output of the external file-parsing
// collaborator. The engine never opens resume files itself.
type ResumeFeatures struct {
	SkillIDs     []string `json:"skill_ids"` // canonical ids extracted by the parser
	RawText      string   `json:"raw_text"`
	WordCount    int      `json:"word_count"`
	CharCount    int      `json:"char_count"`
	LineCount    int      `json:"line_count"`
	SectionCount int      `json:"section_count"` // detected resume sections (summary, experience, ...)
	BulletCount  int      `json:"bullet_count"`
	ActionVerbs  []string `json:"action_verbs"` // distinct action verbs detected
}

// ResumeBreakdown holds the four independent sub-scores, each 0-100.
type ResumeBreakdown struct {
	Formatting float64 `json:"formatting_score"`
	Content    float64 `json:"content_score"`
	Keyword    float64 `json:"keyword_score"`
	ActionVerb float64 `json:"action_verb_score"`
}

// Suggestion is one threshold-triggered improvement hint.
type Suggestion struct {
	Category string `json:"category"`
	Priority string `json:"priority"` // high or medium
	Text     string `json:"suggestion"`
	Details  string `json:"details,omitempty"`
}

// ResumeScore is the composite ATS-readiness score with breakdown,
// ranked suggestions and per-career fit.
type ResumeScore struct {
	Overall      float64         `json:"overall_score"` // 0-100, fixed-weight average of the breakdown
	Breakdown    ResumeBreakdown `json:"breakdown"`
	Suggestions  []Suggestion    `json:"suggestions"`
	Strengths    []string        `json:"strengths,omitempty"`
	Improvements []string        `json:"areas_for_improvement,omitempty"`
	CareerFits   []MatchResult   `json:"career_fits,omitempty"`
}
