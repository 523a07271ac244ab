package types

// Warning flags a recoverable input problem attached to a result.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LearningPhase groups missing skills by difficulty for sequential study.
type LearningPhase struct {
	Name   string     `json:"name"` // Foundation, Intermediate, Advanced
	Level  Level      `json:"level"`
	Skills []GapSkill `json:"skills"`
}

// LearningPath is the seed of a study plan derived from a gap report.
type LearningPath struct {
	CareerID string          `json:"career_id"`
	Phases   []LearningPhase `json:"phases"`
}

// RecommendationBundle aggregates the engine outputs for one request.
type RecommendationBundle struct {
	RequestID      string          `json:"request_id"`
	TargetCareerID string          `json:"target_career_id"` // explicit user choice or the top match
	CareerMatches  []MatchResult   `json:"career_matches"`
	Gap            *GapReport      `json:"gap_report,omitempty"`
	Benchmark      *PeerComparison `json:"peer_benchmark,omitempty"`
	Resume         *ResumeScore    `json:"resume_score,omitempty"`
	PrioritySkills []GapSkill      `json:"priority_skills,omitempty"`
	LearningPath   *LearningPath   `json:"learning_path,omitempty"`
	Warnings       []Warning       `json:"warnings,omitempty"`
}
