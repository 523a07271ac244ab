package types

// PeerProfile is one anonymized row of the reference population.
type PeerProfile struct {
	CareerID        string   `json:"career_id"`
	SkillIDs        []string `json:"skill_ids"`
	ExperienceYears float64  `json:"experience_years"`
	Salary          int      `json:"salary"`
	Education       string   `json:"education,omitempty"`
}

// SkillPrevalence reports what fraction of peers hold one skill.
type SkillPrevalence struct {
	SkillID    string  `json:"skill_id"`
	Name       string  `json:"name"`
	Prevalence float64 `json:"prevalence"` // 0-1 fraction of peers holding the skill
	UserHas    bool    `json:"user_has"`
}

// PeerStatistics summarizes the filtered peer population.
type PeerStatistics struct {
	TotalPeers         int     `json:"total_peers"`
	AvgExperienceYears float64 `json:"avg_experience_years"`
	AvgSalary          int     `json:"avg_salary"`
	MedianSalary       int     `json:"median_salary"`
	MinSalary          int     `json:"min_salary"`
	MaxSalary          int     `json:"max_salary"`
	AvgSkillCount      float64 `json:"avg_skill_count"`
}

// PeerComparison benchmarks a user against the peer population of one career.
// Sufficient is false when no peers exist for the career; all other fields are
// then zero-valued and must not be interpreted.
type PeerComparison struct {
	CareerID             string            `json:"career_id"`
	CareerName           string            `json:"career_name"`
	Sufficient           bool              `json:"sufficient_peer_data"`
	Statistics           PeerStatistics    `json:"statistics,omitempty"`
	Prevalence           []SkillPrevalence `json:"skill_prevalence,omitempty"`
	MissingCommon        []SkillPrevalence `json:"missing_common_skills,omitempty"`
	SkillCountPercentile float64           `json:"skill_count_percentile"`
	ExperiencePercentile *float64          `json:"experience_percentile,omitempty"` // nil when the user supplied no experience
	SalaryPercentile     *float64          `json:"salary_percentile,omitempty"`     // nil when the user supplied no salary
}
