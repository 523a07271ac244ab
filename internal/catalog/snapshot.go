package catalog

import "github.com/jonathan/career-advisor/internal/types"

// Snapshot is the raw, unvalidated dataset as supplied by the dataset
// collaborator. Build turns it into a Catalog or rejects it whole.
type Snapshot struct {
	Version  string              `json:"version"`
	Skills   []types.Skill       `json:"skills"`
	Careers  []types.Career      `json:"careers"`
	Peers    []types.PeerProfile `json:"peers"`
	Keywords []CareerKeyword     `json:"keywords"`
	QA       []QARecord          `json:"qa"`
}

// CareerKeyword is one row of the career-keyword table used for
// resume keyword scoring.
type CareerKeyword struct {
	CareerID string  `json:"career_id"`
	Keyword  string  `json:"keyword"`
	Weight   float64 `json:"weight,omitempty"`
}

// QARecord is one (question-pattern, answer, confidence) row from the
// Q&A collaborator.
type QARecord struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Confidence float64  `json:"confidence"` // 0-100, stored confidence for the answer
}
