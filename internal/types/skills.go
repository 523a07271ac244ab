// Package types provides type definitions for structured data exchanged between the career-advisor engines.
package types

// SkillCategory classifies a skill as technical or soft.
type SkillCategory string

// Skill categories.
const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
)

// SkillClass groups skills for default proficiency assignment.
// Every skill in the vocabulary carries a class, so new skills inherit a
// default level without code changes.
type SkillClass string

// Skill classes.
const (
	ClassLanguage  SkillClass = "language"  // general-purpose programming languages
	ClassFramework SkillClass = "framework" // advanced specialized tools and frameworks
	ClassUtility   SkillClass = "utility"   // basic tools and utilities
	ClassConcept   SkillClass = "concept"   // methods and domain concepts
	ClassSoft      SkillClass = "soft"      // interpersonal skills
)

// Level is a proficiency or difficulty level.
type Level string

// Proficiency levels, ordered Beginner < Intermediate < Advanced.
const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Rank returns the ordinal position of the level for sorting.
// Unknown levels sort after Advanced.
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 3
	}
}

// Tier marks a skill requirement as required or optional for a career.
type Tier string

// Requirement tiers.
const (
	TierRequired Tier = "required"
	TierOptional Tier = "optional"
)

// Skill is one entry in the canonical skill vocabulary. Immutable once loaded.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Class    SkillClass    `json:"class"`
	Synonyms []string      `json:"synonyms,omitempty"`
}

// SkillRequirement is a (career, skill) pair with importance weighting.
type SkillRequirement struct {
	SkillID    string `json:"skill_id"`
	Importance int    `json:"importance"` // 1-10
	Tier       Tier   `json:"tier"`
	Difficulty Level  `json:"difficulty"`
}

// Career describes one career path and its ordered skill requirements.
type Career struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	Requirements []SkillRequirement `json:"requirements"`
}

// RequiredImportanceSum returns the summed importance of required skills.
// A zero sum means weighted completion for this career is undefined.
func (c *Career) RequiredImportanceSum() int {
	sum := 0
	for _, req := range c.Requirements {
		if req.Tier == TierRequired {
			sum += req.Importance
		}
	}
	return sum
}

// UserSkill is one normalized skill held by a user.
type UserSkill struct {
	SkillID  string `json:"skill_id"`
	Level    Level  `json:"level"`
	Explicit bool   `json:"explicit"` // level was annotated by the user rather than defaulted
}

// UserSkills maps canonical skill id to the user's proficiency.
type UserSkills map[string]UserSkill

// IDs returns the skill ids in the map, unordered.
func (u UserSkills) IDs() []string {
	ids := make([]string, 0, len(u))
	for id := range u {
		ids = append(ids, id)
	}
	return ids
}
