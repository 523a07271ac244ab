// Package catalog builds and serves the in-memory, read-only view of the
// career dataset: careers with weighted skill requirements, the skill
// vocabulary with synonyms, the peer population and the Q&A table.
//
// A Catalog is built once at process start and never mutated afterwards,
// so it is safe for lock-free concurrent reads.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

// Catalog is the validated, indexed dataset. All lookups return copies or
// read-only views; callers must not mutate returned slices.
type Catalog struct {
	version string

	skills    map[string]types.Skill
	skillIDs  []string          // sorted
	nameIndex map[string]string // lowercased canonical name -> skill id
	synIndex  map[string]string // lowercased synonym -> skill id
	careers   map[string]types.Career
	careerIDs []string // sorted
	peers     map[string][]types.PeerProfile
	keywords  map[string][]CareerKeyword
	qa        []QARecord
}

// Build validates a snapshot and indexes it. Any referential or range error
// rejects the whole dataset: serving partial data is worse than not starting.
func Build(snap *Snapshot) (*Catalog, error) {
	if snap == nil {
		return nil, fmt.Errorf("catalog: nil snapshot")
	}

	c := &Catalog{
		version:   snap.Version,
		skills:    make(map[string]types.Skill, len(snap.Skills)),
		nameIndex: make(map[string]string, len(snap.Skills)),
		synIndex:  make(map[string]string),
		careers:   make(map[string]types.Career, len(snap.Careers)),
		peers:     make(map[string][]types.PeerProfile),
		keywords:  make(map[string][]CareerKeyword),
		qa:        snap.QA,
	}

	for _, skill := range snap.Skills {
		if skill.ID == "" {
			return nil, fmt.Errorf("catalog: skill with empty id (name %q)", skill.Name)
		}
		if _, dup := c.skills[skill.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate skill id %q", skill.ID)
		}
		if skill.Category != types.CategoryTechnical && skill.Category != types.CategorySoft {
			return nil, fmt.Errorf("catalog: skill %q has unknown category %q", skill.ID, skill.Category)
		}
		c.skills[skill.ID] = skill
		c.skillIDs = append(c.skillIDs, skill.ID)
		c.nameIndex[strings.ToLower(skill.Name)] = skill.ID
		for _, syn := range skill.Synonyms {
			c.synIndex[strings.ToLower(syn)] = skill.ID
		}
	}
	sort.Strings(c.skillIDs)

	for _, career := range snap.Careers {
		if career.ID == "" {
			return nil, fmt.Errorf("catalog: career with empty id (name %q)", career.Name)
		}
		if _, dup := c.careers[career.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate career id %q", career.ID)
		}
		seen := make(map[string]bool, len(career.Requirements))
		for _, req := range career.Requirements {
			if _, ok := c.skills[req.SkillID]; !ok {
				return nil, fmt.Errorf("catalog: career %q references unknown skill %q", career.ID, req.SkillID)
			}
			if seen[req.SkillID] {
				return nil, fmt.Errorf("catalog: career %q lists skill %q twice", career.ID, req.SkillID)
			}
			seen[req.SkillID] = true
			if req.Importance < 1 || req.Importance > 10 {
				return nil, fmt.Errorf("catalog: career %q skill %q importance %d out of range [1,10]",
					career.ID, req.SkillID, req.Importance)
			}
			if req.Tier != types.TierRequired && req.Tier != types.TierOptional {
				return nil, fmt.Errorf("catalog: career %q skill %q has unknown tier %q", career.ID, req.SkillID, req.Tier)
			}
			if req.Difficulty.Rank() > types.LevelAdvanced.Rank() {
				return nil, fmt.Errorf("catalog: career %q skill %q has unknown difficulty %q",
					career.ID, req.SkillID, req.Difficulty)
			}
		}
		c.careers[career.ID] = career
		c.careerIDs = append(c.careerIDs, career.ID)
	}
	sort.Strings(c.careerIDs)

	for _, peer := range snap.Peers {
		if _, ok := c.careers[peer.CareerID]; !ok {
			return nil, fmt.Errorf("catalog: peer profile references unknown career %q", peer.CareerID)
		}
		for _, id := range peer.SkillIDs {
			if _, ok := c.skills[id]; !ok {
				return nil, fmt.Errorf("catalog: peer profile (career %q) references unknown skill %q", peer.CareerID, id)
			}
		}
		c.peers[peer.CareerID] = append(c.peers[peer.CareerID], peer)
	}

	for _, kw := range snap.Keywords {
		if _, ok := c.careers[kw.CareerID]; !ok {
			return nil, fmt.Errorf("catalog: keyword %q references unknown career %q", kw.Keyword, kw.CareerID)
		}
		c.keywords[kw.CareerID] = append(c.keywords[kw.CareerID], kw)
	}

	return c, nil
}

// Version returns the dataset snapshot version string.
func (c *Catalog) Version() string { return c.version }

// Career returns the career with the given id.
func (c *Catalog) Career(id string) (types.Career, bool) {
	career, ok := c.careers[id]
	return career, ok
}

// Careers returns all careers ordered by id ascending.
func (c *Catalog) Careers() []types.Career {
	out := make([]types.Career, 0, len(c.careerIDs))
	for _, id := range c.careerIDs {
		out = append(out, c.careers[id])
	}
	return out
}

// Skill returns the vocabulary entry for a canonical skill id.
func (c *Catalog) Skill(id string) (types.Skill, bool) {
	skill, ok := c.skills[id]
	return skill, ok
}

// SkillName returns the display name for a skill id, or the id itself
// when unknown.
func (c *Catalog) SkillName(id string) string {
	if skill, ok := c.skills[id]; ok {
		return skill.Name
	}
	return id
}

// Skills returns the vocabulary ordered by skill id ascending.
func (c *Catalog) Skills() []types.Skill {
	out := make([]types.Skill, 0, len(c.skillIDs))
	for _, id := range c.skillIDs {
		out = append(out, c.skills[id])
	}
	return out
}

// SkillsByCategory returns the vocabulary entries of one category,
// ordered by skill id ascending.
func (c *Catalog) SkillsByCategory(cat types.SkillCategory) []types.Skill {
	var out []types.Skill
	for _, id := range c.skillIDs {
		if c.skills[id].Category == cat {
			out = append(out, c.skills[id])
		}
	}
	return out
}

// ResolveName maps a free-text skill name to a canonical id via exact
// canonical match, then synonym lookup. Fuzzy resolution lives in the
// normalizer, not here.
func (c *Catalog) ResolveName(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := c.nameIndex[key]; ok {
		return id, true
	}
	if _, ok := c.skills[key]; ok {
		return key, true
	}
	if id, ok := c.synIndex[key]; ok {
		return id, true
	}
	return "", false
}

// Requirements returns a career's requirements filtered by tier.
func (c *Catalog) Requirements(careerID string, tier types.Tier) []types.SkillRequirement {
	career, ok := c.careers[careerID]
	if !ok {
		return nil
	}
	var out []types.SkillRequirement
	for _, req := range career.Requirements {
		if req.Tier == tier {
			out = append(out, req)
		}
	}
	return out
}

// PeersFor returns the peer profiles recorded for a career.
func (c *Catalog) PeersFor(careerID string) []types.PeerProfile {
	return c.peers[careerID]
}

// KeywordsFor returns the keyword table rows for a career.
func (c *Catalog) KeywordsFor(careerID string) []CareerKeyword {
	return c.keywords[careerID]
}

// QARecords returns the Q&A table.
func (c *Catalog) QARecords() []QARecord {
	return c.qa
}
