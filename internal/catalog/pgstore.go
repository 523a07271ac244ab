package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-advisor/internal/types"
)

// LoadPostgres reads a dataset snapshot hosted in Postgres. The tables mirror
// the JSON snapshot files; the same Build validation applies afterwards, so
// referential errors surface before serving regardless of source.
func LoadPostgres(ctx context.Context, databaseURL string) (*Snapshot, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to dataset database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping dataset database: %w", err)
	}

	var snap Snapshot
	if err := pool.QueryRow(ctx,
		`SELECT version FROM dataset_meta ORDER BY loaded_at DESC LIMIT 1`,
	).Scan(&snap.Version); err != nil {
		return nil, fmt.Errorf("read dataset version: %w", err)
	}

	// The tables are independent; fetch them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Skills, err = loadSkills(gctx, pool)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Careers, err = loadCareers(gctx, pool)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Peers, err = loadPeers(gctx, pool)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Keywords, err = loadKeywords(gctx, pool)
		return err
	})
	g.Go(func() error {
		var err error
		snap.QA, err = loadQA(gctx, pool)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func loadSkills(ctx context.Context, pool *pgxpool.Pool) ([]types.Skill, error) {
	rows, err := pool.Query(ctx,
		`SELECT id, name, category, class, synonyms FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Class, &s.Synonyms); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func loadCareers(ctx context.Context, pool *pgxpool.Pool) ([]types.Career, error) {
	rows, err := pool.Query(ctx,
		`SELECT id, name, description FROM careers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query careers: %w", err)
	}
	careers := make(map[string]*types.Career)
	var order []string
	for rows.Next() {
		var c types.Career
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan career: %w", err)
		}
		careers[c.ID] = &c
		order = append(order, c.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reqRows, err := pool.Query(ctx,
		`SELECT career_id, skill_id, importance, tier, difficulty
		 FROM skill_requirements ORDER BY career_id, importance DESC, skill_id`)
	if err != nil {
		return nil, fmt.Errorf("query skill requirements: %w", err)
	}
	defer reqRows.Close()
	for reqRows.Next() {
		var careerID string
		var req types.SkillRequirement
		if err := reqRows.Scan(&careerID, &req.SkillID, &req.Importance, &req.Tier, &req.Difficulty); err != nil {
			return nil, fmt.Errorf("scan skill requirement: %w", err)
		}
		career, ok := careers[careerID]
		if !ok {
			// Build rejects the snapshot later; keep the dangling row visible.
			careers[careerID] = &types.Career{ID: careerID, Requirements: []types.SkillRequirement{req}}
			order = append(order, careerID)
			continue
		}
		career.Requirements = append(career.Requirements, req)
	}
	if err := reqRows.Err(); err != nil {
		return nil, err
	}

	out := make([]types.Career, 0, len(order))
	for _, id := range order {
		out = append(out, *careers[id])
	}
	return out, nil
}

func loadPeers(ctx context.Context, pool *pgxpool.Pool) ([]types.PeerProfile, error) {
	rows, err := pool.Query(ctx,
		`SELECT career_id, skill_ids, experience_years, salary, COALESCE(education, '')
		 FROM peer_profiles`)
	if err != nil {
		return nil, fmt.Errorf("query peer profiles: %w", err)
	}
	defer rows.Close()

	var peers []types.PeerProfile
	for rows.Next() {
		var p types.PeerProfile
		if err := rows.Scan(&p.CareerID, &p.SkillIDs, &p.ExperienceYears, &p.Salary, &p.Education); err != nil {
			return nil, fmt.Errorf("scan peer profile: %w", err)
		}
		peers = append(peers, p)
	}
	return peers, rows.Err()
}

func loadKeywords(ctx context.Context, pool *pgxpool.Pool) ([]CareerKeyword, error) {
	rows, err := pool.Query(ctx,
		`SELECT career_id, keyword, COALESCE(weight, 0) FROM career_keywords ORDER BY career_id, keyword`)
	if err != nil {
		return nil, fmt.Errorf("query career keywords: %w", err)
	}
	defer rows.Close()

	var keywords []CareerKeyword
	for rows.Next() {
		var kw CareerKeyword
		if err := rows.Scan(&kw.CareerID, &kw.Keyword, &kw.Weight); err != nil {
			return nil, fmt.Errorf("scan career keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

func loadQA(ctx context.Context, pool *pgxpool.Pool) ([]QARecord, error) {
	rows, err := pool.Query(ctx,
		`SELECT question, answer, COALESCE(category, ''), tags, confidence FROM qa_records`)
	if err != nil {
		return nil, fmt.Errorf("query qa records: %w", err)
	}
	defer rows.Close()

	var records []QARecord
	for rows.Next() {
		var rec QARecord
		if err := rows.Scan(&rec.Question, &rec.Answer, &rec.Category, &rec.Tags, &rec.Confidence); err != nil {
			return nil, fmt.Errorf("scan qa record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
