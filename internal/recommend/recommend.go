// Package recommend composes the individual engines into one advisory
// bundle: career matches, the gap and peer comparison for a target career,
// an optional resume score and a phased learning path.
package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-advisor/internal/benchmark"
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/gap"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/normalize"
	"github.com/jonathan/career-advisor/internal/resume"
	"github.com/jonathan/career-advisor/internal/types"
)

// DefaultMaxPriority caps the priority skill list in a bundle.
const DefaultMaxPriority = 5

// Request is one advisory request. RawSkills are free-text and normalized
// once; TargetCareerID, Resume, ExperienceYears and Salary are optional.
type Request struct {
	RawSkills       []string
	TargetCareerID  string
	Resume          *types.ResumeFeatures
	ExperienceYears *float64
	Salary          *int
}

// Composer wires the engines together. All fields are required except the
// logger, which falls back to slog.Default.
type Composer struct {
	cat        *catalog.Catalog
	normalizer *normalize.Normalizer
	matcher    *matching.Engine
	gaps       *gap.Engine
	peers      *benchmark.Engine
	resumes    *resume.Engine
	logger     *slog.Logger

	maxPriority int
}

// New creates a Composer over already-constructed engines.
func New(cat *catalog.Catalog, normalizer *normalize.Normalizer, matcher *matching.Engine,
	gaps *gap.Engine, peers *benchmark.Engine, resumes *resume.Engine, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		cat:         cat,
		normalizer:  normalizer,
		matcher:     matcher,
		gaps:        gaps,
		peers:       peers,
		resumes:     resumes,
		logger:      logger,
		maxPriority: DefaultMaxPriority,
	}
}

// Recommend runs the full pipeline for one request.
//
// Raw skills are normalized exactly once; every engine sees the same skill
// map. An explicit target career wins over the top match. Matching and
// resume scoring run concurrently since neither depends on the other.
// Recoverable input problems become warnings on the bundle, not errors.
func (c *Composer) Recommend(ctx context.Context, req Request) (*types.RecommendationBundle, error) {
	if req.TargetCareerID != "" {
		if _, ok := c.cat.Career(req.TargetCareerID); !ok {
			return nil, fmt.Errorf("%w: %q", gap.ErrCareerNotFound, req.TargetCareerID)
		}
	}

	norm := c.normalizer.Normalize(req.RawSkills)

	bundle := &types.RecommendationBundle{
		RequestID: uuid.NewString(),
		Warnings:  norm.Warnings,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := c.matcher.Match(gctx, norm.Skills)
		if err != nil {
			return fmt.Errorf("match: %w", err)
		}
		bundle.CareerMatches = matches
		return nil
	})
	if req.Resume != nil {
		g.Go(func() error {
			score, err := c.resumes.Score(gctx, *req.Resume, req.TargetCareerID)
			if err != nil {
				return fmt.Errorf("resume score: %w", err)
			}
			bundle.Resume = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	target := req.TargetCareerID
	if target == "" && len(bundle.CareerMatches) > 0 {
		target = bundle.CareerMatches[0].CareerID
	}
	bundle.TargetCareerID = target
	if target == "" {
		bundle.Warnings = append(bundle.Warnings, types.Warning{
			Code:    "no_target_career",
			Message: "no career could be selected as a target",
		})
		return bundle, nil
	}

	report, err := c.gaps.Report(norm.Skills, target)
	if err != nil {
		return nil, fmt.Errorf("gap report: %w", err)
	}
	bundle.Gap = report
	if !report.CompletionDefined {
		bundle.Warnings = append(bundle.Warnings, types.Warning{
			Code:    "completion_undefined",
			Message: fmt.Sprintf("career %q has no weighted required skills", target),
		})
	}

	comparison, err := c.peers.Compare(benchmark.Input{
		Skills:          norm.Skills,
		ExperienceYears: req.ExperienceYears,
		Salary:          req.Salary,
	}, target)
	if err != nil {
		return nil, fmt.Errorf("peer comparison: %w", err)
	}
	bundle.Benchmark = comparison
	if !comparison.Sufficient {
		bundle.Warnings = append(bundle.Warnings, types.Warning{
			Code:    "insufficient_peer_data",
			Message: fmt.Sprintf("no peer profiles recorded for career %q", target),
		})
	}

	bundle.PrioritySkills = prioritySkills(report, c.maxPriority)
	bundle.LearningPath = learningPath(report)

	c.logger.Info("recommendation composed",
		slog.String("request_id", bundle.RequestID),
		slog.String("target_career", target),
		slog.Int("matches", len(bundle.CareerMatches)),
		slog.Int("warnings", len(bundle.Warnings)))
	return bundle, nil
}

// prioritySkills takes the top missing required skills from the gap report.
// The report already orders them importance-first with quick wins breaking
// ties.
func prioritySkills(report *types.GapReport, limit int) []types.GapSkill {
	if len(report.RequiredMissing) <= limit {
		return report.RequiredMissing
	}
	return report.RequiredMissing[:limit]
}

// learningPath groups all missing skills into difficulty phases. Phases with
// no skills are omitted.
func learningPath(report *types.GapReport) *types.LearningPath {
	missing := make([]types.GapSkill, 0, len(report.RequiredMissing)+len(report.OptionalMissing))
	missing = append(missing, report.RequiredMissing...)
	missing = append(missing, report.OptionalMissing...)
	if len(missing) == 0 {
		return nil
	}

	phases := []types.LearningPhase{
		{Name: "Foundation", Level: types.LevelBeginner},
		{Name: "Intermediate", Level: types.LevelIntermediate},
		{Name: "Advanced", Level: types.LevelAdvanced},
	}
	for _, skill := range missing {
		for i := range phases {
			if skill.Difficulty == phases[i].Level {
				phases[i].Skills = append(phases[i].Skills, skill)
				break
			}
		}
	}

	path := &types.LearningPath{CareerID: report.CareerID}
	for _, phase := range phases {
		if len(phase.Skills) > 0 {
			path.Phases = append(path.Phases, phase)
		}
	}
	if len(path.Phases) == 0 {
		return nil
	}
	return path
}
