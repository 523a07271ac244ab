package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-advisor/internal/benchmark"
	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/jonathan/career-advisor/internal/types"
)

// SkillsRequest carries the free-text skill list shared by several endpoints.
type SkillsRequest struct {
	Skills []string `json:"skills"`
}

// MatchResponse represents the response for /v1/match
type MatchResponse struct {
	Matches      []types.MatchResult `json:"matches"`
	Unrecognized []string            `json:"unrecognized,omitempty"`
	Warnings     []types.Warning     `json:"warnings,omitempty"`
}

// GapRequest represents the request body for /v1/gap
type GapRequest struct {
	Skills   []string `json:"skills"`
	CareerID string   `json:"career_id"`
}

// GapResponse represents the response for /v1/gap
type GapResponse struct {
	Report       *types.GapReport `json:"report"`
	Unrecognized []string         `json:"unrecognized,omitempty"`
	Warnings     []types.Warning  `json:"warnings,omitempty"`
}

// ResumeScoreRequest represents the request body for /v1/resume-score.
// Features are extracted client-side; the server never parses resume files.
type ResumeScoreRequest struct {
	Features       types.ResumeFeatures `json:"features"`
	TargetCareerID string               `json:"target_career_id,omitempty"`
}

// BenchmarkRequest represents the request body for /v1/benchmark
type BenchmarkRequest struct {
	Skills          []string `json:"skills"`
	CareerID        string   `json:"career_id"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	Salary          *int     `json:"salary,omitempty"`
}

// RecommendRequest represents the request body for /v1/recommend
type RecommendRequest struct {
	Skills          []string              `json:"skills"`
	TargetCareerID  string                `json:"target_career_id,omitempty"`
	Resume          *types.ResumeFeatures `json:"resume,omitempty"`
	ExperienceYears *float64              `json:"experience_years,omitempty"`
	Salary          *int                  `json:"salary,omitempty"`
}

// AskRequest represents the request body for /v1/ask
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse represents the response for /v1/ask. Answered is false when no
// stored record clears the relevance floor.
type AskResponse struct {
	Answered bool   `json:"answered"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Category string `json:"category,omitempty"`
	// Confidence is the stored editorial value of the matched record.
	Confidence float64 `json:"confidence,omitempty"`
	Relevance  float64 `json:"relevance,omitempty"`
}

// CareerSummary is one row of the /v1/careers listing.
type CareerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	RequiredCount int    `json:"required_count"`
	OptionalCount int    `json:"optional_count"`
}

// handleMatch ranks every career for the submitted skills
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	norm := s.normalizer.Normalize(req.Skills)
	matches, err := s.matcher.Match(r.Context(), norm.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		Matches:      matches,
		Unrecognized: norm.Unrecognized,
		Warnings:     norm.Warnings,
	})
}

// handleGap reports the skill gap against one career
func (s *Server) handleGap(w http.ResponseWriter, r *http.Request) {
	var req GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CareerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "career_id is required")
		return
	}

	norm := s.normalizer.Normalize(req.Skills)
	report, err := s.gaps.Report(norm.Skills, req.CareerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GapResponse{
		Report:       report,
		Unrecognized: norm.Unrecognized,
		Warnings:     norm.Warnings,
	})
}

// handleResumeScore scores pre-extracted resume features
func (s *Server) handleResumeScore(w http.ResponseWriter, r *http.Request) {
	var req ResumeScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.TargetCareerID != "" {
		if _, ok := s.cat.Career(req.TargetCareerID); !ok {
			s.errorResponse(w, http.StatusNotFound, "unknown career: "+req.TargetCareerID)
			return
		}
	}

	score, err := s.resumes.Score(r.Context(), req.Features, req.TargetCareerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, score)
}

// handleBenchmark compares the user against the peers of one career
func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req BenchmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CareerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "career_id is required")
		return
	}

	norm := s.normalizer.Normalize(req.Skills)
	cmp, err := s.peers.Compare(benchmark.Input{
		Skills:          norm.Skills,
		ExperienceYears: req.ExperienceYears,
		Salary:          req.Salary,
	}, req.CareerID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, cmp)
}

// handleRecommend runs the full advisory pipeline
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bundle, err := s.composer.Recommend(r.Context(), recommend.Request{
		RawSkills:       req.Skills,
		TargetCareerID:  req.TargetCareerID,
		Resume:          req.Resume,
		ExperienceYears: req.ExperienceYears,
		Salary:          req.Salary,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, bundle)
}

// handleAsk answers a free-text career question from the Q&A table
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, ok := s.answers.Lookup(req.Question)
	if !ok {
		s.jsonResponse(w, http.StatusOK, AskResponse{Answered: false})
		return
	}
	s.jsonResponse(w, http.StatusOK, AskResponse{
		Answered:   true,
		Question:   answer.Question,
		Answer:     answer.Answer,
		Category:   answer.Category,
		Confidence: answer.Confidence,
		Relevance:  answer.Relevance,
	})
}

// handleListCareers lists the catalog's careers
func (s *Server) handleListCareers(w http.ResponseWriter, _ *http.Request) {
	careers := s.cat.Careers()
	out := make([]CareerSummary, 0, len(careers))
	for _, career := range careers {
		summary := CareerSummary{
			ID:          career.ID,
			Name:        career.Name,
			Description: career.Description,
		}
		for _, req := range career.Requirements {
			if req.Tier == types.TierRequired {
				summary.RequiredCount++
			} else {
				summary.OptionalCount++
			}
		}
		out = append(out, summary)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"version": s.cat.Version(),
		"careers": out,
	})
}
