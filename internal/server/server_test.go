package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func serverCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(&catalog.Snapshot{
		Version: "test-1",
		Skills: []types.Skill{
			{ID: "python", Name: "Python", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "sql", Name: "SQL", Category: types.CategoryTechnical, Class: types.ClassLanguage},
			{ID: "statistics", Name: "Statistics", Category: types.CategoryTechnical, Class: types.ClassConcept},
			{ID: "communication", Name: "Communication", Category: types.CategorySoft, Class: types.ClassSoft},
		},
		Careers: []types.Career{
			{
				ID:   "data-analyst",
				Name: "Data Analyst",
				Requirements: []types.SkillRequirement{
					{SkillID: "python", Importance: 8, Tier: types.TierRequired, Difficulty: types.LevelIntermediate},
					{SkillID: "sql", Importance: 9, Tier: types.TierRequired, Difficulty: types.LevelBeginner},
					{SkillID: "statistics", Importance: 7, Tier: types.TierRequired, Difficulty: types.LevelIntermediate},
					{SkillID: "communication", Importance: 5, Tier: types.TierOptional, Difficulty: types.LevelIntermediate},
				},
			},
		},
		Peers: []types.PeerProfile{
			{CareerID: "data-analyst", SkillIDs: []string{"python", "sql"}, ExperienceYears: 3, Salary: 70000},
			{CareerID: "data-analyst", SkillIDs: []string{"sql", "statistics"}, ExperienceYears: 5, Salary: 85000},
		},
		Keywords: []catalog.CareerKeyword{
			{CareerID: "data-analyst", Keyword: "sql", Weight: 2},
		},
		QA: []catalog.QARecord{
			{
				Question:   "Which skills matter for data analysis",
				Answer:     "SQL and statistics carry most analyst work.",
				Category:   "skills",
				Tags:       []string{"sql", "statistics"},
				Confidence: 85,
			},
		},
	})
	require.NoError(t, err)
	return cat
}

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(serverCatalog(t), Config{Port: 0, Logger: logger})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test-1", body["dataset_version"])
}

func TestMatchEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/match", SkillsRequest{
		Skills: []string{"Python", "SQL", "Klingon"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "data-analyst", body.Matches[0].CareerID)
	assert.Greater(t, body.Matches[0].MatchPercentage, 0.0)
	assert.Equal(t, []string{"Klingon"}, body.Unrecognized)
	require.Len(t, body.Warnings, 1)
	assert.Equal(t, "unrecognized_skill", body.Warnings[0].Code)
}

func TestMatchEndpoint_BadJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGapEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/gap", GapRequest{
		Skills:   []string{"Python"},
		CareerID: "data-analyst",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body GapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Report)
	assert.Equal(t, "data-analyst", body.Report.CareerID)
	assert.Len(t, body.Report.RequiredMissing, 2)
}

func TestGapEndpoint_CareerIDRequired(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/gap", GapRequest{Skills: []string{"Python"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGapEndpoint_UnknownCareer(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/gap", GapRequest{
		Skills:   []string{"Python"},
		CareerID: "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResumeScoreEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/resume-score", ResumeScoreRequest{
		Features: types.ResumeFeatures{
			SkillIDs:     []string{"python", "sql"},
			RawText:      "Delivered SQL reporting with measurable impact",
			WordCount:    320,
			LineCount:    25,
			SectionCount: 4,
			BulletCount:  6,
			ActionVerbs:  []string{"delivered", "built"},
		},
		TargetCareerID: "data-analyst",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body types.ResumeScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, body.Overall, 0.0)
	assert.NotEmpty(t, body.CareerFits)
}

func TestResumeScoreEndpoint_UnknownCareer(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/resume-score", ResumeScoreRequest{
		TargetCareerID: "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBenchmarkEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/benchmark", BenchmarkRequest{
		Skills:   []string{"Python", "SQL"},
		CareerID: "data-analyst",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body types.PeerComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Sufficient)
	assert.Equal(t, 2, body.Statistics.TotalPeers)
	assert.Nil(t, body.SalaryPercentile)
}

func TestBenchmarkEndpoint_CareerIDRequired(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/benchmark", BenchmarkRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/recommend", RecommendRequest{
		Skills: []string{"Python", "SQL"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body types.RecommendationBundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "data-analyst", body.TargetCareerID)
	assert.NotNil(t, body.Gap)
	assert.NotNil(t, body.Benchmark)
	assert.NotEmpty(t, body.RequestID)
}

func TestRecommendEndpoint_UnknownTarget(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/recommend", RecommendRequest{
		Skills:         []string{"Python"},
		TargetCareerID: "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAskEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/ask", AskRequest{
		Question: "which skills for data analysis",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Answered)
	assert.Equal(t, "SQL and statistics carry most analyst work.", body.Answer)
	assert.Equal(t, 85.0, body.Confidence)
	assert.Greater(t, body.Relevance, 0.0)
}

func TestAskEndpoint_NoMatchStillOK(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/ask", AskRequest{
		Question: "underwater basket weaving",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Answered)
	assert.Empty(t, body.Answer)
}

func TestAskEndpoint_QuestionRequired(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/ask", AskRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCareersEndpoint(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/careers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Version string          `json:"version"`
		Careers []CareerSummary `json:"careers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test-1", body.Version)
	require.Len(t, body.Careers, 1)
	assert.Equal(t, "data-analyst", body.Careers[0].ID)
	assert.Equal(t, 3, body.Careers[0].RequiredCount)
	assert.Equal(t, 1, body.Careers[0].OptionalCount)
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/match", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitHeaders(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/match", SkillsRequest{Skills: []string{"Python"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
}
