package cvanalysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yonatank/prepair/internal/llm"
	"github.com/yonatank/prepair/internal/store"
)

// Config controls the analysis call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns production analysis settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1536,
		Temperature: 0,
	}
}

// Analyzer scores a CV against a job description and persists the result.
type Analyzer struct {
	provider llm.Provider
	analyses store.AnalysisRepo
	cfg      Config
	now      func() time.Time
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(provider llm.Provider, analyses store.AnalysisRepo, cfg Config) *Analyzer {
	return &Analyzer{
		provider: provider,
		analyses: analyses,
		cfg:      cfg,
		now:      time.Now,
	}
}

// analysisOutput is the raw LLM response before validation.
type analysisOutput struct {
	MatchScore  float64  `json:"match_score"`
	Strengths   []string `json:"strengths"`
	Gaps        []string `json:"gaps"`
	Suggestions []string `json:"suggestions"`
}

// Analyze runs one CV-vs-JD analysis and appends the result for the
// user+job spec. Unlike judgment calls, a failure here is surfaced: the
// caller asked for this analysis explicitly and gets nothing silently
// degraded instead.
func (a *Analyzer) Analyze(ctx context.Context, userID, jobSpecID, cvText, jdText string) (*store.AnalysisRecord, error) {
	ctx = llm.WithPurpose(ctx, "cv-analysis")

	req := llm.Request{
		System: analyzerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalyzerMessage(cvText, jdText)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("cv analysis: %w", err)
	}

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse cv analysis response: %w", err)
	}
	if raw.MatchScore < 0 || raw.MatchScore > 1 {
		return nil, fmt.Errorf("cv analysis match score %v out of range", raw.MatchScore)
	}

	rec := &store.AnalysisRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		JobSpecID:   jobSpecID,
		MatchScore:  raw.MatchScore,
		Strengths:   raw.Strengths,
		Gaps:        raw.Gaps,
		Suggestions: raw.Suggestions,
		CreatedAt:   a.now().UTC(),
	}
	if err := a.analyses.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist cv analysis: %w", err)
	}
	return rec, nil
}

const analyzerSystemPrompt = `You are an expert technical recruiter. You compare a candidate CV against a ` +
	`job description and produce an honest fit assessment: an overall match score, concrete strengths, ` +
	`concrete gaps, and actionable suggestions.`

const promptTextLimit = 3000

func buildAnalyzerMessage(cvText, jdText string) string {
	var b strings.Builder

	b.WriteString("Assess the CV against the job description. ")
	b.WriteString("match_score is a float in [0,1]. Strengths and gaps name specific skills, not platitudes.\n\n")

	fmt.Fprintf(&b, "CV:\n%s\n\n", truncate(cvText, promptTextLimit))
	fmt.Fprintf(&b, "Job description:\n%s\n", truncate(jdText, promptTextLimit))

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// AnalysisSchema defines the JSON schema for CV analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "cv-analysis",
	Description: "A CV-vs-JD fit assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"match_score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"gaps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"suggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"match_score", "strengths", "gaps", "suggestions"},
		"additionalProperties": false,
	},
}
