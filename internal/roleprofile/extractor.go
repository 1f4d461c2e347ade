package roleprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yonatank/prepair/internal/llm"
	"github.com/yonatank/prepair/internal/store"
)

// Config controls the extraction call.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxTopics   int
}

// DefaultConfig returns production extraction settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0,
		MaxTopics:   15,
	}
}

// Extractor derives a role profile from job description (and optional
// CV) text via the LLM, falling back to a keyword heuristic when the
// call fails.
type Extractor struct {
	provider llm.Provider
	cfg      Config
}

// NewExtractor creates an Extractor. A nil provider always uses the
// keyword fallback.
func NewExtractor(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, cfg: cfg}
}

// profileOutput is the raw LLM response before validation.
type profileOutput struct {
	RoleTitle  string        `json:"role_title"`
	Seniority  string        `json:"seniority"`
	Topics     []topicOutput `json:"topics"`
	FocusAreas []string      `json:"focus_areas"`
}

type topicOutput struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Extract returns a role profile for the given JD text. It never fails:
// any extraction error degrades to the keyword fallback profile.
func (e *Extractor) Extract(ctx context.Context, jdText, cvText string) *store.RoleProfile {
	if e.provider == nil {
		return FallbackProfile(jdText)
	}

	profile, err := e.extractLLM(ctx, jdText, cvText)
	if err != nil {
		return FallbackProfile(jdText)
	}
	return profile
}

func (e *Extractor) extractLLM(ctx context.Context, jdText, cvText string) (*store.RoleProfile, error) {
	ctx = llm.WithPurpose(ctx, "role-profile")

	req := llm.Request{
		System: extractorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExtractorMessage(jdText, cvText)},
		},
		Schema:      ProfileSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("role profile extraction: %w", err)
	}

	var raw profileOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse role profile response: %w", err)
	}

	profile := &store.RoleProfile{
		RoleTitle:  raw.RoleTitle,
		Seniority:  normalizeSeniority(raw.Seniority),
		FocusAreas: raw.FocusAreas,
	}
	for _, t := range raw.Topics {
		if len(profile.Topics) >= e.cfg.MaxTopics {
			break
		}
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		profile.Topics = append(profile.Topics, store.TopicWeight{
			Name:   name,
			Weight: clampWeight(t.Weight),
		})
	}
	if len(profile.Topics) == 0 {
		return nil, fmt.Errorf("role profile has no topics")
	}
	return profile, nil
}

var seniorities = map[string]bool{
	"intern": true, "junior": true, "mid": true, "senior": true,
}

func normalizeSeniority(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if seniorities[s] {
		return s
	}
	return "mid"
}

func clampWeight(w float64) float64 {
	if w <= 0 {
		return 0.5
	}
	if w > 1 {
		return 1
	}
	return w
}

const extractorSystemPrompt = `You analyze job descriptions and CVs to extract structured role profiles: ` +
	`the topics an interviewer should cover, how much each matters, and the seniority level expected.`

const promptTextLimit = 3000

func buildExtractorMessage(jdText, cvText string) string {
	var b strings.Builder

	b.WriteString("Extract the role profile from the material below. ")
	b.WriteString("Weights are floats in [0,1] reflecting how central each topic is to the role. ")
	b.WriteString("List five to fifteen topics.\n\n")

	fmt.Fprintf(&b, "Job description:\n%s\n", truncate(jdText, promptTextLimit))
	if cvText != "" {
		fmt.Fprintf(&b, "\nCandidate CV:\n%s\n", truncate(cvText, promptTextLimit))
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ProfileSchema defines the JSON schema for role profile extraction.
var ProfileSchema = &llm.Schema{
	Name:        "role-profile",
	Description: "Structured role profile extracted from a job description",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"role_title": map[string]any{
				"type": "string",
			},
			"seniority": map[string]any{
				"type": "string",
				"enum": []any{"intern", "junior", "mid", "senior"},
			},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":   map[string]any{"type": "string"},
						"weight": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
					"required":             []any{"name", "weight"},
					"additionalProperties": false,
				},
			},
			"focus_areas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"role_title", "seniority", "topics", "focus_areas"},
		"additionalProperties": false,
	},
}
