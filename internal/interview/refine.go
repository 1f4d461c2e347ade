package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yonatank/prepair/internal/llm"
)

// LLMRefiner implements Refiner using the LLM provider. Callers fall
// back to the original text on any error.
type LLMRefiner struct {
	provider llm.Provider
	cfg      RefineConfig
}

// NewLLMRefiner creates a refiner backed by the given provider.
func NewLLMRefiner(provider llm.Provider, cfg RefineConfig) *LLMRefiner {
	return &LLMRefiner{provider: provider, cfg: cfg}
}

// Refine rewrites a question with scenario framing, translating it when
// the session language is not the default.
func (r *LLMRefiner) Refine(ctx context.Context, text, qtype, language string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-refine")

	req := llm.Request{
		System: refineSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRefineMessage(text, qtype, language)},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("refine call: %w", err)
	}

	// Without a schema the provider wraps raw text as a JSON string.
	var refined string
	if err := json.Unmarshal(resp.Content, &refined); err != nil {
		return "", fmt.Errorf("parse refine response: %w", err)
	}

	refined = strings.TrimSpace(refined)
	if refined == "" {
		return "", fmt.Errorf("refine returned empty text")
	}
	return refined, nil
}
