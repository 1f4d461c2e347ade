package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yonatank/prepair/internal/llm"
)

// LLMJudge implements Judge using the LLM provider.
type LLMJudge struct {
	provider llm.Provider
	cfg      JudgeConfig
}

// NewLLMJudge creates a judge backed by the given provider.
func NewLLMJudge(provider llm.Provider, cfg JudgeConfig) *LLMJudge {
	return &LLMJudge{provider: provider, cfg: cfg}
}

// judgmentOutput is the raw LLM response before validation.
type judgmentOutput struct {
	Action            string  `json:"action"`
	Message           string  `json:"message"`
	FollowupQuestion  string  `json:"followup_question"`
	SatisfactionScore float64 `json:"satisfaction_score"`
}

// Judge produces an interviewer decision for one turn.
func (j *LLMJudge) Judge(ctx context.Context, input JudgeInput) (*Judgment, error) {
	ctx = llm.WithPurpose(ctx, "judgment")

	req := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgeMessage(input)},
		},
		Schema:      JudgmentSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	}

	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("judgment call: %w", err)
	}

	var raw judgmentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse judgment response: %w", err)
	}

	action := Action(raw.Action)
	switch action {
	case ActionFollowup, ActionHint, ActionEnd, ActionAdvance:
	default:
		return nil, fmt.Errorf("judgment returned unknown action %q", raw.Action)
	}
	if action == ActionFollowup && raw.FollowupQuestion == "" {
		return nil, fmt.Errorf("judgment action followup without a question")
	}
	if raw.SatisfactionScore < 0 || raw.SatisfactionScore > 1 {
		return nil, fmt.Errorf("judgment score %v out of range", raw.SatisfactionScore)
	}

	return &Judgment{
		Action:            action,
		Message:           raw.Message,
		FollowupQuestion:  raw.FollowupQuestion,
		SatisfactionScore: raw.SatisfactionScore,
	}, nil
}
