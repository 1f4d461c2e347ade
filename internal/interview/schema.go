package interview

import "github.com/yonatank/prepair/internal/llm"

// JudgmentSchema defines the JSON schema for interviewer judgment responses.
var JudgmentSchema = &llm.Schema{
	Name:        "interview-judgment",
	Description: "The interviewer's decision after hearing a candidate answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type":        "string",
				"enum":        []any{"followup", "hint", "end", "advance"},
				"description": "What to do next: probe deeper, give a hint, end the interview, or move on",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Natural interviewer response spoken to the candidate, in the session language",
			},
			"followup_question": map[string]any{
				"type":        "string",
				"description": "The follow-up question text. Required when action is followup, empty otherwise.",
			},
			"satisfaction_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How satisfying the candidate's answer was, 0 (poor) to 1 (excellent)",
			},
		},
		"required":             []any{"action", "message", "followup_question", "satisfaction_score"},
		"additionalProperties": false,
	},
}
