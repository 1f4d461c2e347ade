package interview

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yonatank/prepair/internal/llm"
)

func TestLLMJudge_ParsesJudgment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"action":"followup","message":"Tell me more.","followup_question":"How does eviction work?","satisfaction_score":0.6}`),
	})
	judge := NewLLMJudge(mock, DefaultJudgeConfig())

	judgment, err := judge.Judge(context.Background(), JudgeInput{
		QuestionText: "Explain caching.",
		Section:      "open",
		Transcript:   "caches hold hot data",
		Persona:      "friendly",
		Language:     "english",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if judgment.Action != ActionFollowup {
		t.Errorf("Action = %q, want followup", judgment.Action)
	}
	if judgment.FollowupQuestion != "How does eviction work?" {
		t.Errorf("FollowupQuestion = %q", judgment.FollowupQuestion)
	}
	if judgment.SatisfactionScore != 0.6 {
		t.Errorf("SatisfactionScore = %v, want 0.6", judgment.SatisfactionScore)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "interview-judgment" {
		t.Errorf("Schema = %+v, want interview-judgment", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Explain caching.") {
		t.Error("prompt does not include the question text")
	}
}

func TestLLMJudge_RejectsBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown action", `{"action":"dance","message":"m","satisfaction_score":0.5}`},
		{"followup without question", `{"action":"followup","message":"m","satisfaction_score":0.5}`},
		{"score out of range", `{"action":"advance","message":"m","satisfaction_score":1.5}`},
		{"not json", `advance`},
	}

	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
		judge := NewLLMJudge(mock, DefaultJudgeConfig())
		if _, err := judge.Judge(context.Background(), JudgeInput{QuestionText: "q"}); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestLLMJudge_PromptIncludesPreviousFollowups(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"action":"advance","message":"ok","satisfaction_score":0.8}`),
	})
	judge := NewLLMJudge(mock, DefaultJudgeConfig())

	_, err := judge.Judge(context.Background(), JudgeInput{
		QuestionText:      "q",
		FollowupCount:     2,
		PreviousFollowups: []string{"why?", "how?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "why?") || !strings.Contains(prompt, "how?") {
		t.Error("prompt missing previous follow-ups")
	}
	if !strings.Contains(prompt, "advancing") {
		t.Error("prompt missing the advance preference after repeated follow-ups")
	}
}

func TestLLMJudge_SolutionNeverRevealedInstruction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"action":"advance","message":"ok","satisfaction_score":0.8}`),
	})
	judge := NewLLMJudge(mock, DefaultJudgeConfig())

	_, err := judge.Judge(context.Background(), JudgeInput{
		QuestionText: "q",
		Section:      "code",
		SolutionText: "def solve(): ...",
		Code:         "def attempt(): ...",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "def solve()") {
		t.Error("prompt missing reference solution for scoring")
	}
	if !strings.Contains(strings.ToLower(prompt), "never reveal") {
		t.Error("prompt missing the never-reveal instruction")
	}
}

func TestLLMRefiner_ReturnsRefinedText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Imagine you are scaling a web service. Explain caching."`),
	})
	refiner := NewLLMRefiner(mock, DefaultRefineConfig())

	got, err := refiner.Refine(context.Background(), "Explain caching.", "open", "english")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Explain caching.") {
		t.Errorf("refined = %q", got)
	}
	// Refinement is free-form text, not structured output.
	if mock.Calls[0].Schema != nil {
		t.Error("refine request should not set a schema")
	}
}

func TestLLMRefiner_EmptyResponseIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})
	refiner := NewLLMRefiner(mock, DefaultRefineConfig())

	if _, err := refiner.Refine(context.Background(), "q", "open", "english"); err == nil {
		t.Error("expected error on empty refinement")
	}
}

func TestLLMRefiner_TranslationInstruction(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"pregunta"`)},
		llm.MockResponse{Content: json.RawMessage(`"question"`)},
	)
	refiner := NewLLMRefiner(mock, DefaultRefineConfig())

	if _, err := refiner.Refine(context.Background(), "q", "open", "spanish"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.ToLower(mock.Calls[0].Messages[0].Content), "spanish") {
		t.Error("prompt missing translation language")
	}

	if _, err := refiner.Refine(context.Background(), "q", "open", "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(strings.ToLower(mock.Calls[1].Messages[0].Content), "translate") {
		t.Error("english sessions must not ask for translation")
	}
}
