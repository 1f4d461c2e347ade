package interview

import "testing"

func TestParseState_Empty(t *testing.T) {
	state := ParseState("")
	if state.QuestionIndex != 0 || state.FollowupCount != 0 {
		t.Errorf("expected zero state, got %+v", state)
	}
	if state.RefinedQuestions == nil {
		t.Error("RefinedQuestions must be non-nil")
	}
}

func TestParseState_Malformed(t *testing.T) {
	for _, blob := range []string{"{not json", "[]", `"str"`} {
		state := ParseState(blob)
		if state == nil {
			t.Fatalf("ParseState(%q) = nil", blob)
		}
		if state.QuestionIndex != 0 || state.FollowupCount != 0 {
			t.Errorf("ParseState(%q) = %+v, want zero state", blob, state)
		}
	}
}

func TestState_RoundTrip(t *testing.T) {
	in := &ConversationState{
		CurrentQuestionID:  "open:abc",
		QuestionIndex:      3,
		FollowupCount:      1,
		InitialAnswerScore: 0.7,
		PreviousFollowups:  []string{"why?"},
		RefinedQuestions:   map[int]string{3: "refined text"},
	}

	out := ParseState(in.Marshal())
	if out.CurrentQuestionID != "open:abc" || out.QuestionIndex != 3 || out.FollowupCount != 1 {
		t.Errorf("round trip = %+v", out)
	}
	if out.RefinedQuestions[3] != "refined text" {
		t.Errorf("RefinedQuestions[3] = %q, want %q", out.RefinedQuestions[3], "refined text")
	}
	if len(out.PreviousFollowups) != 1 || out.PreviousFollowups[0] != "why?" {
		t.Errorf("PreviousFollowups = %v", out.PreviousFollowups)
	}
}
