package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

func testSession(plan ...store.PlanItem) *store.SessionRecord {
	return &store.SessionRecord{
		ID:                "sess-1",
		UserID:            "user-1",
		Language:          "english",
		Persona:           "friendly",
		Plan:              plan,
		ConversationState: (&ConversationState{}).Marshal(),
		StartedAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func openItem(id string) store.PlanItem {
	return store.PlanItem{Section: "open", QuestionID: id}
}

func newTestEngine(sessions *fakeSessionRepo, questions *fakeQuestionRepo, turns *fakeTurnRepo, judge Judge, refiner Refiner) *Engine {
	e := NewEngine(sessions, questions, turns, judge, refiner)
	e.now = func() time.Time { return time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC) }
	return e
}

func TestProcessTurn_UnknownSession(t *testing.T) {
	e := newTestEngine(newFakeSessionRepo(), newFakeQuestionRepo(), &fakeTurnRepo{}, &stubJudge{}, &stubRefiner{})

	_, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "missing"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestProcessTurn_Advance(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a"), openItem("open:b")))
	questions := newFakeQuestionRepo(
		store.Question{ID: "open:a", Type: "open", Text: "Tell me about caching."},
		store.Question{ID: "open:b", Type: "open", Text: "Explain indexes."},
	)
	turns := &fakeTurnRepo{}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionAdvance, Message: "Good answer.", SatisfactionScore: 0.8},
	}}
	e := newTestEngine(sessions, questions, turns, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "caches store hot data"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Action != ActionAdvance {
		t.Errorf("Action = %q, want advance", resp.Action)
	}
	if resp.IsDone {
		t.Error("IsDone = true, want false")
	}
	if resp.NextQuestion == nil || resp.NextQuestion.QuestionID != "open:b" {
		t.Errorf("NextQuestion = %+v, want open:b", resp.NextQuestion)
	}
	if resp.Progress.TurnIndex != 1 || resp.Progress.Total != 2 {
		t.Errorf("Progress = %+v, want 1/2", resp.Progress)
	}

	state := ParseState(sessions.sessions["sess-1"].ConversationState)
	if state.QuestionIndex != 1 || state.FollowupCount != 0 {
		t.Errorf("state = %+v, want index 1, followups 0", state)
	}
	if len(turns.turns) != 1 {
		t.Fatalf("turns = %d, want 1", len(turns.turns))
	}
	if turns.turns[0].Score != 0.8 || turns.turns[0].IsFollowup {
		t.Errorf("turn = %+v", turns.turns[0].TurnData)
	}
}

func TestProcessTurn_FollowupThenAdvance(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a"), openItem("open:b")))
	questions := newFakeQuestionRepo(
		store.Question{ID: "open:a", Type: "open", Text: "Tell me about caching."},
		store.Question{ID: "open:b", Type: "open", Text: "Explain indexes."},
	)
	turns := &fakeTurnRepo{}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionFollowup, Message: "Interesting.", FollowupQuestion: "What about eviction?", SatisfactionScore: 0.6},
		{Action: ActionAdvance, Message: "Thanks.", SatisfactionScore: 0.9},
	}}
	e := newTestEngine(sessions, questions, turns, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "first answer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Action != ActionFollowup || resp.FollowupQuestion != "What about eviction?" {
		t.Fatalf("resp = %+v, want followup", resp)
	}

	state := ParseState(sessions.sessions["sess-1"].ConversationState)
	if state.FollowupCount != 1 || state.CurrentQuestionID != "open:a" {
		t.Errorf("state = %+v, want followup 1 on open:a", state)
	}
	if state.InitialAnswerScore != 0.6 {
		t.Errorf("InitialAnswerScore = %v, want 0.6", state.InitialAnswerScore)
	}
	if len(state.PreviousFollowups) != 1 {
		t.Errorf("PreviousFollowups = %v", state.PreviousFollowups)
	}

	resp, err = e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "followup answer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Action != ActionAdvance {
		t.Fatalf("Action = %q, want advance", resp.Action)
	}

	state = ParseState(sessions.sessions["sess-1"].ConversationState)
	if state.QuestionIndex != 1 || state.FollowupCount != 0 || len(state.PreviousFollowups) != 0 {
		t.Errorf("state after advance = %+v", state)
	}

	if len(turns.turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns.turns))
	}
	followupTurn := turns.turns[1]
	if !followupTurn.IsFollowup {
		t.Error("second turn should be a followup")
	}
	if followupTurn.ParentTurnID != turns.turns[0].TurnID {
		t.Errorf("ParentTurnID = %q, want %q", followupTurn.ParentTurnID, turns.turns[0].TurnID)
	}
	// Judge saw the prior followups on the second call.
	if len(judge.calls) != 2 || judge.calls[1].FollowupCount != 1 {
		t.Errorf("judge calls = %+v", judge.calls)
	}
}

func TestProcessTurn_FollowupWithoutQuestionAdvances(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a")))
	questions := newFakeQuestionRepo(store.Question{ID: "open:a", Type: "open", Text: "Q"})
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionFollowup, Message: "hmm", SatisfactionScore: 0.4},
	}}
	e := newTestEngine(sessions, questions, &fakeTurnRepo{}, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Action != ActionAdvance {
		t.Errorf("Action = %q, want advance", resp.Action)
	}
}

func TestProcessTurn_Hint_NoStateChange(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a")))
	questions := newFakeQuestionRepo(store.Question{ID: "open:a", Type: "open", Text: "Q"})
	turns := &fakeTurnRepo{}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionHint, Message: "Think about trade-offs.", SatisfactionScore: 0.3},
	}}
	e := newTestEngine(sessions, questions, turns, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "uh"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Action != ActionHint || resp.IsDone {
		t.Errorf("resp = %+v, want hint", resp)
	}

	state := ParseState(sessions.sessions["sess-1"].ConversationState)
	if state.QuestionIndex != 0 || state.FollowupCount != 0 {
		t.Errorf("state = %+v, want unchanged", state)
	}
	// The turn is still recorded.
	if len(turns.turns) != 1 {
		t.Errorf("turns = %d, want 1", len(turns.turns))
	}
}

func TestProcessTurn_End(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a"), openItem("open:b")))
	questions := newFakeQuestionRepo(
		store.Question{ID: "open:a", Type: "open", Text: "Q"},
		store.Question{ID: "open:b", Type: "open", Text: "Q2"},
	)
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionEnd, Message: "We're done here.", SatisfactionScore: 0.2},
	}}
	e := newTestEngine(sessions, questions, &fakeTurnRepo{}, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "please stop"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsDone || resp.Action != ActionEnd {
		t.Errorf("resp = %+v, want end", resp)
	}
	if sessions.sessions["sess-1"].EndedAt == nil {
		t.Error("session not marked ended")
	}
}

func TestProcessTurn_JudgeFailureAdvancesNeutrally(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a")))
	questions := newFakeQuestionRepo(store.Question{ID: "open:a", Type: "open", Text: "Q"})
	turns := &fakeTurnRepo{}
	judge := &stubJudge{err: errors.New("provider down")}
	e := newTestEngine(sessions, questions, turns, judge, &stubRefiner{})

	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Action != ActionAdvance {
		t.Errorf("Action = %q, want advance", resp.Action)
	}
	if resp.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", resp.Confidence)
	}
	if len(turns.turns) != 1 || turns.turns[0].Score != 0.5 {
		t.Errorf("turn record = %+v, want neutral score", turns.turns)
	}
}

func TestProcessTurn_CompletionDetectedNextTurn(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a")))
	questions := newFakeQuestionRepo(store.Question{ID: "open:a", Type: "open", Text: "Q"})
	turns := &fakeTurnRepo{}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionAdvance, Message: "ok", SatisfactionScore: 0.7},
	}}
	e := newTestEngine(sessions, questions, turns, judge, &stubRefiner{})

	// Last question answered: advance past the end, but not done-ended yet.
	resp, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsDone {
		t.Error("IsDone = false after advancing past the last question")
	}
	if sessions.sessions["sess-1"].EndedAt != nil {
		t.Error("session ended synchronously with the last advance")
	}

	// Next turn trips the completion check without recording a turn.
	resp, err = e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsDone || resp.Action != ActionEnd {
		t.Errorf("resp = %+v, want completion", resp)
	}
	if sessions.sessions["sess-1"].EndedAt == nil {
		t.Error("session not ended on completion turn")
	}
	if len(turns.turns) != 1 {
		t.Errorf("turns = %d, want 1 (completion records no turn)", len(turns.turns))
	}
}

func TestProcessTurn_RefinementMemoized(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a"), openItem("open:b")))
	questions := newFakeQuestionRepo(
		store.Question{ID: "open:a", Type: "open", Text: "Tell me about caching."},
		store.Question{ID: "open:b", Type: "open", Text: "Explain indexes."},
	)
	refiner := &stubRefiner{prefix: "refined: "}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionHint, Message: "hint", SatisfactionScore: 0.3},
		{Action: ActionFollowup, Message: "more", FollowupQuestion: "why?", SatisfactionScore: 0.5},
		{Action: ActionAdvance, Message: "ok", SatisfactionScore: 0.8},
	}}
	turns := &fakeTurnRepo{}
	e := newTestEngine(sessions, questions, turns, judge, refiner)

	for i := 0; i < 3; i++ {
		if _, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"}); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}

	// Slot 0 refined once across hint, followup, and advance; the advance
	// also refines slot 1 for the next-question prefetch.
	if refiner.calls != 2 {
		t.Errorf("refiner calls = %d, want 2", refiner.calls)
	}
	for _, turn := range turns.turns {
		if turn.QuestionSnapshot != "refined: Tell me about caching." {
			t.Errorf("QuestionSnapshot = %q, want memoized refined text", turn.QuestionSnapshot)
		}
	}
}

func TestProcessTurn_RefinerFailureUsesOriginalText(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:a")))
	questions := newFakeQuestionRepo(store.Question{ID: "open:a", Type: "open", Text: "Original text."})
	refiner := &stubRefiner{err: errors.New("provider down")}
	judge := &stubJudge{judgments: []*Judgment{
		{Action: ActionHint, Message: "hint", SatisfactionScore: 0.3},
	}}
	turns := &fakeTurnRepo{}
	e := newTestEngine(sessions, questions, turns, judge, refiner)

	if _, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turns.turns[0].QuestionSnapshot != "Original text." {
		t.Errorf("QuestionSnapshot = %q, want original text", turns.turns[0].QuestionSnapshot)
	}
}

func TestProcessTurn_MissingQuestion(t *testing.T) {
	sessions := newFakeSessionRepo(testSession(openItem("open:gone")))
	e := newTestEngine(sessions, newFakeQuestionRepo(), &fakeTurnRepo{}, &stubJudge{}, &stubRefiner{})

	_, err := e.ProcessTurn(context.Background(), TurnRequest{SessionID: "sess-1", Transcript: "answer"})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}
