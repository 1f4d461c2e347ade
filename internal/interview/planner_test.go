package interview

import (
	"context"
	"testing"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

func seededConfig(seed uint64) PlannerConfig {
	cfg := DefaultPlannerConfig()
	cfg.Seed = seed
	return cfg
}

func openQuestion(id string, topics ...string) store.Question {
	return store.Question{ID: id, Type: "open", Text: "text " + id, Topics: topics}
}

func codeQuestion(id, difficulty string, topics ...string) store.Question {
	return store.Question{ID: id, Type: "code", Text: "text " + id, Difficulty: difficulty, Topics: topics}
}

func pythonProfile() *store.RoleProfile {
	return &store.RoleProfile{
		RoleTitle: "Backend Engineer",
		Seniority: "mid",
		Topics: []store.TopicWeight{
			{Name: "Python", Weight: 0.9},
			{Name: "SQL", Weight: 0.6},
		},
	}
}

func TestBuildPlan_SectionsAndCounts(t *testing.T) {
	questions := newFakeQuestionRepo(
		openQuestion("open:1", "python"), openQuestion("open:2", "sql"),
		openQuestion("open:3", "python"), openQuestion("open:4", "testing"),
		openQuestion("open:5", "sql"), openQuestion("open:6", "python"),
		codeQuestion("code:1", "Easy", "python"), codeQuestion("code:2", "Medium", "sql"),
		codeQuestion("code:3", "Hard", "python"), codeQuestion("code:4", "Easy", "sql"),
		codeQuestion("code:5", "Medium", "python"), codeQuestion("code:6", "Hard", "sql"),
	)
	p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		Profile: pythonProfile(),
		UserID:  "user-1",
		NumOpen: 3,
		NumCode: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 5 {
		t.Fatalf("plan length = %d, want 5", len(plan))
	}

	for i := 0; i < 3; i++ {
		if plan[i].Section != "open" {
			t.Errorf("plan[%d].Section = %q, want open", i, plan[i].Section)
		}
	}
	for i := 3; i < 5; i++ {
		if plan[i].Section != "code" {
			t.Errorf("plan[%d].Section = %q, want code", i, plan[i].Section)
		}
		if len(plan[i].Candidates) == 0 {
			t.Errorf("plan[%d] has no candidates", i)
		}
		if plan[i].QuestionID != plan[i].Candidates[0].QuestionID {
			t.Errorf("plan[%d] primary %q != first candidate %q", i, plan[i].QuestionID, plan[i].Candidates[0].QuestionID)
		}
	}
}

func TestBuildPlan_NoDuplicateQuestions(t *testing.T) {
	questions := newFakeQuestionRepo(
		openQuestion("open:1", "python"), openQuestion("open:2", "sql"),
		openQuestion("open:3", "go"), openQuestion("open:4", "testing"),
		codeQuestion("code:1", "Easy", "python"), codeQuestion("code:2", "Medium", "sql"),
		codeQuestion("code:3", "Hard", "go"), codeQuestion("code:4", "Easy", "testing"),
		codeQuestion("code:5", "Medium", "go"), codeQuestion("code:6", "Hard", "python"),
	)
	p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(7))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		Profile: pythonProfile(),
		UserID:  "user-1",
		NumOpen: 2,
		NumCode: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, item := range plan {
		if seen[item.QuestionID] {
			t.Errorf("duplicate question %s in plan", item.QuestionID)
		}
		seen[item.QuestionID] = true
		for _, c := range item.Candidates {
			for _, other := range plan {
				if other.SlotIndex != item.SlotIndex || other.Section != item.Section {
					if other.QuestionID == c.QuestionID {
						t.Errorf("candidate %s reused as primary elsewhere", c.QuestionID)
					}
				}
			}
		}
	}
}

func TestBuildPlan_TopicOverlapDiscarded(t *testing.T) {
	// Two questions share an identical topic set and score highest for
	// the profile. Once one is picked the other overlaps fully and must
	// be discarded in favor of a lower-scoring alternative, whatever the
	// draw order.
	profile := &store.RoleProfile{
		RoleTitle: "Backend Engineer",
		Seniority: "mid",
		Topics: []store.TopicWeight{
			{Name: "Python", Weight: 0.9},
			{Name: "Django", Weight: 0.9},
		},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		questions := newFakeQuestionRepo(
			openQuestion("open:dup1", "python", "django"),
			openQuestion("open:dup2", "python", "django"),
			openQuestion("open:alt1", "sql"),
			openQuestion("open:alt2", "testing"),
		)
		p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(seed))

		plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
			Profile: profile,
			UserID:  "user-1",
			NumOpen: 2,
			NumCode: 0,
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(plan) != 2 {
			t.Fatalf("seed %d: plan length = %d, want 2", seed, len(plan))
		}

		seen := make(map[string]bool)
		for _, item := range plan {
			seen[item.QuestionID] = true
		}
		if seen["open:dup1"] && seen["open:dup2"] {
			t.Errorf("seed %d: both identical-topic questions selected", seed)
		}
	}
}

func TestBuildPlan_Deterministic(t *testing.T) {
	build := func() []store.PlanItem {
		questions := newFakeQuestionRepo(
			openQuestion("open:1", "python"), openQuestion("open:2", "sql"),
			openQuestion("open:3", "go"), openQuestion("open:4", "testing"),
			openQuestion("open:5", "python"),
			codeQuestion("code:1", "Easy", "python"), codeQuestion("code:2", "Medium", "sql"),
			codeQuestion("code:3", "Hard", "go"),
		)
		p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(42))
		plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
			Profile: pythonProfile(),
			UserID:  "user-1",
			NumOpen: 3,
			NumCode: 1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return plan
	}

	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("plan lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].QuestionID != b[i].QuestionID {
			t.Errorf("plan[%d]: %q vs %q with identical seeds", i, a[i].QuestionID, b[i].QuestionID)
		}
	}
}

func TestBuildPlan_EmptyBank(t *testing.T) {
	p := NewPlanner(newFakeQuestionRepo(), &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{UserID: "user-1", NumOpen: 3, NumCode: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("plan = %v, want empty", plan)
	}
}

func TestBuildPlan_HistoryExcluded(t *testing.T) {
	questions := newFakeQuestionRepo(
		openQuestion("open:1", "python"),
		openQuestion("open:2", "python"),
		openQuestion("open:3", "python"),
	)
	history := &fakeHistoryRepo{recent: map[string]bool{"open:1": true, "open:2": true}}
	p := NewPlanner(questions, history, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		UserID:  "user-1",
		JDHash:  "hash",
		NumOpen: 1,
		NumCode: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 1 || plan[0].QuestionID != "open:3" {
		t.Errorf("plan = %+v, want only open:3", plan)
	}
}

func TestBuildPlan_HistoryFallbackWhenAllExcluded(t *testing.T) {
	questions := newFakeQuestionRepo(
		openQuestion("open:1", "python"),
		openQuestion("open:2", "sql"),
	)
	history := &fakeHistoryRepo{recent: map[string]bool{"open:1": true, "open:2": true}}
	p := NewPlanner(questions, history, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		UserID:  "user-1",
		JDHash:  "hash",
		NumOpen: 1,
		NumCode: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Repeating beats asking nothing.
	if len(plan) != 1 {
		t.Errorf("plan length = %d, want 1", len(plan))
	}
}

func TestBuildPlan_CodeSlotTieredCandidates(t *testing.T) {
	questions := newFakeQuestionRepo(
		codeQuestion("code:e", "Easy", "python"),
		codeQuestion("code:m", "Medium", "python"),
		codeQuestion("code:h", "Hard", "python"),
	)
	p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		Profile: pythonProfile(),
		UserID:  "user-1",
		NumOpen: 0,
		NumCode: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("plan length = %d, want 1", len(plan))
	}

	item := plan[0]
	if len(item.Candidates) != 3 {
		t.Fatalf("candidates = %d, want one per tier", len(item.Candidates))
	}
	wantTiers := []string{"Easy", "Medium", "Hard"}
	for i, c := range item.Candidates {
		if c.Difficulty != wantTiers[i] {
			t.Errorf("candidate[%d].Difficulty = %q, want %q", i, c.Difficulty, wantTiers[i])
		}
	}
}

func TestBuildPlan_UntieredFallback(t *testing.T) {
	// Only untiered code questions in the bank.
	questions := newFakeQuestionRepo(
		codeQuestion("code:x", "", "python"),
	)
	p := NewPlanner(questions, &fakeHistoryRepo{}, newFakeSessionRepo(), seededConfig(1))

	plan, err := p.BuildPlan(context.Background(), BuildPlanInput{
		UserID:  "user-1",
		NumOpen: 0,
		NumCode: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 1 || plan[0].QuestionID != "code:x" {
		t.Fatalf("plan = %+v, want code:x", plan)
	}
	if plan[0].Candidates[0].Difficulty != "Medium" {
		t.Errorf("untiered candidate difficulty = %q, want Medium default", plan[0].Candidates[0].Difficulty)
	}
}

func TestCheckPlanDiversity(t *testing.T) {
	prevPlan := []store.PlanItem{
		{Section: "open", QuestionID: "open:1"},
		{Section: "open", QuestionID: "open:2"},
		{Section: "open", QuestionID: "open:3"},
	}
	sessions := newFakeSessionRepo(&store.SessionRecord{
		ID: "prev", UserID: "user-1", JobSpecID: "jd-1",
		Plan:      prevPlan,
		StartedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	p := NewPlanner(newFakeQuestionRepo(), &fakeHistoryRepo{}, sessions, seededConfig(1))

	identical, err := p.CheckPlanDiversity(context.Background(), "user-1", "jd-1", prevPlan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identical {
		t.Error("identical plan reported as diverse")
	}

	fresh := []store.PlanItem{
		{Section: "open", QuestionID: "open:7"},
		{Section: "open", QuestionID: "open:8"},
		{Section: "open", QuestionID: "open:9"},
	}
	diverse, err := p.CheckPlanDiversity(context.Background(), "user-1", "jd-1", fresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diverse {
		t.Error("disjoint plan reported as too similar")
	}

	// No prior session: any plan passes.
	ok, err := p.CheckPlanDiversity(context.Background(), "user-2", "jd-1", prevPlan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("first plan for a user must pass the diversity check")
	}
}
