package roleprofile

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yonatank/prepair/internal/llm"
)

func TestExtract_ParsesProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"role_title": "Backend Engineer",
			"seniority": "Senior",
			"topics": [
				{"name": "Go", "weight": 0.9},
				{"name": "  ", "weight": 0.5},
				{"name": "SQL", "weight": 1.7},
				{"name": "Caching", "weight": -0.2}
			],
			"focus_areas": ["distributed systems"]
		}`),
	})
	e := NewExtractor(mock, DefaultConfig())

	profile := e.Extract(context.Background(), "We need a Go engineer.", "")

	if profile.RoleTitle != "Backend Engineer" {
		t.Errorf("role title = %q", profile.RoleTitle)
	}
	if profile.Seniority != "senior" {
		t.Errorf("seniority = %q, want senior", profile.Seniority)
	}
	if len(profile.Topics) != 3 {
		t.Fatalf("topics = %v, want blank name dropped", profile.Topics)
	}
	if profile.Topics[1].Name != "SQL" || profile.Topics[1].Weight != 1 {
		t.Errorf("over-range weight = %v, want clamped to 1", profile.Topics[1])
	}
	if profile.Topics[2].Weight != 0.5 {
		t.Errorf("non-positive weight = %v, want default 0.5", profile.Topics[2])
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "role-profile" {
		t.Errorf("schema = %v, want role-profile", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Go engineer") {
		t.Errorf("prompt missing JD text: %q", req.Messages[0].Content)
	}
}

func TestExtract_TopicCap(t *testing.T) {
	var topics []string
	for i := 0; i < 20; i++ {
		topics = append(topics, `{"name": "t`+string(rune('a'+i))+`", "weight": 0.5}`)
	}
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"role_title": "X", "seniority": "mid", "topics": [` +
			strings.Join(topics, ",") + `], "focus_areas": []}`),
	})
	e := NewExtractor(mock, DefaultConfig())

	profile := e.Extract(context.Background(), "jd", "")
	if len(profile.Topics) != DefaultConfig().MaxTopics {
		t.Errorf("topics = %d, want capped at %d", len(profile.Topics), DefaultConfig().MaxTopics)
	}
}

func TestExtract_NilProviderUsesFallback(t *testing.T) {
	e := NewExtractor(nil, DefaultConfig())

	profile := e.Extract(context.Background(), "Senior Python engineer, SQL and Docker.", "")

	if profile.Seniority != "senior" {
		t.Errorf("seniority = %q, want senior", profile.Seniority)
	}
	var names []string
	for _, topic := range profile.Topics {
		names = append(names, topic.Name)
	}
	for _, want := range []string{"Python", "SQL", "Docker"} {
		if !slicesContains(names, want) {
			t.Errorf("topics = %v, missing %s", names, want)
		}
	}
}

func slicesContains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestExtract_ErrorUsesFallback(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue, Generate fails
	e := NewExtractor(mock, DefaultConfig())

	profile := e.Extract(context.Background(), "Junior Java developer.", "")

	if profile.RoleTitle != "Software Engineer" {
		t.Errorf("role title = %q, want fallback default", profile.RoleTitle)
	}
	if profile.Seniority != "junior" {
		t.Errorf("seniority = %q, want junior", profile.Seniority)
	}
}

func TestExtract_EmptyTopicsUsesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"role_title": "X", "seniority": "mid", "topics": [], "focus_areas": []}`),
	})
	e := NewExtractor(mock, DefaultConfig())

	profile := e.Extract(context.Background(), "nothing notable here", "")

	if len(profile.Topics) != 3 {
		t.Errorf("topics = %v, want generic fallback trio", profile.Topics)
	}
}

func TestNormalizeSeniority(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"senior", "senior"},
		{" Senior ", "senior"},
		{"INTERN", "intern"},
		{"architect", "mid"},
		{"", "mid"},
	}
	for _, tt := range tests {
		if got := normalizeSeniority(tt.in); got != tt.want {
			t.Errorf("normalizeSeniority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFallbackProfile_Keywords(t *testing.T) {
	profile := FallbackProfile("Looking for a Python dev with SQL and Kubernetes experience.")

	want := map[string]bool{"Python": true, "SQL": true, "Kubernetes": true}
	if len(profile.Topics) != len(want) {
		t.Fatalf("topics = %v", profile.Topics)
	}
	for _, topic := range profile.Topics {
		if !want[topic.Name] {
			t.Errorf("unexpected topic %q", topic.Name)
		}
	}
}
