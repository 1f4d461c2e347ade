package interview

import "testing"

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", []string{"arrays"}, nil, 0},
		{"identical", []string{"arrays", "sorting"}, []string{"arrays", "sorting"}, 1},
		{"disjoint", []string{"arrays"}, []string{"graphs"}, 0},
		{"half overlap", []string{"arrays", "sorting"}, []string{"arrays", "graphs"}, 1.0 / 3.0},
	}

	for _, tt := range tests {
		got := Jaccard(TopicSet(tt.a), TopicSet(tt.b))
		if got != tt.want {
			t.Errorf("%s: Jaccard = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTopicSet_Lowercases(t *testing.T) {
	set := TopicSet([]string{"Arrays", "SORTING"})
	if !set["arrays"] || !set["sorting"] {
		t.Errorf("TopicSet = %v, want lowercase keys", set)
	}
}

func TestMatchScore_NoTopics_Neutral(t *testing.T) {
	got := MatchScore(nil, map[string]float64{"python": 0.9})
	if got != 0.5 {
		t.Errorf("MatchScore = %v, want 0.5", got)
	}
}

func TestMatchScore_ExactMatch(t *testing.T) {
	weights := map[string]float64{"python": 0.9, "sql": 0.6}
	got := MatchScore([]string{"Python"}, weights)
	if got != 0.9 {
		t.Errorf("MatchScore = %v, want 0.9", got)
	}
}

func TestMatchScore_SubstringMatchHalfWeight(t *testing.T) {
	weights := map[string]float64{"python": 0.8}
	// "python scripting" contains "python" but is not an exact key.
	got := MatchScore([]string{"python scripting"}, weights)
	if got != 0.4 {
		t.Errorf("MatchScore = %v, want 0.4", got)
	}
}

func TestMatchScore_NormalizedByTopicCount(t *testing.T) {
	weights := map[string]float64{"python": 1.0}
	got := MatchScore([]string{"python", "cooking"}, weights)
	if got != 0.5 {
		t.Errorf("MatchScore = %v, want 0.5", got)
	}
}

func TestMatchScore_UnmatchedTopicsScoreZero(t *testing.T) {
	weights := map[string]float64{"python": 1.0}
	got := MatchScore([]string{"gardening"}, weights)
	if got != 0 {
		t.Errorf("MatchScore = %v, want 0", got)
	}
}
