package interview

import (
	"sort"
	"strings"
)

// Jaccard computes set-overlap similarity between two topic sets.
// Defined as 0 when both sets are empty.
func Jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for t := range a {
		if b[t] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// TopicSet converts a topic slice to a lowercase set.
func TopicSet(topics []string) map[string]bool {
	set := make(map[string]bool, len(topics))
	for _, t := range topics {
		set[strings.ToLower(t)] = true
	}
	return set
}

// neutralMatchScore is awarded to questions with no topic tags.
const neutralMatchScore = 0.5

// MatchScore scores a question's topics against role-profile weights.
// Exact (case-insensitive) matches score the full topic weight; substring
// matches in either direction score half. The sum is normalized by the
// question's topic count. Questions without topics get a neutral score.
func MatchScore(topics []string, weights map[string]float64) float64 {
	if len(topics) == 0 {
		return neutralMatchScore
	}

	// Sorted key order keeps the substring fallback deterministic.
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	score := 0.0
	for _, topic := range topics {
		lower := strings.ToLower(topic)
		if w, ok := weights[lower]; ok {
			score += w
			continue
		}
		for _, name := range names {
			if strings.Contains(lower, name) || strings.Contains(name, lower) {
				score += weights[name] * 0.5
				break
			}
		}
	}

	return score / float64(len(topics))
}
