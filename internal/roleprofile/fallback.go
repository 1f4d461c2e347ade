package roleprofile

import (
	"strings"

	"github.com/yonatank/prepair/internal/store"
)

// keywordWeights maps notable JD keywords to topic weights. Matching is
// case-insensitive substring over the raw text.
var keywordWeights = []store.TopicWeight{
	{Name: "Python", Weight: 0.9},
	{Name: "Go", Weight: 0.9},
	{Name: "Java", Weight: 0.9},
	{Name: "JavaScript", Weight: 0.85},
	{Name: "TypeScript", Weight: 0.85},
	{Name: "SQL", Weight: 0.8},
	{Name: "REST", Weight: 0.75},
	{Name: "Docker", Weight: 0.7},
	{Name: "Kubernetes", Weight: 0.7},
	{Name: "AWS", Weight: 0.7},
	{Name: "Microservices", Weight: 0.7},
	{Name: "Algorithms", Weight: 0.65},
	{Name: "Testing", Weight: 0.6},
	{Name: "CI/CD", Weight: 0.6},
}

var seniorityMarkers = []struct {
	marker    string
	seniority string
}{
	{"intern", "intern"},
	{"graduate", "junior"},
	{"junior", "junior"},
	{"entry level", "junior"},
	{"staff", "senior"},
	{"principal", "senior"},
	{"senior", "senior"},
	{"lead", "senior"},
}

// FallbackProfile builds a role profile by keyword scan. It is the
// degraded path when LLM extraction is unavailable or fails.
func FallbackProfile(jdText string) *store.RoleProfile {
	lower := strings.ToLower(jdText)

	profile := &store.RoleProfile{
		RoleTitle: "Software Engineer",
		Seniority: "mid",
	}

	for _, kw := range keywordWeights {
		if strings.Contains(lower, strings.ToLower(kw.Name)) {
			profile.Topics = append(profile.Topics, kw)
		}
	}
	if len(profile.Topics) == 0 {
		profile.Topics = []store.TopicWeight{
			{Name: "Programming", Weight: 0.8},
			{Name: "Problem Solving", Weight: 0.7},
			{Name: "Algorithms", Weight: 0.6},
		}
	}

	for _, m := range seniorityMarkers {
		if strings.Contains(lower, m.marker) {
			profile.Seniority = m.seniority
			break
		}
	}

	return profile
}
