package interview

// PlannerConfig holds the tunables of the question-selection algorithm.
// The defaults mirror long-standing production values; none of them are
// load-bearing beyond "favor higher match while preserving diversity".
type PlannerConfig struct {
	// OpenQuestions and CodeQuestions set the default plan shape.
	OpenQuestions int
	CodeQuestions int

	// MaxRecentSessions is how many past sessions contribute to the
	// history exclusion set.
	MaxRecentSessions int

	// PoolFactor bounds the sampling pool at PoolFactor x requested count
	// of the highest-scoring candidates.
	PoolFactor int

	// WeightExponent sharpens the weighted draw: sampling weight is
	// score^WeightExponent.
	WeightExponent float64

	// DiversityThreshold is the intra-batch topic Jaccard above which a
	// draw is discarded and retried.
	DiversityThreshold float64

	// PlanSimilarityThreshold is the plan-vs-previous-plan Jaccard at or
	// above which a plan counts as insufficiently diverse.
	PlanSimilarityThreshold float64

	// DefaultTopicWeight is assigned to profile topics that carry no
	// explicit weight.
	DefaultTopicWeight float64

	// Seed fixes the RNG for deterministic plans. 0 means random.
	Seed uint64
}

// DefaultPlannerConfig returns the production tuning.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		OpenQuestions:           5,
		CodeQuestions:           3,
		MaxRecentSessions:       3,
		PoolFactor:              3,
		WeightExponent:          2,
		DiversityThreshold:      0.8,
		PlanSimilarityThreshold: 0.7,
		DefaultTopicWeight:      0.6,
	}
}

// JudgeConfig controls the LLM judgment call.
type JudgeConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultJudgeConfig returns settings tuned for judgment calls:
// moderate output budget, a little temperature for natural phrasing.
func DefaultJudgeConfig() JudgeConfig {
	return JudgeConfig{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// RefineConfig controls the question-refinement call.
type RefineConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRefineConfig returns settings tuned for rewriting question text.
func DefaultRefineConfig() RefineConfig {
	return RefineConfig{
		MaxTokens:   1024,
		Temperature: 0.6,
	}
}
