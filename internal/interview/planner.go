package interview

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/yonatank/prepair/internal/store"
)

// Difficulty tiers tried, in order, when filling adaptive code slots.
var difficultyTiers = []string{"Easy", "Medium", "Hard"}

// defaultTopicWeights is used when a role profile has no topics at all.
var defaultTopicWeights = map[string]float64{
	"programming":     0.8,
	"problem solving": 0.7,
	"algorithms":      0.6,
}

// Planner builds interview plans from the question bank, role-profile
// topic weights, and per-user question history.
type Planner struct {
	questions store.QuestionRepo
	history   store.HistoryRepo
	sessions  store.SessionRepo
	cfg       PlannerConfig
	rng       *rand.Rand
}

// NewPlanner creates a Planner. A non-zero cfg.Seed makes plans
// deterministic, which the tests rely on.
func NewPlanner(questions store.QuestionRepo, history store.HistoryRepo, sessions store.SessionRepo, cfg PlannerConfig) *Planner {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Planner{
		questions: questions,
		history:   history,
		sessions:  sessions,
		cfg:       cfg,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// BuildPlanInput describes one plan request.
type BuildPlanInput struct {
	Profile *store.RoleProfile
	UserID  string
	JDHash  string
	NumOpen int
	NumCode int
}

// BuildPlan selects and orders question slots for one interview session.
// Open questions form the first section; code questions follow, each code
// slot carrying one candidate per difficulty tier for later adaptation.
func (p *Planner) BuildPlan(ctx context.Context, input BuildPlanInput) ([]store.PlanItem, error) {
	numOpen := input.NumOpen
	if numOpen <= 0 {
		numOpen = p.cfg.OpenQuestions
	}
	numCode := input.NumCode
	if numCode <= 0 {
		numCode = p.cfg.CodeQuestions
	}

	weights := topicWeights(input.Profile, p.cfg.DefaultTopicWeight)

	var plan []store.PlanItem
	used := make(map[string]bool)

	openQuestions, err := p.selectQuestions(ctx, weights, "open", numOpen, input.UserID, input.JDHash, used, "")
	if err != nil {
		return nil, fmt.Errorf("select open questions: %w", err)
	}
	for idx, q := range openQuestions {
		used[q.ID] = true
		plan = append(plan, store.PlanItem{
			Section:    "open",
			SlotIndex:  idx,
			QuestionID: q.ID,
			Topics:     q.Topics,
		})
	}

	for slot := 0; slot < numCode; slot++ {
		var candidates []store.PlanCandidate

		for _, tier := range difficultyTiers {
			qs, err := p.selectQuestions(ctx, weights, "code", 1, input.UserID, input.JDHash, used, tier)
			if err != nil {
				return nil, fmt.Errorf("select code questions (%s): %w", tier, err)
			}
			if len(qs) > 0 {
				candidates = append(candidates, candidateFrom(qs[0]))
			}
		}

		// No tiered candidate at all: fall back to an untiered draw.
		if len(candidates) == 0 {
			qs, err := p.selectQuestions(ctx, weights, "code", 1, input.UserID, input.JDHash, used, "")
			if err != nil {
				return nil, fmt.Errorf("select code questions: %w", err)
			}
			if len(qs) > 0 {
				candidates = append(candidates, candidateFrom(qs[0]))
			}
		}

		if len(candidates) == 0 {
			continue
		}

		primary := candidates[0]
		for _, c := range candidates {
			used[c.QuestionID] = true
		}
		plan = append(plan, store.PlanItem{
			Section:    "code",
			SlotIndex:  slot,
			QuestionID: primary.QuestionID,
			Difficulty: primary.Difficulty,
			Topics:     primary.Topics,
			Candidates: candidates,
		})
	}

	return plan, nil
}

// CheckPlanDiversity compares the new plan's question ids against the
// user's most recent prior plan for the same job spec. Returns false when
// the Jaccard similarity reaches the configured threshold.
func (p *Planner) CheckPlanDiversity(ctx context.Context, userID, jobSpecID string, plan []store.PlanItem) (bool, error) {
	prev, err := p.sessions.Latest(ctx, userID, jobSpecID)
	if err != nil {
		return false, fmt.Errorf("load previous session: %w", err)
	}
	if prev == nil || len(prev.Plan) == 0 {
		return true, nil
	}

	prevIDs := make(map[string]bool)
	for _, item := range prev.Plan {
		prevIDs[item.QuestionID] = true
	}
	newIDs := make(map[string]bool)
	for _, item := range plan {
		newIDs[item.QuestionID] = true
	}

	return Jaccard(prevIDs, newIDs) < p.cfg.PlanSimilarityThreshold, nil
}

type scoredQuestion struct {
	question store.Question
	score    float64
}

// selectQuestions runs the weighted-sampling selection for one batch:
// history exclusion with full-pool fallback, match scoring, a top
// PoolFactor x n sampling pool, weighted draws without replacement, and a
// bounded diversity-retry loop.
func (p *Planner) selectQuestions(ctx context.Context, weights map[string]float64, qtype string, n int, userID, jdHash string, exclude map[string]bool, difficulty string) ([]store.Question, error) {
	candidates, err := p.questions.Query(ctx, qtype, difficulty)
	if err != nil {
		return nil, fmt.Errorf("query question bank: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	recent, err := p.history.RecentQuestionIDs(ctx, userID, jdHash, p.cfg.MaxRecentSessions)
	if err != nil {
		return nil, fmt.Errorf("query question history: %w", err)
	}
	excluded := make(map[string]bool, len(recent)+len(exclude))
	for id := range recent {
		excluded[id] = true
	}
	for id := range exclude {
		excluded[id] = true
	}

	filtered := make([]store.Question, 0, len(candidates))
	for _, q := range candidates {
		if !excluded[q.ID] {
			filtered = append(filtered, q)
		}
	}
	// Exclusion emptied the pool: better to repeat a question than to
	// have nothing to ask.
	if len(filtered) == 0 {
		filtered = candidates
	}

	scored := make([]scoredQuestion, 0, len(filtered))
	for _, q := range filtered {
		scored = append(scored, scoredQuestion{question: q, score: MatchScore(q.Topics, weights)})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].question.ID < scored[j].question.ID
	})

	poolSize := n * p.cfg.PoolFactor
	if poolSize > len(scored) {
		poolSize = len(scored)
	}
	pool := scored[:poolSize]

	var selected []store.Question
	used := make(map[string]bool)
	selectedTopics := make(map[string]bool)

	// Each iteration either selects or permanently discards one pool
	// entry; the attempt cap bounds the loop regardless.
	maxAttempts := len(pool) + n
	for attempts := 0; len(selected) < n && attempts < maxAttempts; attempts++ {
		remaining := pool[:0:0]
		for _, sq := range pool {
			if !used[sq.question.ID] {
				remaining = append(remaining, sq)
			}
		}
		if len(remaining) == 0 {
			break
		}

		chosen := p.weightedChoice(remaining)

		if len(selected) > 0 && len(remaining) > 1 {
			overlap := Jaccard(selectedTopics, TopicSet(chosen.question.Topics))
			if overlap > p.cfg.DiversityThreshold {
				pool = discard(pool, chosen.question.ID)
				continue
			}
		}

		selected = append(selected, chosen.question)
		used[chosen.question.ID] = true
		for _, t := range chosen.question.Topics {
			selectedTopics[strings.ToLower(t)] = true
		}
	}

	return selected, nil
}

// weightedChoice draws one candidate with probability proportional to
// score^WeightExponent. Zero-score candidates keep a tiny floor weight so
// a batch of unmatched questions still draws uniformly.
func (p *Planner) weightedChoice(pool []scoredQuestion) scoredQuestion {
	total := 0.0
	for _, sq := range pool {
		total += samplingWeight(sq.score, p.cfg.WeightExponent)
	}

	r := p.rng.Float64() * total
	for _, sq := range pool {
		r -= samplingWeight(sq.score, p.cfg.WeightExponent)
		if r <= 0 {
			return sq
		}
	}
	return pool[len(pool)-1]
}

func samplingWeight(score, exponent float64) float64 {
	w := math.Pow(score, exponent)
	if w < 1e-9 {
		w = 1e-9
	}
	return w
}

func discard(pool []scoredQuestion, id string) []scoredQuestion {
	out := pool[:0:0]
	for _, sq := range pool {
		if sq.question.ID != id {
			out = append(out, sq)
		}
	}
	return out
}

func candidateFrom(q store.Question) store.PlanCandidate {
	difficulty := q.Difficulty
	if difficulty == "" {
		difficulty = "Medium"
	}
	return store.PlanCandidate{
		QuestionID: q.ID,
		Difficulty: difficulty,
		Topics:     q.Topics,
	}
}

// topicWeights normalizes a role profile into a lowercase topic-to-weight
// map, falling back to a generic default profile when empty.
func topicWeights(profile *store.RoleProfile, defaultWeight float64) map[string]float64 {
	weights := make(map[string]float64)
	if profile != nil {
		for _, t := range profile.Topics {
			name := strings.ToLower(strings.TrimSpace(t.Name))
			if name == "" {
				continue
			}
			w := t.Weight
			if w <= 0 {
				w = defaultWeight
			}
			weights[name] = w
		}
	}
	if len(weights) == 0 {
		for name, w := range defaultTopicWeights {
			weights[name] = w
		}
	}
	return weights
}
