package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yonatank/prepair/internal/cvanalysis"
	"github.com/yonatank/prepair/internal/interview"
	"github.com/yonatank/prepair/internal/jobspec"
	"github.com/yonatank/prepair/internal/llm"
	"github.com/yonatank/prepair/internal/readiness"
	"github.com/yonatank/prepair/internal/roleprofile"
	"github.com/yonatank/prepair/internal/store"
)

// app bundles the store and the services built on top of it.
type app struct {
	store    *store.Store
	provider llm.Provider
	jobSpecs *jobspec.Service
	analyzer *cvanalysis.Analyzer
	service  *interview.Service
	engine   *interview.Engine
	progress *readiness.Aggregator
}

// buildApp opens the store and wires all services. Without a configured
// LLM provider the app still runs: role profiles fall back to keyword
// heuristics and judgments degrade to advancing with a neutral score.
func buildApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Interviews will advance without real judgments.")
		provider = llm.NewMockProvider()
	}

	planner := interview.NewPlanner(st.QuestionRepo(), st.HistoryRepo(), st.SessionRepo(), interview.DefaultPlannerConfig())
	judge := interview.NewLLMJudge(provider, interview.DefaultJudgeConfig())
	refiner := interview.NewLLMRefiner(provider, interview.DefaultRefineConfig())

	extractor := roleprofile.NewExtractor(provider, roleprofile.DefaultConfig())

	return &app{
		store:    st,
		provider: provider,
		jobSpecs: jobspec.NewService(st.JobSpecRepo(), extractor),
		analyzer: cvanalysis.NewAnalyzer(provider, st.AnalysisRepo(), cvanalysis.DefaultConfig()),
		service:  interview.NewService(planner, st.SessionRepo(), st.JobSpecRepo(), st.HistoryRepo()),
		engine:   interview.NewEngine(st.SessionRepo(), st.QuestionRepo(), st.TurnRepo(), judge, refiner),
		progress: readiness.NewAggregator(st.AnalysisRepo(), st.SessionRepo(), st.TurnRepo(), st.SnapshotRepo()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
