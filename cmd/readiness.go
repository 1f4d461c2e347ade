package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Compute and show interview readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		jobSpecID, _ := cmd.Flags().GetString("jd")

		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.progress.ComputeSnapshot(cmd.Context(), userID, jobSpecID)
		if err != nil {
			return err
		}

		fmt.Printf("Readiness: %.1f\n", snap.ReadinessScore)
		fmt.Printf("  CV        %.1f  (weight %.1f)\n", snap.CVScore, snap.Weights.CV)
		fmt.Printf("  Interview %.1f  (weight %.1f)\n", snap.InterviewScore, snap.Weights.Interview)
		fmt.Printf("  Practice  %.1f  (weight %.1f)\n", snap.PracticeScore, snap.Weights.Practice)

		overview, err := a.progress.GetOverview(cmd.Context(), userID, jobSpecID)
		if err != nil {
			return err
		}
		if len(overview.Trend) > 1 {
			fmt.Println("\nTrend:")
			for _, p := range overview.Trend {
				fmt.Printf("  %s  %.1f\n", p.Timestamp.Local().Format("2006-01-02 15:04"), p.ReadinessScore)
			}
		}
		return nil
	},
}

func init() {
	readinessCmd.Flags().String("user", "", "User id")
	readinessCmd.Flags().String("jd", "", "Job spec id to scope readiness to")
}
