package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var jdCmd = &cobra.Command{
	Use:   "jd",
	Short: "Manage job descriptions",
}

var jdIngestCmd = &cobra.Command{
	Use:   "ingest <jd-file>",
	Short: "Ingest a job description and extract its role profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jdText, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		if strings.TrimSpace(string(jdText)) == "" {
			return fmt.Errorf("%s is empty", args[0])
		}

		cvText := ""
		if cvPath, _ := cmd.Flags().GetString("cv"); cvPath != "" {
			b, err := os.ReadFile(cvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", cvPath, err)
			}
			cvText = string(b)
		}

		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, created, err := a.jobSpecs.Ingest(cmd.Context(), string(jdText), cvText)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Created job spec %s\n", rec.ID)
		} else {
			fmt.Printf("Job description already ingested as %s\n", rec.ID)
		}
		printJobSpec(rec.ID, rec.Title, rec.JDHash)
		if rec.Profile != nil {
			fmt.Printf("Seniority: %s\n", rec.Profile.Seniority)
			for _, t := range rec.Profile.Topics {
				fmt.Printf("  %-30s %.2f\n", t.Name, t.Weight)
			}
		}
		return nil
	},
}

var jdViewCmd = &cobra.Command{
	Use:   "view <job-spec-id>",
	Short: "Show a stored job spec and its profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.jobSpecs.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load job spec: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("job spec %s not found", args[0])
		}

		printJobSpec(rec.ID, rec.Title, rec.JDHash)
		fmt.Printf("Created: %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if rec.Profile != nil {
			fmt.Printf("Seniority: %s\n", rec.Profile.Seniority)
			for _, t := range rec.Profile.Topics {
				fmt.Printf("  %-30s %.2f\n", t.Name, t.Weight)
			}
			if len(rec.Profile.FocusAreas) > 0 {
				fmt.Printf("Focus areas: %s\n", strings.Join(rec.Profile.FocusAreas, ", "))
			}
		}
		return nil
	},
}

var jdAnalyzeCmd = &cobra.Command{
	Use:   "analyze <job-spec-id>",
	Short: "Analyze a CV against a stored job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cvPath, _ := cmd.Flags().GetString("cv")
		userID, _ := cmd.Flags().GetString("user")
		if cvPath == "" {
			return fmt.Errorf("--cv is required")
		}
		cvText, err := os.ReadFile(cvPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", cvPath, err)
		}

		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.jobSpecs.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load job spec: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("job spec %s not found", args[0])
		}

		analysis, err := a.analyzer.Analyze(cmd.Context(), userID, rec.ID, string(cvText), rec.RawText)
		if err != nil {
			return err
		}

		fmt.Printf("Match score: %.0f%%\n", analysis.MatchScore*100)
		printList("Strengths", analysis.Strengths)
		printList("Gaps", analysis.Gaps)
		printList("Suggestions", analysis.Suggestions)
		return nil
	},
}

func printJobSpec(id, title, hash string) {
	fmt.Printf("ID: %s\n", id)
	if title != "" {
		fmt.Printf("Title: %s\n", title)
	}
	fmt.Printf("Hash: %s\n", hash)
}

func printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func init() {
	jdIngestCmd.Flags().String("cv", "", "Optional CV file to bias profile extraction")
	jdAnalyzeCmd.Flags().String("cv", "", "CV file to analyze")
	jdAnalyzeCmd.Flags().String("user", "", "User id to record the analysis under")

	jdCmd.AddCommand(jdIngestCmd)
	jdCmd.AddCommand(jdViewCmd)
	jdCmd.AddCommand(jdAnalyzeCmd)
}
