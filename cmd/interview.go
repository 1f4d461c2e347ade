package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yonatank/prepair/internal/interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run mock interview sessions",
}

var interviewStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interview session",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		jobSpecID, _ := cmd.Flags().GetString("jd")
		language, _ := cmd.Flags().GetString("language")
		persona, _ := cmd.Flags().GetString("persona")
		numOpen, _ := cmd.Flags().GetInt("open")
		numCode, _ := cmd.Flags().GetInt("code")

		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.service.Start(cmd.Context(), interview.StartInput{
			UserID:    userID,
			JobSpecID: jobSpecID,
			Language:  language,
			Persona:   persona,
			NumOpen:   numOpen,
			NumCode:   numCode,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Session %s started with %d questions:\n", rec.ID, len(rec.Plan))
		for i, item := range rec.Plan {
			line := fmt.Sprintf("%2d. [%s] %s", i+1, item.Section, item.QuestionID)
			if item.Difficulty != "" {
				line += " (" + item.Difficulty + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var interviewTurnCmd = &cobra.Command{
	Use:   "turn <session-id>",
	Short: "Submit an answer and get the interviewer's response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transcript, _ := cmd.Flags().GetString("answer")
		codePath, _ := cmd.Flags().GetString("code-file")
		elapsed, _ := cmd.Flags().GetInt("elapsed")

		code := ""
		if codePath != "" {
			b, err := os.ReadFile(codePath)
			if err != nil {
				return fmt.Errorf("read %s: %w", codePath, err)
			}
			code = string(b)
		}
		if strings.TrimSpace(transcript) == "" && code == "" {
			return fmt.Errorf("nothing to submit: pass --answer or --code-file")
		}

		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		resp, err := a.engine.ProcessTurn(cmd.Context(), interview.TurnRequest{
			SessionID:   args[0],
			Transcript:  transcript,
			Code:        code,
			ElapsedSecs: elapsed,
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.InterviewerMessage)
		if resp.FollowupQuestion != "" {
			fmt.Printf("\nFollow-up: %s\n", resp.FollowupQuestion)
		}
		if resp.NextQuestion != nil {
			fmt.Printf("\nNext question [%s]: %s\n", resp.NextQuestion.Type, resp.NextQuestion.Text)
		}
		fmt.Printf("\nProgress: %d/%d", resp.Progress.TurnIndex, resp.Progress.Total)
		if resp.IsDone {
			fmt.Print("  (complete)")
		}
		fmt.Println()
		return nil
	},
}

var interviewStatusCmd = &cobra.Command{
	Use:   "status <session-id>",
	Short: "Show a session's position in its plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		status, err := a.service.GetStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Session: %s\n", status.SessionID)
		fmt.Printf("Question: %d/%d", status.QuestionIndex+1, status.Total)
		if status.FollowupCount > 0 {
			fmt.Printf(" (follow-up %d)", status.FollowupCount)
		}
		fmt.Println()
		fmt.Printf("Started: %s\n", status.StartedAt.Local().Format("2006-01-02 15:04:05"))
		if status.Done {
			fmt.Println("Status: complete")
		} else {
			fmt.Println("Status: in progress")
		}
		return nil
	},
}

func init() {
	interviewStartCmd.Flags().String("user", "", "User id")
	interviewStartCmd.Flags().String("jd", "", "Job spec id to tailor the plan to")
	interviewStartCmd.Flags().String("language", "", "Interview language (default english)")
	interviewStartCmd.Flags().String("persona", "", "Interviewer persona (default friendly)")
	interviewStartCmd.Flags().Int("open", 0, "Number of open questions (0 = default)")
	interviewStartCmd.Flags().Int("code", 0, "Number of code questions (0 = default)")

	interviewTurnCmd.Flags().String("answer", "", "Spoken/typed answer text")
	interviewTurnCmd.Flags().String("code-file", "", "File containing submitted code")
	interviewTurnCmd.Flags().Int("elapsed", 0, "Seconds spent on this answer")

	interviewCmd.AddCommand(interviewStartCmd)
	interviewCmd.AddCommand(interviewTurnCmd)
	interviewCmd.AddCommand(interviewStatusCmd)
}
