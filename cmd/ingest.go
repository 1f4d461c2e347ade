package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yonatank/prepair/internal/ingest"
	"github.com/yonatank/prepair/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the question bank from CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		openPath, _ := cmd.Flags().GetString("open")
		codePath, _ := cmd.Flags().GetString("code")
		solutionsPath, _ := cmd.Flags().GetString("solutions")
		if openPath == "" && codePath == "" && solutionsPath == "" {
			return fmt.Errorf("nothing to ingest: pass --open, --code, or --solutions")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		loader := ingest.NewLoader(st.QuestionRepo())

		if openPath != "" {
			f, err := os.Open(openPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", openPath, err)
			}
			res, err := loader.IngestOpen(ctx, f)
			f.Close()
			if err != nil {
				return err
			}
			fmt.Printf("Open questions: %d ingested, %d skipped\n", res.Ingested, res.Skipped)
		}

		if codePath != "" {
			f, err := os.Open(codePath)
			if err != nil {
				return fmt.Errorf("open %s: %w", codePath, err)
			}
			res, err := loader.IngestCode(ctx, f)
			f.Close()
			if err != nil {
				return err
			}
			fmt.Printf("Code questions: %d ingested, %d skipped\n", res.Ingested, res.Skipped)
		}

		if solutionsPath != "" {
			f, err := os.Open(solutionsPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", solutionsPath, err)
			}
			res, err := loader.MergeSolutions(ctx, f)
			f.Close()
			if err != nil {
				return err
			}
			fmt.Printf("Solutions: %d merged, %d skipped\n", res.Merged, res.Skipped)
		}

		total, err := st.QuestionRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		fmt.Printf("Question bank now holds %d questions.\n", total)
		return nil
	},
}

func init() {
	ingestCmd.Flags().String("open", "", "CSV file of open questions")
	ingestCmd.Flags().String("code", "", "CSV file of code questions")
	ingestCmd.Flags().String("solutions", "", "CSV file mapping question_id to solution_text")
}
