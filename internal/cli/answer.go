package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"ragdemo/internal/usecase"
)

// DefaultQuery is the question the demo asks when none is given.
const DefaultQuery = "What is the main goal of Project Chimera?"

var (
	answerQuery    string
	answerMode     string
	answerJSON     bool
	answerMinScore int
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Answer a question naively and with retrieved context",
	Long: `Ask the LLM a question directly, then again with the knowledge-base
documents that share words with it, and print both answers.

Examples:
  ragdemo answer
  ragdemo answer -q "Who leads the neural interface work?" --mode rag
  ragdemo answer --provider mock --json`,
	RunE: runAnswer,
}

func init() {
	rootCmd.AddCommand(answerCmd)
	answerCmd.Flags().StringVarP(&answerQuery, "query", "q", DefaultQuery, "question to answer")
	answerCmd.Flags().StringVarP(&answerMode, "mode", "m", string(usecase.ModeBoth), "naive, rag or both")
	answerCmd.Flags().BoolVar(&answerJSON, "json", false, "output as JSON")
	answerCmd.Flags().IntVar(&answerMinScore, "min-score", 0, "minimum retrieval score (default from config)")
}

func runAnswer(cmd *cobra.Command, args []string) error {
	mode, err := usecase.ParseMode(answerMode)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("min-score") {
		GetConfig().Retrieve.MinScore = answerMinScore
	}

	c, err := buildComponents()
	if err != nil {
		return err
	}
	answerUC, _, err := buildAnswer(c)
	if err != nil {
		return err
	}

	cmp, err := answerUC.Answer(answerQuery, mode)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if answerJSON {
		return printJSON(out, cmp)
	}
	printComparison(out, cmp, mode != usecase.ModeRAG, mode != usecase.ModeNaive)
	return nil
}
