package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"ragdemo/internal/usecase"
)

var (
	promptQuery string
	promptMode  string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent to the LLM",
	Long: `Assemble the naive or the RAG prompt for a query without calling the LLM.

Examples:
  ragdemo prompt -q "What is the main goal of Project Chimera?"
  ragdemo prompt -q "What is the main goal of Project Chimera?" --mode naive`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().StringVarP(&promptQuery, "query", "q", DefaultQuery, "question to build the prompt for")
	promptCmd.Flags().StringVarP(&promptMode, "mode", "m", string(usecase.ModeRAG), "naive or rag")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	c, err := buildComponents()
	if err != nil {
		return err
	}

	var prompt string
	switch usecase.Mode(promptMode) {
	case usecase.ModeNaive:
		prompt, err = c.prompts.BuildNaive(promptQuery)
	case usecase.ModeRAG:
		docs, rerr := c.retrieve.Retrieve(promptQuery)
		if rerr != nil {
			return fmt.Errorf("retrieval failed: %w", rerr)
		}
		prompt, err = c.prompts.BuildWithContext(promptQuery, docs)
	default:
		return fmt.Errorf("--mode must be naive or rag, got %q", promptMode)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prompt)
	return nil
}
