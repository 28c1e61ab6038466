package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	retrieveQuery    string
	retrieveMinScore int
	retrieveJSON     bool
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Rank knowledge-base documents against a query",
	Long: `Score every document by word overlap with the query (title words count
double) and list those at or above the minimum score, best first.

Examples:
  ragdemo retrieve -q "Project Chimera goal"
  ragdemo retrieve -q "quantum" --min-score 0 --json`,
	RunE: runRetrieve,
}

func init() {
	rootCmd.AddCommand(retrieveCmd)
	retrieveCmd.Flags().StringVarP(&retrieveQuery, "query", "q", "", "search query (required)")
	retrieveCmd.Flags().IntVar(&retrieveMinScore, "min-score", 0, "minimum score (default from config)")
	retrieveCmd.Flags().BoolVar(&retrieveJSON, "json", false, "output as JSON")
	retrieveCmd.MarkFlagRequired("query")
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	c, err := buildComponents()
	if err != nil {
		return err
	}

	minScore := c.retrieve.MinScore()
	if cmd.Flags().Changed("min-score") {
		minScore = retrieveMinScore
	}

	ranked, err := c.retrieve.RankWithMinScore(retrieveQuery, minScore)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if retrieveJSON {
		return printJSON(out, ranked)
	}
	printRanked(out, retrieveQuery, ranked)
	return nil
}
