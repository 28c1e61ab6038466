package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"ragdemo/internal/adapter/kb"
)

var (
	kbJSON   bool
	kbExport string
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "List the knowledge base",
	Long: `Load the configured knowledge source and list its documents in order.
With --export the documents are written to a YAML file that the "yaml"
source can read back.

Examples:
  ragdemo kb
  ragdemo kb --export chimera.yaml`,
	RunE: runKB,
}

func init() {
	rootCmd.AddCommand(kbCmd)
	kbCmd.Flags().BoolVar(&kbJSON, "json", false, "output as JSON")
	kbCmd.Flags().StringVar(&kbExport, "export", "", "write the documents to this YAML file")
}

func runKB(cmd *cobra.Command, args []string) error {
	c, err := buildComponents()
	if err != nil {
		return err
	}
	base := c.retrieve.KnowledgeBase()
	out := cmd.OutOrStdout()

	if kbExport != "" {
		if err := kb.SaveYAML(kbExport, base); err != nil {
			return fmt.Errorf("failed to export knowledge base: %w", err)
		}
		fmt.Fprintf(out, "Exported %d documents to %s\n", base.Len(), kbExport)
		return nil
	}

	if kbJSON {
		return printJSON(out, base.Documents())
	}

	fmt.Fprintf(out, "Source: %s (%d documents)\n\n", c.source.Name(), base.Len())
	for _, doc := range base.Documents() {
		fmt.Fprintf(out, "%s  %s\n", doc.ID, doc.Title)
	}
	return nil
}
