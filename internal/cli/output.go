package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"ragdemo/internal/domain"
)

// printComparison writes the demo transcript: naive answer, the retrieved
// documents, then the RAG answer. Sides that were not run are skipped.
func printComparison(w io.Writer, cmp domain.Comparison, naive, rag bool) {
	if naive {
		fmt.Fprintln(w, "Naive approach:", cmp.Naive)
	}
	if !rag {
		return
	}
	if naive {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Found %d relevant documents\n", len(cmp.Documents))
	for i, doc := range cmp.Documents {
		fmt.Fprintf(w, "\nDocument %d (Title: %s):\n", i+1, doc.Title)
		fmt.Fprintln(w, doc.Content)
	}
	fmt.Fprintln(w, "\nRAG approach:")
	fmt.Fprintln(w, cmp.RAG)
}

func printRanked(w io.Writer, query string, ranked []domain.ScoredDocument) {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No relevant documents found.")
		return
	}
	fmt.Fprintf(w, "Found %d relevant documents for: %s\n\n", len(ranked), query)
	for i, sd := range ranked {
		fmt.Fprintf(w, "--- [%d] %s (id: %s, score: %d) ---\n", i+1, sd.Document.Title, sd.Document.ID, sd.Score)
		text := sd.Document.Content
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		fmt.Fprintln(w, text)
		fmt.Fprintln(w)
	}
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
