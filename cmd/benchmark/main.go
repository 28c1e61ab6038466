package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"ragdemo/config"
	"ragdemo/internal/adapter/analyzer"
	"ragdemo/internal/adapter/kb"
	"ragdemo/internal/adapter/retriever"
	"ragdemo/internal/domain"
)

func main() {
	dir := flag.String("dir", ".", "Directory holding ragdemo.yaml")
	query := flag.String("q", "", "Query to test")
	minScore := flag.Int("min-score", -1, "Minimum score (default from config)")
	iterations := flag.Int("n", 1000, "Rank iterations for timing")
	flag.Parse()

	if *query == "" {
		fmt.Println("Usage: go run ./cmd/benchmark -dir . -q \"query\"")
		fmt.Println("\nReports:")
		fmt.Println("  1. Per-document score breakdown (content overlap, title overlap)")
		fmt.Println("  2. Which documents pass the minimum score")
		fmt.Println("  3. Average Rank latency over the knowledge base")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *minScore >= 0 {
		cfg.Retrieve.MinScore = *minScore
	}

	source, err := kb.NewSource(cfg.Knowledge, *dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating knowledge source: %v\n", err)
		os.Exit(1)
	}
	base, err := source.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading knowledge base: %v\n", err)
		os.Exit(1)
	}

	r := retriever.NewOverlapRetriever(analyzer.NewTokenizer())

	fmt.Println("RETRIEVAL BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Source: %s\n", source.Name())
	fmt.Printf("Documents: %d\n", base.Len())
	fmt.Printf("Min score: %d\n", cfg.Retrieve.MinScore)
	fmt.Println()

	fmt.Printf("Query: \"%s\"\n", *query)
	fmt.Printf("Query words: %v\n", analyzer.NewTokenizer().Tokenize(*query))
	fmt.Println(strings.Repeat("-", 70))

	fmt.Printf("%-28s %8s %8s %8s %6s\n", "Document", "Content", "Title", "Score", "Pass")
	passing := 0
	base.Each(func(doc domain.Document) {
		content, title := r.Explain(*query, doc)
		score := content + retriever.TitleWeight*title
		pass := score >= cfg.Retrieve.MinScore
		if pass {
			passing++
		}
		fmt.Printf("%-28s %8d %8d %8d %6v\n", truncate(doc.Title, 28), content, title, score, pass)
	})
	fmt.Println()

	ranked, err := r.Rank(*query, base, cfg.Retrieve.MinScore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Rank error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Ranked order (%d of %d):\n", len(ranked), base.Len())
	for i, sd := range ranked {
		fmt.Printf("  %d. %s (score %d)\n", i+1, sd.Document.ID, sd.Score)
	}
	fmt.Println()

	if *iterations > 0 {
		start := time.Now()
		for i := 0; i < *iterations; i++ {
			if _, err := r.Rank(*query, base, cfg.Retrieve.MinScore); err != nil {
				fmt.Fprintf(os.Stderr, "Rank error: %v\n", err)
				os.Exit(1)
			}
		}
		elapsed := time.Since(start)
		fmt.Println(strings.Repeat("=", 70))
		fmt.Printf("Rank: %d iterations in %v (%v/op)\n", *iterations, elapsed, elapsed/time.Duration(*iterations))
	}

	if passing != len(ranked) {
		fmt.Fprintf(os.Stderr, "Mismatch: %d documents pass the floor but %d were ranked\n", passing, len(ranked))
		os.Exit(1)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
