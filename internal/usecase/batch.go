package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"ragdemo/internal/domain"
)

// BatchReport collects the answers of one batch run.
type BatchReport struct {
	RunID     string              `json:"run_id"`
	Model     string              `json:"model"`
	Mode      Mode                `json:"mode"`
	StartedAt time.Time           `json:"started_at"`
	Elapsed   string              `json:"elapsed"`
	Results   []domain.Comparison `json:"results"`
}

// BatchUseCase answers a list of queries one after another.
type BatchUseCase struct {
	answer *AnswerUseCase
	model  string
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(answer *AnswerUseCase, model string) *BatchUseCase {
	return &BatchUseCase{answer: answer, model: model}
}

// Run answers every query in order. progress, if set, is called after each
// query. The first failure aborts the run; the partial report is returned
// alongside the error.
func (u *BatchUseCase) Run(queries []string, mode Mode, progress func(done, total int)) (BatchReport, error) {
	start := time.Now()
	report := BatchReport{
		RunID:     uuid.NewString(),
		Model:     u.model,
		Mode:      mode,
		StartedAt: start.UTC(),
		Results:   make([]domain.Comparison, 0, len(queries)),
	}

	for i, q := range queries {
		cmp, err := u.answer.Answer(q, mode)
		if err != nil {
			report.Elapsed = time.Since(start).String()
			return report, fmt.Errorf("query %d (%q): %w", i+1, q, err)
		}
		report.Results = append(report.Results, cmp)
		if progress != nil {
			progress(i+1, len(queries))
		}
	}

	report.Elapsed = time.Since(start).String()
	return report, nil
}

// ReadQueries reads one query per line, skipping blank lines and lines
// starting with '#'.
func ReadQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}
