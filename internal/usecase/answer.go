package usecase

import (
	"fmt"

	"go.uber.org/zap"
	"ragdemo/internal/domain"
)

// Mode selects which answers Answer produces.
type Mode string

const (
	ModeNaive Mode = "naive"
	ModeRAG   Mode = "rag"
	ModeBoth  Mode = "both"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNaive, ModeRAG, ModeBoth:
		return Mode(s), nil
	case "":
		return ModeBoth, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q (want naive, rag or both)", domain.ErrInvalidArgument, s)
	}
}

// AnswerUseCase answers a query naively, with retrieved context, or both.
type AnswerUseCase struct {
	retrieve *RetrieveUseCase
	generate *GenerateUseCase
	logger   *zap.Logger
}

// NewAnswerUseCase creates a new answer use case.
func NewAnswerUseCase(retrieve *RetrieveUseCase, generate *GenerateUseCase, logger *zap.Logger) *AnswerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnswerUseCase{
		retrieve: retrieve,
		generate: generate,
		logger:   logger,
	}
}

// Compare produces both the naive and the RAG answer for query.
func (u *AnswerUseCase) Compare(query string) (domain.Comparison, error) {
	return u.Answer(query, ModeBoth)
}

// Answer runs the requested side(s). The naive answer is generated first,
// then retrieval, then the RAG answer. An LLM failure stops the run and is
// returned unchanged.
func (u *AnswerUseCase) Answer(query string, mode Mode) (domain.Comparison, error) {
	result := domain.Comparison{
		Query:     query,
		Documents: []domain.Document{},
	}

	if mode == ModeNaive || mode == ModeBoth {
		naive, err := u.generate.GenerateNaive(query)
		if err != nil {
			return domain.Comparison{}, err
		}
		result.Naive = naive
	}

	if mode == ModeRAG || mode == ModeBoth {
		docs, err := u.retrieve.Retrieve(query)
		if err != nil {
			return domain.Comparison{}, err
		}
		u.logger.Debug("retrieved documents",
			zap.String("query", query),
			zap.Int("count", len(docs)),
		)

		rag, err := u.generate.GenerateWithContext(query, docs)
		if err != nil {
			return domain.Comparison{}, err
		}
		result.RAG = rag
		result.Documents = docs
	}

	return result, nil
}
