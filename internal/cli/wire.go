package cli

import (
	"fmt"

	"go.uber.org/zap"
	"ragdemo/internal/adapter/analyzer"
	"ragdemo/internal/adapter/kb"
	"ragdemo/internal/adapter/llm"
	"ragdemo/internal/adapter/retriever"
	"ragdemo/internal/port"
	"ragdemo/internal/usecase"
)

// components holds everything that does not need an LLM.
type components struct {
	source   port.KnowledgeSource
	retrieve *usecase.RetrieveUseCase
	prompts  *usecase.PromptUseCase
}

func buildComponents() (*components, error) {
	cfg := GetConfig()
	log := GetLogger()

	source, err := kb.NewSource(cfg.Knowledge, GetRootDir())
	if err != nil {
		return nil, err
	}
	base, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}
	log.Debug("knowledge base loaded",
		zap.String("source", source.Name()),
		zap.Int("documents", base.Len()),
	)

	prompts, err := usecase.NewPromptUseCase()
	if err != nil {
		return nil, err
	}

	r := retriever.NewOverlapRetriever(analyzer.NewTokenizer())
	return &components{
		source:   source,
		retrieve: usecase.NewRetrieveUseCase(r, base, cfg.Retrieve.MinScore, cfg.Retrieve.MaxDocuments),
		prompts:  prompts,
	}, nil
}

// buildAnswer adds the configured LLM on top of c.
func buildAnswer(c *components) (*usecase.AnswerUseCase, port.LLM, error) {
	model, err := llm.New(GetConfig().LLM, GetLogger())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	generate := usecase.NewGenerateUseCase(model, c.prompts)
	return usecase.NewAnswerUseCase(c.retrieve, generate, GetLogger()), model, nil
}
