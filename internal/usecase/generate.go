package usecase

import (
	"ragdemo/internal/domain"
	"ragdemo/internal/port"
)

// GenerateUseCase assembles prompts and hands them to the LLM.
//
// LLM errors are returned exactly as the LLM produced them; this layer does
// not wrap, log or retry them.
type GenerateUseCase struct {
	llm     port.LLM
	prompts port.PromptBuilder
}

// NewGenerateUseCase creates a new generate use case.
func NewGenerateUseCase(llm port.LLM, prompts port.PromptBuilder) *GenerateUseCase {
	return &GenerateUseCase{
		llm:     llm,
		prompts: prompts,
	}
}

// GenerateNaive asks the LLM to answer query without any context.
func (u *GenerateUseCase) GenerateNaive(query string) (string, error) {
	prompt, err := u.prompts.BuildNaive(query)
	if err != nil {
		return "", err
	}
	return u.llm.Generate(prompt)
}

// GenerateWithContext asks the LLM to answer query from docs, in the given
// order.
func (u *GenerateUseCase) GenerateWithContext(query string, docs []domain.Document) (string, error) {
	prompt, err := u.prompts.BuildWithContext(query, docs)
	if err != nil {
		return "", err
	}
	return u.llm.Generate(prompt)
}

func (u *GenerateUseCase) ModelName() string {
	return u.llm.ModelName()
}
