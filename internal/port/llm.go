package port

// LLM represents a language model for text generation.
type LLM interface {
	// Generate sends the prompt as-is and returns the model's reply.
	Generate(prompt string) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}
