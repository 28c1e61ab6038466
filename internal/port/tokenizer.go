package port

type Tokenizer interface {
	Tokenize(text string) []string

	WordSet(text string) map[string]struct{}
}
