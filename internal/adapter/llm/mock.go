package llm

import (
	"fmt"
	"strings"
	"sync"
)

// MockLLM answers without a network call. It records every prompt it sees.
type MockLLM struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

// NewMockLLM returns a mock that replies with response. An empty response
// makes it describe the prompt it received instead.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{response: response}
}

// NewFailingLLM returns a mock whose every call fails with err.
func NewFailingLLM(err error) *MockLLM {
	return &MockLLM{err: err}
}

func (m *MockLLM) Generate(prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}
	if m.response != "" {
		return m.response, nil
	}

	firstLine, _, _ := strings.Cut(prompt, "\n")
	return fmt.Sprintf("[mock] %d-char prompt starting %q", len(prompt), firstLine), nil
}

func (m *MockLLM) ModelName() string {
	return "mock"
}

// Prompts returns the prompts received so far.
func (m *MockLLM) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
