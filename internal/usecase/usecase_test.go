package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ragdemo/internal/adapter/analyzer"
	"ragdemo/internal/adapter/kb"
	"ragdemo/internal/adapter/llm"
	"ragdemo/internal/adapter/retriever"
	"ragdemo/internal/domain"
)

const chimeraQuery = "What is the main goal of Project Chimera?"

func newPrompts(t *testing.T) *PromptUseCase {
	t.Helper()
	p, err := NewPromptUseCase()
	require.NoError(t, err)
	return p
}

func newAnswer(t *testing.T, model *llm.MockLLM, minScore int) *AnswerUseCase {
	t.Helper()
	r := NewRetrieveUseCase(retriever.NewOverlapRetriever(analyzer.NewTokenizer()), kb.ProjectChimera(), minScore, 0)
	g := NewGenerateUseCase(model, newPrompts(t))
	return NewAnswerUseCase(r, g, nil)
}

func TestPrompt_Naive(t *testing.T) {
	p := newPrompts(t)

	got, err := p.BuildNaive(chimeraQuery)
	require.NoError(t, err)
	assert.Equal(t, "Answer directly the following query: "+chimeraQuery, got)
}

func TestPrompt_EmptyContext(t *testing.T) {
	p := newPrompts(t)

	got, err := p.BuildWithContext(chimeraQuery, nil)
	require.NoError(t, err)
	assert.Equal(t, "No relevant information found. Answer directly: "+chimeraQuery, got)

	for _, d := range kb.ProjectChimera().Documents() {
		assert.NotContains(t, got, d.Title)
	}
}

func TestPrompt_WithContext(t *testing.T) {
	p := newPrompts(t)
	docs := []domain.Document{
		{ID: "b", Title: "Second", Content: "two"},
		{ID: "a", Title: "First", Content: "one"},
	}

	got, err := p.BuildWithContext("which?", docs)
	require.NoError(t, err)

	want := "Use the following information to answer the query. If the information is not sufficient, say so.\n\n" +
		"Context:\n" +
		"- Second: two\n" +
		"- First: one\n\n" +
		"Query: which?"
	assert.Equal(t, want, got)
}

func TestPrompt_NoHTMLEscaping(t *testing.T) {
	p := newPrompts(t)

	got, err := p.BuildWithContext("a <b> & 'c'?", []domain.Document{{ID: "x", Title: "T&C", Content: "<ok>"}})
	require.NoError(t, err)
	assert.Contains(t, got, "- T&C: <ok>")
	assert.True(t, strings.HasSuffix(got, "Query: a <b> & 'c'?"))
}

func TestGenerate_PassesPromptVerbatim(t *testing.T) {
	model := llm.NewMockLLM("answer text")
	g := NewGenerateUseCase(model, newPrompts(t))

	out, err := g.GenerateWithContext("q", []domain.Document{{ID: "1", Title: "T", Content: "C"}})
	require.NoError(t, err)
	assert.Equal(t, "answer text", out)

	want, _ := newPrompts(t).BuildWithContext("q", []domain.Document{{ID: "1", Title: "T", Content: "C"}})
	assert.Equal(t, []string{want}, model.Prompts())
}

func TestGenerate_ErrorUnchanged(t *testing.T) {
	sentinel := errors.New("rate limited")
	g := NewGenerateUseCase(llm.NewFailingLLM(sentinel), newPrompts(t))

	_, err := g.GenerateNaive("q")
	assert.Same(t, sentinel, err)

	_, err = g.GenerateWithContext("q", nil)
	assert.Same(t, sentinel, err)
}

func TestAnswer_Compare(t *testing.T) {
	model := llm.NewMockLLM("reply")
	a := newAnswer(t, model, 1)

	cmp, err := a.Compare(chimeraQuery)
	require.NoError(t, err)

	assert.Equal(t, chimeraQuery, cmp.Query)
	assert.Equal(t, "reply", cmp.Naive)
	assert.Equal(t, "reply", cmp.RAG)
	require.Len(t, cmp.Documents, 3)
	assert.Equal(t, "doc1", cmp.Documents[0].ID)
	assert.Equal(t, "doc2", cmp.Documents[1].ID)

	prompts := model.Prompts()
	require.Len(t, prompts, 2)
	assert.True(t, strings.HasPrefix(prompts[0], "Answer directly the following query:"))
	assert.Contains(t, prompts[1], "- Project Chimera Overview: Project Chimera is a research initiative")
}

func TestAnswer_NoMatches(t *testing.T) {
	model := llm.NewMockLLM("reply")
	a := newAnswer(t, model, 1)

	cmp, err := a.Answer("zzzz qqqq", ModeRAG)
	require.NoError(t, err)
	assert.Empty(t, cmp.Documents)
	assert.NotNil(t, cmp.Documents)
	assert.Equal(t, "", cmp.Naive)

	prompts := model.Prompts()
	require.Len(t, prompts, 1)
	assert.Equal(t, "No relevant information found. Answer directly: zzzz qqqq", prompts[0])
}

func TestAnswer_NaiveOnlySkipsRetrieval(t *testing.T) {
	model := llm.NewMockLLM("reply")
	a := newAnswer(t, model, 1)

	cmp, err := a.Answer(chimeraQuery, ModeNaive)
	require.NoError(t, err)
	assert.Equal(t, "reply", cmp.Naive)
	assert.Equal(t, "", cmp.RAG)
	assert.Empty(t, cmp.Documents)
	assert.Len(t, model.Prompts(), 1)
}

func TestAnswer_LLMErrorUnchanged(t *testing.T) {
	sentinel := errors.New("upstream unavailable")
	a := newAnswer(t, llm.NewFailingLLM(sentinel), 1)

	_, err := a.Compare(chimeraQuery)
	assert.Same(t, sentinel, err)
}

func TestAnswer_InvalidMinScore(t *testing.T) {
	a := newAnswer(t, llm.NewMockLLM("x"), -1)

	_, err := a.Answer(chimeraQuery, ModeRAG)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "got %v", err)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"naive", "rag", "both"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeBoth, m)

	_, err = ParseMode("hybrid")
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestRetrieve_MaxDocuments(t *testing.T) {
	r := NewRetrieveUseCase(retriever.NewOverlapRetriever(nil), kb.ProjectChimera(), 1, 2)

	docs, err := r.Retrieve(chimeraQuery)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc1", docs[0].ID)
	assert.Equal(t, "doc2", docs[1].ID)

	ranked, err := r.RankWithMinScore("", 0)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
	assert.Equal(t, 1, r.MinScore())
	assert.Equal(t, 3, r.KnowledgeBase().Len())
}

func TestBatch_Run(t *testing.T) {
	model := llm.NewMockLLM("reply")
	b := NewBatchUseCase(newAnswer(t, model, 1), model.ModelName())

	var calls []int
	report, err := b.Run([]string{chimeraQuery, "neural interface"}, ModeBoth, func(done, total int) {
		assert.Equal(t, 2, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "mock", report.Model)
	assert.Len(t, report.Results, 2)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestBatch_AbortsOnError(t *testing.T) {
	sentinel := errors.New("quota exceeded")
	b := NewBatchUseCase(newAnswer(t, llm.NewFailingLLM(sentinel), 1), "mock")

	report, err := b.Run([]string{"a", "b"}, ModeNaive, nil)
	assert.True(t, errors.Is(err, sentinel))
	assert.Empty(t, report.Results)
}

func TestReadQueries(t *testing.T) {
	input := "# comment\nfirst query\n\n   second query  \n"

	queries, err := ReadQueries(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"first query", "second query"}, queries)
}
