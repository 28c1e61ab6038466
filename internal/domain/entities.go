package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDuplicateDocument = errors.New("duplicate document id")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrEmptyQuery        = errors.New("query is required")
)

type Document struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

type Query struct {
	Text string
}

type ScoredDocument struct {
	Document Document `json:"document"`
	Score    int      `json:"score"`
}

// Comparison holds both answers for one query.
type Comparison struct {
	Query     string     `json:"query"`
	Naive     string     `json:"naive,omitempty"`
	RAG       string     `json:"rag,omitempty"`
	Documents []Document `json:"documents"`
}

// KnowledgeBase is a fixed set of documents keyed by id. The zero value is an
// empty knowledge base. Definition order is kept so equal scores rank the same
// way on every call.
type KnowledgeBase struct {
	docs  []Document
	index map[string]int
}

// NewKnowledgeBase builds a knowledge base from docs in the given order.
func NewKnowledgeBase(docs ...Document) (KnowledgeBase, error) {
	kb := KnowledgeBase{
		docs:  make([]Document, 0, len(docs)),
		index: make(map[string]int, len(docs)),
	}
	for _, doc := range docs {
		if doc.ID == "" {
			return KnowledgeBase{}, fmt.Errorf("%w: document id is empty (title %q)", ErrInvalidArgument, doc.Title)
		}
		if _, exists := kb.index[doc.ID]; exists {
			return KnowledgeBase{}, fmt.Errorf("%w: %s", ErrDuplicateDocument, doc.ID)
		}
		kb.index[doc.ID] = len(kb.docs)
		kb.docs = append(kb.docs, doc)
	}
	return kb, nil
}

// MustKnowledgeBase is like NewKnowledgeBase but panics on error. Intended for
// literal, compile-time document sets.
func MustKnowledgeBase(docs ...Document) KnowledgeBase {
	kb, err := NewKnowledgeBase(docs...)
	if err != nil {
		panic(err)
	}
	return kb
}

func (kb KnowledgeBase) Len() int {
	return len(kb.docs)
}

func (kb KnowledgeBase) Get(id string) (Document, error) {
	i, ok := kb.index[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return kb.docs[i], nil
}

// Documents returns a copy of the documents in definition order.
func (kb KnowledgeBase) Documents() []Document {
	out := make([]Document, len(kb.docs))
	copy(out, kb.docs)
	return out
}

// Each calls fn for every document in definition order.
func (kb KnowledgeBase) Each(fn func(Document)) {
	for _, doc := range kb.docs {
		fn(doc)
	}
}
