package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"ragdemo/internal/domain"
)

// YAMLSource loads documents from a file shaped like:
//
//	documents:
//	  - id: doc1
//	    title: Project Chimera Overview
//	    content: ...
type YAMLSource struct {
	path string
}

type yamlKnowledgeBase struct {
	Documents []domain.Document `yaml:"documents"`
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

func (s *YAMLSource) Load() (domain.KnowledgeBase, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.KnowledgeBase{}, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var file yamlKnowledgeBase
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.KnowledgeBase{}, fmt.Errorf("failed to parse knowledge base %s: %w", s.path, err)
	}

	return domain.NewKnowledgeBase(file.Documents...)
}

func (s *YAMLSource) Name() string {
	return "yaml:" + s.path
}

// SaveYAML writes kb in the format YAMLSource reads.
func SaveYAML(path string, kb domain.KnowledgeBase) error {
	data, err := yaml.Marshal(yamlKnowledgeBase{Documents: kb.Documents()})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
