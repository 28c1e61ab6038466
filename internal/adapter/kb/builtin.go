package kb

import "ragdemo/internal/domain"

// ProjectChimera returns the three-document demo knowledge base.
func ProjectChimera() domain.KnowledgeBase {
	return domain.MustKnowledgeBase(
		domain.Document{
			ID:    "doc1",
			Title: "Project Chimera Overview",
			Content: "Project Chimera is a research initiative focused on developing " +
				"novel bio-integrated interfaces. It aims to merge biological " +
				"systems with advanced computing technologies.",
		},
		domain.Document{
			ID:    "doc2",
			Title: "Chimera's Neural Interface",
			Content: "The core component of Project Chimera is a neural interface " +
				"that allows for bidirectional communication between the brain " +
				"and external devices. This interface uses biocompatible " +
				"nanomaterials.",
		},
		domain.Document{
			ID:    "doc3",
			Title: "Applications of Chimera",
			Content: "Potential applications of Project Chimera include advanced " +
				"prosthetics, treatment of neurological disorders, and enhanced " +
				"human-computer interaction. Ethical considerations are paramount.",
		},
	)
}

type BuiltinSource struct{}

func NewBuiltinSource() *BuiltinSource {
	return &BuiltinSource{}
}

func (s *BuiltinSource) Load() (domain.KnowledgeBase, error) {
	return ProjectChimera(), nil
}

func (s *BuiltinSource) Name() string {
	return "builtin:project-chimera"
}
