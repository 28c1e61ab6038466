package kb

import (
	"fmt"
	"path/filepath"

	"ragdemo/config"
	"ragdemo/internal/port"
)

// NewSource builds the configured knowledge source. Relative paths resolve
// against baseDir.
func NewSource(cfg config.KnowledgeConfig, baseDir string) (port.KnowledgeSource, error) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	switch cfg.Source {
	case "", "builtin":
		return NewBuiltinSource(), nil
	case "yaml":
		return NewYAMLSource(resolve(cfg.Path)), nil
	case "dir":
		return NewDirSource(resolve(cfg.Path), cfg.Includes, cfg.Excludes), nil
	default:
		return nil, fmt.Errorf("unsupported knowledge source: %s", cfg.Source)
	}
}
