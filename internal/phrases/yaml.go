package phrases

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

// File is the on-disk YAML layout of a phrase list.
type File struct {
	Phrases []fourzi.Entry `yaml:"phrases"`
}

// YAMLLoader reads phrases from a YAML file.
type YAMLLoader struct {
	path string
}

// NewYAMLLoader creates a loader for the YAML file at path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{path: path}
}

// LoadPhrases reads and cleans the phrase list.
func (l *YAMLLoader) LoadPhrases(ctx context.Context) (fourzi.Pool, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading phrases file: %w", err)
	}

	pool, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return nonEmpty(pool, l.path)
}

// ParseYAML decodes a phrase list document.
func ParseYAML(data []byte) (fourzi.Pool, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing phrases file: %w", err)
	}
	return Clean(f.Phrases), nil
}

// SaveYAML writes pool to path as a phrase list document.
func SaveYAML(path string, pool fourzi.Pool) error {
	out, err := yaml.Marshal(&File{Phrases: pool})
	if err != nil {
		return fmt.Errorf("marshaling phrases: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing phrases file: %w", err)
	}

	return nil
}
