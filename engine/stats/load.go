package stats

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1siamBot/arena-engine/engine/ability"
)

type templateFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	Template  `yaml:",inline"`
	Abilities []string `yaml:"abilities"`
}

// Load decodes a YAML template list and registers every entry
func (r *Registry) Load(src io.Reader) error {
	var f templateFile
	if err := yaml.NewDecoder(src).Decode(&f); err != nil {
		return fmt.Errorf("decode templates: %w", err)
	}
	for _, e := range f.Templates {
		t := e.Template
		t.Abilities = nil
		for _, name := range e.Abilities {
			id, err := ability.ParseID(name)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidTemplate, t.Name, err)
			}
			t.Abilities = append(t.Abilities, id)
		}
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile opens path and loads it into the registry
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open templates: %w", err)
	}
	defer f.Close()
	return r.Load(f)
}
