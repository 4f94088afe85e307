package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"werewolfgm/internal/game"
)

// regulationDoc is the on-disk YAML form of a regulation
type regulationDoc struct {
	Roles          map[string]int `yaml:"roles"`
	DiscussionTime time.Duration  `yaml:"discussionTime"`
}

// RegulationFile reads and writes a YAML file of named regulations, so a GM
// can keep favorite setups between sessions.
type RegulationFile struct {
	path string
}

// NewRegulationFile points at the regulations file under the data directory
func NewRegulationFile(path string) *RegulationFile {
	return &RegulationFile{path: path}
}

// Save adds or replaces the named regulation in the file
func (f *RegulationFile) Save(name string, reg game.Regulation) error {
	docs, err := f.readAll()
	if err != nil {
		return err
	}

	roles := make(map[string]int, len(reg.Roles))
	for role, count := range reg.Roles {
		roles[string(role)] = count
	}
	docs[name] = regulationDoc{Roles: roles, DiscussionTime: reg.DiscussionTime}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshal regulations: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write regulations file: %w", err)
	}
	return nil
}

// Load returns every named regulation in the file. A missing file is an
// empty result, not an error.
func (f *RegulationFile) Load() (map[string]game.Regulation, error) {
	docs, err := f.readAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string]game.Regulation, len(docs))
	for name, doc := range docs {
		roles := make(map[game.Role]int, len(doc.Roles))
		for roleName, count := range doc.Roles {
			role, err := game.ParseRole(roleName)
			if err != nil {
				return nil, fmt.Errorf("regulation %q: %w", name, err)
			}
			roles[role] = count
		}
		out[name] = game.Regulation{Roles: roles, DiscussionTime: doc.DiscussionTime}
	}
	return out, nil
}

func (f *RegulationFile) readAll() (map[string]regulationDoc, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]regulationDoc{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read regulations file: %w", err)
	}

	docs := map[string]regulationDoc{}
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse regulations file: %w", err)
	}
	return docs, nil
}
