package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps one JSON file per student under a base directory,
// student_<name>.json. This is the default store: cheap to host and easy
// to inspect by hand.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) path(name string) string {
	return filepath.Join(s.base, "student_"+sanitizeName(name)+".json")
}

func (s *FSStore) Load(_ context.Context, name string) (*Profile, error) {
	raw, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return New(name), nil
	}
	if err != nil {
		return nil, err
	}
	p, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return p, nil
}

func (s *FSStore) Save(_ context.Context, p *Profile) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(p.Name), raw, 0o644)
}

func (s *FSStore) Names(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if strings.HasPrefix(n, "student_") && strings.HasSuffix(n, ".json") {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(n, "student_"), ".json"))
		}
	}
	return names, nil
}

// sanitizeName maps a student name to a safe file-key. Path separators and
// dots collapse to underscores so names cannot escape the base directory.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
