package profile

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
)

// ErrCorruptProfile marks a persisted profile that cannot be parsed.
// Missing fields are defaulted on load; this is only for structural damage.
var ErrCorruptProfile = errors.New("corrupt profile record")

// Store is the durable container for per-student state. Load returns a
// fresh zeroed profile for unknown names; Save overwrites prior state and
// is idempotent.
type Store interface {
	Load(ctx context.Context, name string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Names(ctx context.Context) ([]string, error)
}

type memStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore returns an in-memory Store, used in tests and as a fallback.
// Profiles round-trip through JSON so serialization bugs surface here too.
func NewMemStore() Store {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, name string) (*Profile, error) {
	m.mu.RLock()
	raw, ok := m.data[name]
	m.mu.RUnlock()
	if !ok {
		return New(name), nil
	}
	return decode(raw)
}

func (m *memStore) Save(_ context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[p.Name] = raw
	m.mu.Unlock()
	return nil
}

func (m *memStore) Names(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for n := range m.data {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func decode(raw []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Join(ErrCorruptProfile, err)
	}
	p.migrate()
	return &p, nil
}
