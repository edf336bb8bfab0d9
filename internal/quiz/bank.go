package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Bank holds the question pool, grouped by difficulty and indexed by id.
// Reads dominate; the replenisher may append while requests are served,
// hence the RWMutex.
type Bank struct {
	mu           sync.RWMutex
	byDifficulty map[string][]Question
	byID         map[int]Question
}

// NewBank builds a bank from a difficulty → questions mapping. Each
// question gets its tier stamped as Difficulty; topic defaults to
// "general".
func NewBank(m map[string][]Question) (*Bank, error) {
	b := &Bank{
		byDifficulty: map[string][]Question{},
		byID:         map[int]Question{},
	}
	for tier, qs := range m {
		for _, q := range qs {
			q.Difficulty = tier
			if q.Topic == "" {
				q.Topic = "general"
			}
			if _, dup := b.byID[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %d", q.ID)
			}
			b.byID[q.ID] = q
			b.byDifficulty[tier] = append(b.byDifficulty[tier], q)
		}
	}
	return b, nil
}

// LoadBank reads the questions file: {"easy": [...], "medium": [...], "hard": [...]}.
func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	var m map[string][]Question
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	return NewBank(m)
}

// Get looks a question up by id, any tier.
func (b *Bank) Get(id int) (Question, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	q, ok := b.byID[id]
	return q, ok
}

// Tier returns a copy of one difficulty's pool.
func (b *Bank) Tier(difficulty string) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	qs := b.byDifficulty[difficulty]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Append adds generated questions to a tier. Duplicate or zero ids are
// rejected so the bank's id index stays unique.
func (b *Bank) Append(difficulty string, qs ...Question) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, q := range qs {
		if q.ID <= 0 {
			return fmt.Errorf("question id must be positive, got %d", q.ID)
		}
		if _, dup := b.byID[q.ID]; dup {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		q.Difficulty = difficulty
		if q.Topic == "" {
			q.Topic = "general"
		}
		b.byID[q.ID] = q
		b.byDifficulty[difficulty] = append(b.byDifficulty[difficulty], q)
	}
	return nil
}

// MaxID returns the highest id in the bank, 0 when empty.
func (b *Bank) MaxID() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	max := 0
	for id := range b.byID {
		if id > max {
			max = id
		}
	}
	return max
}
