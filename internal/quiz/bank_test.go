package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	b, err := NewBank(map[string][]Question{
		DifficultyEasy: {
			{ID: 1, Question: "2+2?", Answer: "4", Topic: "arithmetic"},
			{ID: 2, Question: "Sky color?", Answer: "blue", Topic: "colors"},
		},
		DifficultyMedium: {
			{ID: 3, Question: "Sides of a hexagon?", Answer: "6", Topic: "geometry"},
		},
		DifficultyHard: {
			{ID: 4, Question: "7*8?", Answer: "56"},
		},
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	return b
}

func TestBankStampsTierAndDefaultTopic(t *testing.T) {
	b := testBank(t)

	q, ok := b.Get(4)
	if !ok {
		t.Fatal("question 4 not found")
	}
	if q.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %q, want %q", q.Difficulty, DifficultyHard)
	}
	if q.Topic != "general" {
		t.Errorf("topic = %q, want general", q.Topic)
	}
}

func TestBankRejectsDuplicateIDs(t *testing.T) {
	_, err := NewBank(map[string][]Question{
		DifficultyEasy: {{ID: 1, Question: "a", Answer: "a"}},
		DifficultyHard: {{ID: 1, Question: "b", Answer: "b"}},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestBankTierReturnsCopy(t *testing.T) {
	b := testBank(t)
	tier := b.Tier(DifficultyEasy)
	if len(tier) != 2 {
		t.Fatalf("easy tier size = %d, want 2", len(tier))
	}
	tier[0].Answer = "mutated"
	if q, _ := b.Get(tier[0].ID); q.Answer == "mutated" {
		t.Error("Tier must not expose the bank's backing slice")
	}
}

func TestBankAppend(t *testing.T) {
	b := testBank(t)
	if err := b.Append(DifficultyEasy, Question{ID: 5, Question: "1+1?", Answer: "2"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := len(b.Tier(DifficultyEasy)); got != 3 {
		t.Errorf("easy tier size after append = %d, want 3", got)
	}
	if b.MaxID() != 5 {
		t.Errorf("MaxID = %d, want 5", b.MaxID())
	}

	if err := b.Append(DifficultyEasy, Question{ID: 5, Question: "dup", Answer: "x"}); err == nil {
		t.Error("expected duplicate id error")
	}
	if err := b.Append(DifficultyEasy, Question{ID: 0, Question: "zero", Answer: "x"}); err == nil {
		t.Error("expected zero id error")
	}
}

func TestLoadBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	raw := `{"easy": [{"id": 1, "question": "2+2?", "answer": "4"}], "hard": []}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	q, ok := b.Get(1)
	if !ok || q.Difficulty != DifficultyEasy {
		t.Errorf("Get(1) = %+v, %v", q, ok)
	}

	if _, err := LoadBank(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
