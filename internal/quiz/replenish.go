package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/thekasyap/thinkbot/internal/llm"
)

// Replenisher asks the LLM for fresh questions when a tier runs low.
// Everything about it is best effort: provider failures and malformed
// output are logged and dropped, never surfaced to the student flow.
type Replenisher struct {
	bank     *Bank
	provider llm.Provider
	timeout  time.Duration
	batch    int
}

func NewReplenisher(bank *Bank, provider llm.Provider) *Replenisher {
	return &Replenisher{bank: bank, provider: provider, timeout: 10 * time.Second, batch: 5}
}

// TopUp generates a batch for the given tier and appends whatever parses.
// Safe to call from the selector's low-pool hook.
func (r *Replenisher) TopUp(difficulty, topic string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:   "You write short quiz questions for school students. Reply with JSON only.",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: r.prompt(difficulty, topic)}},
	})
	if err != nil {
		log.Printf("replenish %s: %v", difficulty, err)
		return
	}

	qs, err := parseGenerated(resp.Text)
	if err != nil {
		log.Printf("replenish %s: %v", difficulty, err)
		return
	}

	// Generated questions get ids above the current max so they never
	// collide with the curated bank.
	next := r.bank.MaxID()
	for i := range qs {
		next++
		qs[i].ID = next
		if topic != "" {
			qs[i].Topic = topic
		}
	}
	if err := r.bank.Append(difficulty, qs...); err != nil {
		log.Printf("replenish %s: %v", difficulty, err)
	}
}

func (r *Replenisher) prompt(difficulty, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d %s quiz questions", r.batch, difficulty)
	if topic != "" {
		fmt.Fprintf(&b, " about %s", topic)
	}
	b.WriteString(". Answers must be a single short word or number.\n")
	b.WriteString(`Reply with a JSON array: [{"question": "...", "answer": "...", "topic": "...", "hint": "..."}]`)
	return b.String()
}

func parseGenerated(text string) ([]Question, error) {
	// Models often wrap JSON in a code fence; strip it before parsing.
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "["); i >= 0 {
		if j := strings.LastIndex(text, "]"); j > i {
			text = text[i : j+1]
		}
	}
	var qs []Question
	if err := json.Unmarshal([]byte(text), &qs); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}
	out := qs[:0]
	for _, q := range qs {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable questions in response")
	}
	return out, nil
}
