package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/thekasyap/thinkbot/internal/profile"
)

// ErrNoQuestion is returned when the candidate pool is empty even after
// every fallback. Callers surface it as "no question available".
var ErrNoQuestion = errors.New("no question available")

const recencyWindow = 10

// Selector picks the next question from the bank using the student's
// engagement level, pace and recent accuracy.
type Selector struct {
	bank *Bank

	// MinPool is the tier size below which Replenish is signalled.
	MinPool int

	// Replenish, when set, is asked to top the bank up before selection.
	// Strictly best effort: it must swallow its own failures and the
	// selector proceeds with whatever pool exists either way.
	Replenish func(difficulty, topic string)
}

func NewSelector(bank *Bank) *Selector {
	return &Selector{bank: bank, MinPool: 5}
}

// Next chooses difficulty and question for the student. topic optionally
// narrows the pool; an impossible topic is dropped rather than failing.
func (s *Selector) Next(p *profile.Profile, topic string) (Question, error) {
	difficulty := s.chooseDifficulty(p)

	pool := s.bank.Tier(difficulty)

	// Topic filter, with cross-tier rescue: if the requested topic exists
	// only at another difficulty, follow it there.
	if topic != "" {
		if filtered := filterTopic(pool, topic); len(filtered) > 0 {
			pool = filtered
		} else {
			rescued := false
			for _, tier := range tiers() {
				if tier == difficulty {
					continue
				}
				if alt := filterTopic(s.bank.Tier(tier), topic); len(alt) > 0 {
					difficulty, pool = tier, alt
					rescued = true
					break
				}
			}
			if !rescued {
				// Topic unavailable anywhere: keep the chosen tier's full pool.
				pool = s.bank.Tier(difficulty)
			}
		}
	}

	// Don't repeat any of the last 10 answered questions, unless that
	// would leave nothing to ask.
	fresh := excludeRecent(pool, recentIDs(p))
	if len(fresh) > 0 {
		pool = fresh
	} else if len(pool) == 0 {
		pool = s.bank.Tier(difficulty)
	}

	if len(pool) < s.MinPool && s.Replenish != nil {
		s.Replenish(difficulty, topic)
		// One refresh, re-applying the same filters so a topped-up tier
		// cannot smuggle off-topic questions into a topic-filtered pick.
		refreshed := s.bank.Tier(difficulty)
		if topic != "" {
			if filtered := filterTopic(refreshed, topic); len(filtered) > 0 {
				refreshed = filtered
			}
		}
		if refreshed = excludeRecent(refreshed, recentIDs(p)); len(refreshed) > 0 {
			pool = refreshed
		}
	}

	if len(pool) == 0 {
		return Question{}, ErrNoQuestion
	}
	return pool[rand.IntN(len(pool))], nil
}

// chooseDifficulty applies the adaptation rules in priority order.
func (s *Selector) chooseDifficulty(p *profile.Profile) string {
	recent := recentAccuracy(p)
	engagement := p.EngagementLevel
	pace := p.Pace()

	switch {
	case engagement == profile.LevelStruggling || recent < 0.3:
		return DifficultyEasy
	case engagement == profile.LevelHighlyEngaged && recent > 0.8:
		return DifficultyHard
	case pace == "fast" && recent > 0.7:
		return DifficultyHard
	case pace == "slow" && recent < 0.6:
		return DifficultyEasy
	default:
		return DifficultyMedium
	}
}

// recentAccuracy is correctness over the last 5 sessions, falling back to
// lifetime accuracy when fewer exist.
func recentAccuracy(p *profile.Profile) float64 {
	n := len(p.Sessions)
	if n == 0 {
		return p.Accuracy()
	}
	lo := n - 5
	if lo < 0 {
		lo = 0
	}
	recent := p.Sessions[lo:]
	if len(recent) < 5 {
		return p.Accuracy()
	}
	c := 0
	for _, r := range recent {
		if r.Correct {
			c++
		}
	}
	return float64(c) / float64(len(recent))
}

func recentIDs(p *profile.Profile) map[int]bool {
	ids := map[int]bool{}
	n := len(p.Sessions)
	lo := n - recencyWindow
	if lo < 0 {
		lo = 0
	}
	for _, r := range p.Sessions[lo:] {
		ids[r.QuestionID] = true
	}
	return ids
}

func filterTopic(qs []Question, topic string) []Question {
	var out []Question
	for _, q := range qs {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	return out
}

func excludeRecent(qs []Question, recent map[int]bool) []Question {
	var out []Question
	for _, q := range qs {
		if !recent[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
