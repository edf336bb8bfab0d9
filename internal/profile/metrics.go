package profile

// Pure derived statistics over the profile's counters and session history.
// Every division is guarded: with no sessions each metric returns its
// stated default. Nothing here mutates the profile.

// Accuracy is lifetime correct/total, 0 with no sessions.
func (p *Profile) Accuracy() float64 {
	if p.Quizzes == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Quizzes)
}

// AverageResponseTime in seconds, 0 with no sessions.
func (p *Profile) AverageResponseTime() float64 {
	if p.Quizzes == 0 {
		return 0
	}
	return p.TotalResponseTime / float64(p.Quizzes)
}

// HesitationScore is answer changes per session. Higher means more hesitation.
func (p *Profile) HesitationScore() float64 {
	if p.Quizzes == 0 {
		return 0
	}
	return float64(p.TotalAnswerChanges) / float64(p.Quizzes)
}

// SkipRate is the fraction of sessions skipped.
func (p *Profile) SkipRate() float64 {
	if p.Quizzes == 0 {
		return 0
	}
	return float64(p.TotalSkipped) / float64(p.Quizzes)
}

// HintDependency is hints per session, conceptually 0-1 but not clamped.
func (p *Profile) HintDependency() float64 {
	if p.Quizzes == 0 {
		return 0
	}
	return float64(p.TotalHintsUsed) / float64(p.Quizzes)
}

// RecentPerformance is accuracy over the last 10 sessions. With fewer than
// 2 records it falls back to lifetime accuracy.
func (p *Profile) RecentPerformance() float64 {
	if len(p.Sessions) < 2 {
		return p.Accuracy()
	}
	return correctRate(tail(p.Sessions, 10))
}

// ConsistencyScore rates the stability of recent correctness on a 0-100
// scale: 100 means uniform outcomes, lower means streaky. Neutral 50 with
// fewer than 3 records.
func (p *Profile) ConsistencyScore() float64 {
	if len(p.Sessions) < 3 {
		return 50.0
	}
	recent := tail(p.Sessions, 10)
	mean := correctRate(recent)
	variance := 0.0
	for _, r := range recent {
		v := 0.0
		if r.Correct {
			v = 1.0
		}
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(recent))
	score := 100 - 100*variance
	if score < 0 {
		return 0
	}
	return score
}

// LearningMomentum compares the correctness rate of the last 5 sessions
// against the preceding 5 (or all available earlier ones). Positive means
// improving, range -100..100. Zero under 5 records.
func (p *Profile) LearningMomentum() float64 {
	n := len(p.Sessions)
	if n < 5 {
		return 0
	}
	recent := p.Sessions[n-5:]
	lo := n - 10
	if lo < 0 {
		lo = 0
	}
	earlier := p.Sessions[lo : n-5]
	if len(earlier) == 0 {
		return 0
	}
	return (correctRate(recent) - correctRate(earlier)) * 100
}

// Pace buckets average response time into fast/moderate/slow.
func (p *Profile) Pace() string {
	avg := p.AverageResponseTime()
	switch {
	case avg < 20:
		return "fast"
	case avg < 60:
		return "moderate"
	default:
		return "slow"
	}
}
