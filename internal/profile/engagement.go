package profile

// computeEngagement produces the 0-100 engagement score and its discrete
// level. Deterministic given the profile's current counters and session
// sequence; called by RecordSession so reads never mutate state.
func computeEngagement(p *Profile) (score float64, level string) {
	if p.Quizzes < 2 {
		return 0, LevelLearning
	}

	// Core performance: 40% of the total.
	core := p.Accuracy()*100*0.25 + p.RecentPerformance()*100*0.15

	// Behavioral: skips, hint leaning and hesitation erode a 100 base.
	behavioral := 100.0
	behavioral -= p.SkipRate() * 50
	behavioral -= p.HintDependency() * 30
	hes := p.HesitationScore() * 25
	if hes > 30 {
		hes = 30
	}
	behavioral -= hes
	if behavioral < 0 {
		behavioral = 0
	}

	// Consistency and positive momentum.
	momentum := p.LearningMomentum()
	if momentum < 0 {
		momentum = 0
	}
	if momentum > 20 {
		momentum = 20
	}
	steadiness := p.ConsistencyScore()*0.15 + (50+momentum)*0.05

	raw := core + behavioral*0.25 + steadiness + timeEfficiency(p.AverageResponseTime())*0.15

	// Learning-curve adjustment: grace for newcomers, slight decay for
	// long histories.
	switch {
	case p.Quizzes < 10:
		raw *= 1.10
		if raw > 100 {
			raw = 100
		}
	case p.Quizzes > 50:
		raw *= 0.95
	}

	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}
	return raw, levelFor(raw)
}

// timeEfficiency maps average response time to a 0-100 sub-score. The
// 15-45s band is the optimal range; very fast answers earn less (likely
// guessing), very slow ones decay toward a floor of 20.
func timeEfficiency(avg float64) float64 {
	switch {
	case avg <= 0:
		return 60
	case avg < 15:
		return 60 + 20*(avg/15)
	case avg <= 45:
		return 80 + 20*((avg-15)/30)
	case avg <= 90:
		return 80 - 30*((avg-45)/45)
	default:
		s := 50 - 30*((avg-90)/90)
		if s < 20 {
			return 20
		}
		return s
	}
}

func levelFor(score float64) string {
	switch {
	case score >= 85:
		return LevelHighlyEngaged
	case score >= 70:
		return LevelEngaged
	case score >= 55:
		return LevelModerate
	case score >= 35:
		return LevelStruggling
	default:
		return LevelDisengaged
	}
}
