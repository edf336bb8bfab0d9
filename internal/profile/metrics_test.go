package profile

import (
	"math"
	"testing"
)

func record(correct bool, respTime float64) SessionRecord {
	return SessionRecord{
		QuestionID:   1,
		Difficulty:   "medium",
		Topic:        "general",
		Correct:      correct,
		ResponseTime: respTime,
	}
}

func buildProfile(t *testing.T, recs ...SessionRecord) *Profile {
	t.Helper()
	p := New("test")
	for i, r := range recs {
		r.QuestionID = i + 1
		p.RecordSession(r)
	}
	return p
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMetricsZeroSessions(t *testing.T) {
	p := New("empty")
	if got := p.Accuracy(); got != 0 {
		t.Errorf("accuracy = %v, want 0", got)
	}
	if got := p.AverageResponseTime(); got != 0 {
		t.Errorf("avg response time = %v, want 0", got)
	}
	if got := p.HesitationScore(); got != 0 {
		t.Errorf("hesitation = %v, want 0", got)
	}
	if got := p.SkipRate(); got != 0 {
		t.Errorf("skip rate = %v, want 0", got)
	}
	if got := p.HintDependency(); got != 0 {
		t.Errorf("hint dependency = %v, want 0", got)
	}
	if got := p.LearningMomentum(); got != 0 {
		t.Errorf("momentum = %v, want 0", got)
	}
	if p.EngagementLevel != LevelLearning {
		t.Errorf("level = %q, want %q", p.EngagementLevel, LevelLearning)
	}
	// Pace must still return something sane.
	if got := p.Pace(); got != "fast" {
		t.Errorf("pace = %q", got)
	}
}

func TestAccuracy(t *testing.T) {
	p := buildProfile(t, record(true, 10), record(false, 10), record(true, 10), record(true, 10))
	if got := p.Accuracy(); !almostEqual(got, 0.75) {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
	if p.Correct > p.Quizzes {
		t.Fatalf("correct %d > sessions %d", p.Correct, p.Quizzes)
	}
}

func TestAverageResponseTimeAndPace(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		pace  string
	}{
		{"fast", []float64{5, 10, 15}, "fast"},
		{"moderate", []float64{30, 40, 50}, "moderate"},
		{"slow", []float64{70, 80, 90}, "slow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("pace")
			for _, rt := range tt.times {
				p.RecordSession(record(true, rt))
			}
			if got := p.Pace(); got != tt.pace {
				t.Errorf("pace = %q, want %q", got, tt.pace)
			}
		})
	}
}

func TestRecentPerformanceWindow(t *testing.T) {
	// 10 wrong then 10 right: recent window sees only the right ones.
	var recs []SessionRecord
	for i := 0; i < 10; i++ {
		recs = append(recs, record(false, 20))
	}
	for i := 0; i < 10; i++ {
		recs = append(recs, record(true, 20))
	}
	p := buildProfile(t, recs...)
	if got := p.RecentPerformance(); !almostEqual(got, 1.0) {
		t.Errorf("recent performance = %v, want 1.0", got)
	}
	if got := p.Accuracy(); !almostEqual(got, 0.5) {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestRecentPerformanceFallsBackToAccuracy(t *testing.T) {
	p := buildProfile(t, record(true, 20))
	if got := p.RecentPerformance(); !almostEqual(got, p.Accuracy()) {
		t.Errorf("recent performance = %v, want accuracy %v", got, p.Accuracy())
	}
}

func TestConsistencyScore(t *testing.T) {
	p := buildProfile(t, record(true, 20), record(false, 20))
	if got := p.ConsistencyScore(); got != 50.0 {
		t.Errorf("consistency below 3 records = %v, want neutral 50", got)
	}

	// Uniform outcomes: zero variance.
	p = buildProfile(t, record(true, 20), record(true, 20), record(true, 20), record(true, 20))
	if got := p.ConsistencyScore(); !almostEqual(got, 100) {
		t.Errorf("consistency = %v, want 100", got)
	}

	// Perfectly alternating: variance 0.25, score 75.
	p = buildProfile(t,
		record(true, 20), record(false, 20), record(true, 20), record(false, 20),
		record(true, 20), record(false, 20), record(true, 20), record(false, 20),
		record(true, 20), record(false, 20))
	if got := p.ConsistencyScore(); !almostEqual(got, 75) {
		t.Errorf("consistency = %v, want 75", got)
	}
}

func TestLearningMomentum(t *testing.T) {
	if got := buildProfile(t, record(true, 20)).LearningMomentum(); got != 0 {
		t.Errorf("momentum under 5 records = %v, want 0", got)
	}

	// 5 wrong then 5 right: strong positive momentum.
	p := buildProfile(t,
		record(false, 20), record(false, 20), record(false, 20), record(false, 20), record(false, 20),
		record(true, 20), record(true, 20), record(true, 20), record(true, 20), record(true, 20))
	if got := p.LearningMomentum(); !almostEqual(got, 100) {
		t.Errorf("momentum = %v, want 100", got)
	}

	// Reversed: strong negative.
	p = buildProfile(t,
		record(true, 20), record(true, 20), record(true, 20), record(true, 20), record(true, 20),
		record(false, 20), record(false, 20), record(false, 20), record(false, 20), record(false, 20))
	if got := p.LearningMomentum(); !almostEqual(got, -100) {
		t.Errorf("momentum = %v, want -100", got)
	}
}

func TestHintSkipHesitationRates(t *testing.T) {
	p := New("rates")
	p.RecordSession(SessionRecord{QuestionID: 1, Difficulty: "easy", Correct: true, HintsUsed: 2, AnswerChanges: 3})
	p.RecordSession(SessionRecord{QuestionID: 2, Difficulty: "easy", Skipped: true})
	if got := p.HintDependency(); !almostEqual(got, 1.0) {
		t.Errorf("hint dependency = %v, want 1.0", got)
	}
	if got := p.SkipRate(); !almostEqual(got, 0.5) {
		t.Errorf("skip rate = %v, want 0.5", got)
	}
	if got := p.HesitationScore(); !almostEqual(got, 1.5) {
		t.Errorf("hesitation = %v, want 1.5", got)
	}
}
