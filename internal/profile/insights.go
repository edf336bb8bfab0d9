package profile

import "math"

// Insights is the per-student learning report served to teachers.
type Insights struct {
	StudentName         string  `json:"student_name"`
	TotalQuizzes        int     `json:"total_quizzes"`
	QuizSessions        int     `json:"quiz_sessions"`
	Accuracy            float64 `json:"accuracy"` // percent
	LearningStyle       string  `json:"learning_style"`
	EngagementLevel     string  `json:"engagement_level"`
	EngagementScore     float64 `json:"engagement_score"`
	LearningPace        string  `json:"learning_pace"`
	AverageResponseTime float64 `json:"average_response_time"`
	HesitationScore     float64 `json:"hesitation_score"`
	SkipRate            float64 `json:"skip_rate"`
	HintDependency      float64 `json:"hint_dependency"`
	ConsistencyScore    float64 `json:"consistency_score"`
	LearningMomentum    float64 `json:"learning_momentum"`
	ImprovementTrend    float64 `json:"improvement_trend"`
	LastActivity        string  `json:"last_activity"`
	NeedsAttention      bool    `json:"needs_attention"`

	TopicPreferences map[string]*TopicStat `json:"topic_preferences,omitempty"`
	StyleAnalysis    *StyleAnalysis        `json:"style_analysis,omitempty"`
}

// LearningInsights summarizes the profile for the teacher dashboard.
func (p *Profile) LearningInsights() Insights {
	level := p.EngagementLevel
	needsAttention := (level == LevelStruggling || level == LevelModerate) && p.Accuracy() < 0.5
	return Insights{
		StudentName:         p.Name,
		TotalQuizzes:        p.Quizzes,
		QuizSessions:        p.QuizSessionsClosed,
		Accuracy:            round1(p.Accuracy() * 100),
		LearningStyle:       p.LearningStyle,
		EngagementLevel:     level,
		EngagementScore:     round2(p.EngagementScore),
		LearningPace:        p.Pace(),
		AverageResponseTime: round1(p.AverageResponseTime()),
		HesitationScore:     round2(p.HesitationScore()),
		SkipRate:            round2(p.SkipRate()),
		HintDependency:      round2(p.HintDependency()),
		ConsistencyScore:    round1(p.ConsistencyScore()),
		LearningMomentum:    round1(p.LearningMomentum()),
		ImprovementTrend:    round1(p.ImprovementTrend),
		LastActivity:        p.LastActivity,
		NeedsAttention:      needsAttention,
	}
}

// DetailedInsights adds topic breakdown and the style analysis report.
func (p *Profile) DetailedInsights() Insights {
	in := p.LearningInsights()
	in.TopicPreferences = p.TopicPreferences
	analysis := AnalyzeStyle(p)
	in.StyleAnalysis = &analysis
	return in
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
