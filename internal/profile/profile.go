package profile

// Learning styles inferred from answering behavior.
const (
	StyleUnknown     = "unknown"
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleKinesthetic = "kinesthetic"
	StyleReading     = "reading"
)

// Engagement levels, highest first.
const (
	LevelLearning      = "learning" // fewer than 2 sessions
	LevelHighlyEngaged = "highly_engaged"
	LevelEngaged       = "engaged"
	LevelModerate      = "moderate"
	LevelStruggling    = "struggling"
	LevelDisengaged    = "disengaged"
)

const difficultyHistoryMax = 20

// TopicStat aggregates per-topic counters, kept consistent with the
// session history restricted to that topic.
type TopicStat struct {
	Count     int     `json:"count"`
	Correct   int     `json:"correct"`
	TotalTime float64 `json:"total_time"`
}

// Profile is the durable per-student state. One instance per student,
// keyed by name. Mutated only through RecordSession and CloseQuizSession.
type Profile struct {
	Name string `json:"name"`

	Quizzes            int     `json:"quizzes"` // total recorded sessions
	Correct            int     `json:"correct"`
	TotalResponseTime  float64 `json:"total_response_time"`
	TotalAnswerChanges int     `json:"total_answer_changes"`
	TotalHintsUsed     int     `json:"total_hints_used"`
	TotalSkipped       int     `json:"total_skipped"`
	QuizSessionsClosed int     `json:"quiz_sessions"`

	Sessions []SessionRecord `json:"learning_sessions"`

	// Derived fields, recomputed by RecordSession.
	LearningStyle    string  `json:"learning_style"`
	EngagementScore  float64 `json:"engagement_score"`
	EngagementLevel  string  `json:"engagement_level"`
	ImprovementTrend float64 `json:"improvement_trend"` // percentage points

	TopicPreferences  map[string]*TopicStat `json:"topic_preferences"`
	DifficultyHistory []string              `json:"difficulty_history"` // most recent 20

	LastActivity string `json:"last_activity"`
}

// New returns a zeroed profile for a previously-unseen student.
func New(name string) *Profile {
	return &Profile{
		Name:             name,
		LearningStyle:    StyleUnknown,
		EngagementLevel:  LevelLearning,
		TopicPreferences: map[string]*TopicStat{},
	}
}

// migrate fills fields a persisted profile written by an older schema may
// lack. Applied once per load; a structurally unparseable record is a load
// error, never silently defaulted.
func (p *Profile) migrate() {
	if p.Sessions == nil {
		p.Sessions = []SessionRecord{}
	}
	if p.LearningStyle == "" {
		p.LearningStyle = StyleUnknown
	}
	if p.EngagementLevel == "" {
		p.EngagementLevel = LevelLearning
	}
	if p.TopicPreferences == nil {
		p.TopicPreferences = map[string]*TopicStat{}
	}
	if p.DifficultyHistory == nil {
		p.DifficultyHistory = []string{}
	}
	for i := range p.Sessions {
		if p.Sessions[i].Topic == "" {
			p.Sessions[i].Topic = "general"
		}
	}
}

// RecordSession appends a session record, updates the running counters and
// recomputes every derived field. The record sequence is the single source
// of truth for all recency windows.
func (p *Profile) RecordSession(rec SessionRecord) {
	if rec.Topic == "" {
		rec.Topic = "general"
	}
	if rec.Timestamp == "" {
		rec.Timestamp = nowStamp()
	}

	p.Sessions = append(p.Sessions, rec)
	p.Quizzes++
	p.TotalResponseTime += rec.ResponseTime
	p.TotalAnswerChanges += rec.AnswerChanges
	p.TotalHintsUsed += rec.HintsUsed
	if rec.Skipped {
		p.TotalSkipped++
	}
	if rec.Correct {
		p.Correct++
	}

	ts, ok := p.TopicPreferences[rec.Topic]
	if !ok {
		ts = &TopicStat{}
		p.TopicPreferences[rec.Topic] = ts
	}
	ts.Count++
	ts.TotalTime += rec.ResponseTime
	if rec.Correct {
		ts.Correct++
	}

	p.DifficultyHistory = append(p.DifficultyHistory, rec.Difficulty)
	if len(p.DifficultyHistory) > difficultyHistoryMax {
		p.DifficultyHistory = p.DifficultyHistory[len(p.DifficultyHistory)-difficultyHistoryMax:]
	}

	p.EngagementScore, p.EngagementLevel = computeEngagement(p)
	if style, ok := classifyStyle(p); ok {
		p.LearningStyle = style
	}
	p.ImprovementTrend = improvementTrend(p.Sessions)
	p.LastActivity = rec.Timestamp
}

// CloseQuizSession marks the end of one sitting. It only bumps the closure
// counter and the activity stamp.
func (p *Profile) CloseQuizSession() {
	p.QuizSessionsClosed++
	p.LastActivity = nowStamp()
}

// improvementTrend compares accuracy over the last 10 records against the
// 10 before them, in percentage points. Zero until 10 records exist.
func improvementTrend(recs []SessionRecord) float64 {
	if len(recs) < 10 {
		return 0
	}
	recent := recs[len(recs)-10:]
	lo := len(recs) - 20
	if lo < 0 {
		lo = 0
	}
	earlier := recs[lo : len(recs)-10]
	if len(earlier) == 0 {
		return 0
	}
	return (correctRate(recent) - correctRate(earlier)) * 100
}
