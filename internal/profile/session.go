package profile

import "time"

// SessionRecord captures one answered (or skipped) question. Records are
// append-only; recency windows slice from the tail of Profile.Sessions.
type SessionRecord struct {
	QuestionID    int     `json:"question_id"`
	Difficulty    string  `json:"difficulty"` // easy|medium|hard
	Topic         string  `json:"topic"`
	Answer        string  `json:"answer"`
	Correct       bool    `json:"correct"`
	ResponseTime  float64 `json:"response_time"` // seconds
	AnswerChanges int     `json:"answer_changes"`
	HintsUsed     int     `json:"hints_used"`
	Skipped       bool    `json:"skipped"`
	Timestamp     string  `json:"timestamp"` // RFC 3339
}

func nowStamp() string { return time.Now().Format(time.RFC3339) }

// tail returns the last n records (all of them when fewer exist).
func tail(recs []SessionRecord, n int) []SessionRecord {
	if len(recs) <= n {
		return recs
	}
	return recs[len(recs)-n:]
}

func correctRate(recs []SessionRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	c := 0
	for _, r := range recs {
		if r.Correct {
			c++
		}
	}
	return float64(c) / float64(len(recs))
}
