package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thekasyap/thinkbot/internal/feedback"
	"github.com/thekasyap/thinkbot/internal/profile"
	"github.com/thekasyap/thinkbot/internal/quiz"
)

// GET /question?student=NAME[&topic=TOPIC]
func GetQuestionHandler(store profile.Store, selector *quiz.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		student := strings.TrimSpace(r.URL.Query().Get("student"))
		if student == "" {
			http.Error(w, "student required", http.StatusBadRequest)
			return
		}
		p, err := store.Load(r.Context(), student)
		if err != nil {
			http.Error(w, "load profile: "+err.Error(), http.StatusInternalServerError)
			return
		}
		q, err := selector.Next(p, r.URL.Query().Get("topic"))
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestion) {
				http.Error(w, "no question available", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         q.ID,
			"question":   q.Question,
			"difficulty": q.Difficulty,
			"topic":      q.Topic,
		})
	}
}

type answerPayload struct {
	Student       string  `json:"student"`
	QuestionID    int     `json:"question_id"`
	Answer        string  `json:"answer"`
	ResponseTime  float64 `json:"response_time"`
	AnswerChanges int     `json:"answer_changes"`
	HintsUsed     int     `json:"hints_used"`
	Skipped       bool    `json:"skipped"`
}

// POST /answer
func SubmitAnswerHandler(store profile.Store, bank *quiz.Bank, gen *feedback.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answerPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Student == "" {
			http.Error(w, "student required", http.StatusBadRequest)
			return
		}
		q, ok := bank.Get(req.QuestionID)
		if !ok {
			http.Error(w, "unknown question", http.StatusNotFound)
			return
		}
		p, err := store.Load(r.Context(), req.Student)
		if err != nil {
			http.Error(w, "load profile: "+err.Error(), http.StatusInternalServerError)
			return
		}

		correct := !req.Skipped && quiz.Match(req.Answer, q.Answer)
		p.RecordSession(profile.SessionRecord{
			QuestionID:    q.ID,
			Difficulty:    q.Difficulty,
			Topic:         q.Topic,
			Answer:        req.Answer,
			Correct:       correct,
			ResponseTime:  req.ResponseTime,
			AnswerChanges: req.AnswerChanges,
			HintsUsed:     req.HintsUsed,
			Skipped:       req.Skipped,
		})
		if err := store.Save(r.Context(), p); err != nil {
			http.Error(w, "save profile: "+err.Error(), http.StatusInternalServerError)
			return
		}

		// The generator always returns text; provider failures become a
		// placeholder, never an error for the student.
		text := gen.Generate(r.Context(), p, q, feedback.Submission{
			Answer:       req.Answer,
			ResponseTime: req.ResponseTime,
			HintsUsed:    req.HintsUsed,
		}, correct)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"correct":          correct,
			"feedback":         text,
			"accuracy":         p.Accuracy(),
			"engagement_level": p.EngagementLevel,
			"learning_style":   p.LearningStyle,
			"next_action":      feedback.NextAction(p, correct),
			"hint":             q.Hint,
			"insights":         p.LearningInsights(),
		})
	}
}

// GET /hint/{questionID}
func GetHintHandler(bank *quiz.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
		if err != nil {
			http.Error(w, "bad question id", http.StatusBadRequest)
			return
		}
		q, ok := bank.Get(id)
		if !ok {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		hint := q.Hint
		if hint == "" {
			hint = "No hint available"
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"question_id": q.ID,
			"hint":        hint,
			"topic":       q.Topic,
		})
	}
}

// POST /session/close  { "student": "..." }
func CloseSessionHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Student string `json:"student"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Student == "" {
			http.Error(w, "student required", http.StatusBadRequest)
			return
		}
		p, err := store.Load(r.Context(), req.Student)
		if err != nil {
			http.Error(w, "load profile: "+err.Error(), http.StatusInternalServerError)
			return
		}
		p.CloseQuizSession()
		if err := store.Save(r.Context(), p); err != nil {
			http.Error(w, "save profile: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"receipt":       uuid.NewString(),
			"quiz_sessions": p.QuizSessionsClosed,
		})
	}
}
