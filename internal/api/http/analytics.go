package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thekasyap/thinkbot/internal/profile"
)

// GET /analytics/{student}
func StudentAnalyticsHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		student := strings.TrimSpace(chi.URLParam(r, "student"))
		if student == "" {
			http.Error(w, "student required", http.StatusBadRequest)
			return
		}
		p, err := store.Load(r.Context(), student)
		if err != nil {
			http.Error(w, "load profile: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(p.DetailedInsights())
	}
}

// GET /analytics, the teacher dashboard aggregate.
func AllAnalyticsHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := store.Names(r.Context())
		if err != nil {
			http.Error(w, "list profiles: "+err.Error(), http.StatusInternalServerError)
			return
		}

		students := make([]profile.Insights, 0, len(names))
		highPerformers, struggling := 0, 0
		accSum := 0.0
		for _, name := range names {
			p, err := store.Load(r.Context(), name)
			if err != nil {
				// One corrupt file should not take the dashboard down.
				continue
			}
			in := p.LearningInsights()
			students = append(students, in)
			if in.Accuracy > 80 {
				highPerformers++
			}
			if in.NeedsAttention {
				struggling++
			}
			accSum += in.Accuracy
		}

		avgAccuracy := 0.0
		if len(students) > 0 {
			avgAccuracy = accSum / float64(len(students))
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_students": len(students),
			"students":       students,
			"summary": map[string]any{
				"high_performers":     highPerformers,
				"struggling_students": struggling,
				"average_accuracy":    avgAccuracy,
			},
		})
	}
}
