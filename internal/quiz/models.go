package quiz

// Difficulty tiers. The bank groups questions by tier and the selector
// moves students between them.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is one entry in the bank. IDs are unique across all tiers.
type Question struct {
	ID          int    `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Topic       string `json:"topic"`
	Hint        string `json:"hint,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"` // filled from the tier on load
}

func tiers() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
