package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/thekasyap/thinkbot/internal/llm"
	"github.com/thekasyap/thinkbot/internal/profile"
	"github.com/thekasyap/thinkbot/internal/quiz"
)

// Submission carries the behavioral signals measured for one answer.
type Submission struct {
	Answer       string
	ResponseTime float64
	HintsUsed    int
}

// Generator phrases feedback for an answered question. It always returns
// text: when the provider fails, a bracketed placeholder stands in so the
// student still sees something.
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate builds the tone-adjusted prompt and asks the provider.
func (g *Generator) Generate(ctx context.Context, p *profile.Profile, q quiz.Question, sub Submission, correct bool) string {
	prompt := buildPrompt(p, q, sub, correct)
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return fmt.Sprintf("[feedback unavailable: %v]", err)
	}
	return resp.Text
}

// buildPrompt mirrors how a tutor would adjust tone: the engagement level
// picks encouragement vs challenge, the learning style picks the kind of
// hint for wrong answers.
func buildPrompt(p *profile.Profile, q quiz.Question, sub Submission, correct bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Learning Style: %s\n", p.LearningStyle)
	fmt.Fprintf(&b, "- Engagement Level: %s\n", p.EngagementLevel)
	fmt.Fprintf(&b, "- Learning Pace: %s\n", p.Pace())
	fmt.Fprintf(&b, "- Current Accuracy: %.0f%%\n", p.Accuracy()*100)
	fmt.Fprintf(&b, "- Response Time: %.1f seconds\n", sub.ResponseTime)
	fmt.Fprintf(&b, "- Hints Used: %d\n\n", sub.HintsUsed)
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	fmt.Fprintf(&b, "Student Answer: %s\n", sub.Answer)
	fmt.Fprintf(&b, "Correct Answer: %s\n", q.Answer)
	fmt.Fprintf(&b, "Difficulty: %s\n", q.Difficulty)
	fmt.Fprintf(&b, "Topic: %s\n\n", q.Topic)
	b.WriteString(toneInstruction(p, correct))
	return b.String()
}

func toneInstruction(p *profile.Profile, correct bool) string {
	if correct {
		switch p.EngagementLevel {
		case profile.LevelHighlyEngaged:
			return "Provide enthusiastic, challenging feedback that encourages deeper learning."
		case profile.LevelStruggling:
			return "Provide gentle, encouraging feedback that builds confidence."
		default:
			return "Provide positive, motivating feedback that encourages continued learning."
		}
	}
	switch {
	case p.EngagementLevel == profile.LevelStruggling:
		return "Provide gentle, step-by-step guidance without being discouraging. Focus on the learning process."
	case p.LearningStyle == profile.StyleVisual:
		return "Provide visual learning hints and encourage drawing or diagramming the solution."
	case p.LearningStyle == profile.StyleKinesthetic:
		return "Suggest hands-on activities or practical examples to understand the concept."
	default:
		return "Provide clear, detailed explanation of the correct approach and encourage trying again."
	}
}

// NextAction names the recommended follow-up for the UI.
func NextAction(p *profile.Profile, correct bool) string {
	switch {
	case p.EngagementLevel == profile.LevelStruggling && correct:
		return "encouraged_practice"
	case p.EngagementLevel == profile.LevelStruggling:
		return "guided_learning"
	case p.EngagementLevel == profile.LevelHighlyEngaged && correct:
		return "challenge_mode"
	case p.EngagementLevel == profile.LevelHighlyEngaged:
		return "focused_review"
	case p.Pace() == "fast" && correct:
		return "accelerated_learning"
	case p.Pace() == "slow" && !correct:
		return "reinforcement"
	default:
		return "continue_learning"
	}
}
