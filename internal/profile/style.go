package profile

import (
	"fmt"
	"sort"
)

// Topics that signal a behavioral archetype when they appear in the
// recent session window.
var (
	visualTopics   = map[string]bool{"geometry": true, "colors": true, "patterns": true}
	auditoryTopics = map[string]bool{"geography": true, "language": true, "word_problems": true}
)

// styleWindow caps how far back the classifier looks.
const styleWindow = 20

// styleMinSessions gates classification: below this the stored style is
// retained untouched.
const styleMinSessions = 10

type styleScores struct {
	Visual      float64 `json:"visual"`
	Auditory    float64 `json:"auditory"`
	Kinesthetic float64 `json:"kinesthetic"`
	Reading     float64 `json:"reading"`
}

// classifyStyle scores the four archetypes over the recent window and
// returns the dominant one. ok is false until enough history exists, in
// which case the caller keeps the previous style.
func classifyStyle(p *Profile) (style string, ok bool) {
	if len(p.Sessions) < styleMinSessions {
		return "", false
	}
	s := scoreStyles(p)
	return dominantStyle(s), true
}

func scoreStyles(p *Profile) styleScores {
	window := tail(p.Sessions, styleWindow)
	var s styleScores

	// Visual: strength on spatial topics, answered quickly and without
	// second-guessing.
	if vt := filterTopics(window, visualTopics); len(vt) > 0 {
		timeScore := (60 - meanTime(vt)) / 60
		if timeScore < 0 {
			timeScore = 0
		}
		changeScore := 1 - meanChanges(vt)/4
		if changeScore < 0 {
			changeScore = 0
		}
		s.Visual = correctRate(vt)*0.4 + timeScore*0.3 + changeScore*0.3
	}

	// Auditory: strength on verbal topics, with a bonus for steady pacing.
	if at := filterTopics(window, auditoryTopics); len(at) > 0 {
		s.Auditory = correctRate(at) * 0.5
	} else {
		s.Auditory = p.Accuracy() * 0.3
	}
	consistency := 1 - timeVariance(window)/1000
	if consistency < 0 {
		consistency = 0
	}
	s.Auditory += consistency * 0.4

	// Kinesthetic: leans on hints, does well on hard questions, edits
	// answers a moderate amount (trial and error).
	hd := p.HintDependency()
	if hd > 1 {
		hd = 1
	}
	s.Kinesthetic = hd * 0.4
	if hard := filterDifficulty(window, "hard"); len(hard) > 0 {
		s.Kinesthetic += correctRate(hard) * 0.3
	}
	if mc := meanChanges(window); mc >= 0.5 && mc <= 2.0 {
		s.Kinesthetic += 0.3
	}

	// Reading: deliberate pace, high accuracy, rarely skips.
	if p.AverageResponseTime() > 45 {
		s.Reading += 0.3
	}
	if acc := p.Accuracy(); acc > 0.6 {
		s.Reading += acc * 0.4
	}
	s.Reading += (1 - p.SkipRate()) * 0.3

	// Cross-adjustments from overall behavior.
	avg, acc := p.AverageResponseTime(), p.Accuracy()
	if avg < 25 && acc > 0.7 {
		s.Visual += 0.2
	}
	if avg > 60 && acc > 0.6 {
		s.Reading += 0.2
	}
	if p.HintDependency() > 0.3 {
		s.Kinesthetic += 0.2
	}
	if len(window) > 5 {
		if lo, hi := timeRange(window); hi > 0 && 1-(hi-lo)/hi > 0.7 {
			s.Auditory += 0.2
		}
	}

	return s
}

// dominantStyle picks the strictly highest score. Ties resolve in
// evaluation order: visual, auditory, kinesthetic, reading.
func dominantStyle(s styleScores) string {
	best, bestScore := StyleVisual, s.Visual
	if s.Auditory > bestScore {
		best, bestScore = StyleAuditory, s.Auditory
	}
	if s.Kinesthetic > bestScore {
		best, bestScore = StyleKinesthetic, s.Kinesthetic
	}
	if s.Reading > bestScore {
		best = StyleReading
	}
	return best
}

// StyleAnalysis is the explainable report behind a classification.
type StyleAnalysis struct {
	Style           string      `json:"style"`
	Scores          styleScores `json:"scores"`
	Confidence      string      `json:"confidence"` // high|medium|low
	Reasoning       []string    `json:"reasoning"`
	Recommendations []string    `json:"recommendations"`
}

// AnalyzeStyle produces the full report. Below the session gate it reports
// the stored style with low confidence and no reasoning.
func AnalyzeStyle(p *Profile) StyleAnalysis {
	if len(p.Sessions) < styleMinSessions {
		return StyleAnalysis{
			Style:           p.LearningStyle,
			Confidence:      "low",
			Recommendations: recommendationsFor(p.LearningStyle),
		}
	}

	s := scoreStyles(p)
	style := dominantStyle(s)

	vals := []float64{s.Visual, s.Auditory, s.Kinesthetic, s.Reading}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	gap := vals[0] - vals[1]
	confidence := "low"
	switch {
	case gap > 0.3:
		confidence = "high"
	case gap > 0.15:
		confidence = "medium"
	}

	var reasoning []string
	for _, d := range []struct {
		name  string
		score float64
		note  string
	}{
		{StyleVisual, s.Visual, "quick, accurate work on spatial topics"},
		{StyleAuditory, s.Auditory, "steady pacing and strength on verbal topics"},
		{StyleKinesthetic, s.Kinesthetic, "hands-on pattern: hints, edits and hard-question grit"},
		{StyleReading, s.Reading, "deliberate, careful answering with few skips"},
	} {
		if d.score > 0.3 {
			reasoning = append(reasoning, fmt.Sprintf("%s signal %.2f: %s", d.name, d.score, d.note))
		}
	}

	return StyleAnalysis{
		Style:           style,
		Scores:          s,
		Confidence:      confidence,
		Reasoning:       reasoning,
		Recommendations: recommendationsFor(style),
	}
}

func recommendationsFor(style string) []string {
	switch style {
	case StyleVisual:
		return []string{
			"Sketch diagrams before answering",
			"Use color coding when taking notes",
			"Look for patterns and shapes in problems",
		}
	case StyleAuditory:
		return []string{
			"Read questions aloud before answering",
			"Explain your reasoning to someone else",
			"Use rhymes or songs for facts that must be memorized",
		}
	case StyleKinesthetic:
		return []string{
			"Work problems out with physical objects",
			"Take short movement breaks between questions",
			"Build or act out the scenario in word problems",
		}
	case StyleReading:
		return []string{
			"Write out each step of your solution",
			"Summarize questions in your own words",
			"Keep a notebook of solved examples to re-read",
		}
	default:
		return []string{
			"Try a mix of question topics to discover what suits you",
			"Answer a few more questions so your style can be detected",
		}
	}
}

func filterTopics(recs []SessionRecord, topics map[string]bool) []SessionRecord {
	var out []SessionRecord
	for _, r := range recs {
		if topics[r.Topic] {
			out = append(out, r)
		}
	}
	return out
}

func filterDifficulty(recs []SessionRecord, difficulty string) []SessionRecord {
	var out []SessionRecord
	for _, r := range recs {
		if r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out
}

func meanTime(recs []SessionRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range recs {
		sum += r.ResponseTime
	}
	return sum / float64(len(recs))
}

func meanChanges(recs []SessionRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range recs {
		sum += r.AnswerChanges
	}
	return float64(sum) / float64(len(recs))
}

func timeVariance(recs []SessionRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	mean := meanTime(recs)
	v := 0.0
	for _, r := range recs {
		v += (r.ResponseTime - mean) * (r.ResponseTime - mean)
	}
	return v / float64(len(recs))
}

func timeRange(recs []SessionRecord) (lo, hi float64) {
	for i, r := range recs {
		if i == 0 || r.ResponseTime < lo {
			lo = r.ResponseTime
		}
		if r.ResponseTime > hi {
			hi = r.ResponseTime
		}
	}
	return lo, hi
}
