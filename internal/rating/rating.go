// Package rating scores the onboarding quiz. All functions are pure;
// answers arrive as explicit request data and nothing here touches storage.
package rating

const (
	// AnswerMax is the worst (most severe) option index per question.
	AnswerMax = 3

	minRating = 15
	maxRating = 48

	potentialOverallCap    = 92
	potentialFocusCap      = 90
	potentialDisciplineCap = 88
	potentialClarityCap    = 90
)

// Answers holds one severity value per onboarding question, 0 (healthy)
// through 3 (severe). Out-of-range values are clamped before scoring.
type Answers struct {
	DailyHours  int `json:"dailyHours"`
	FirstReach  int `json:"firstReach"`
	NightScroll int `json:"nightScroll"`
	FocusLoss   int `json:"focusLoss"`
	SleepImpact int `json:"sleepImpact"`
	MoodImpact  int `json:"moodImpact"`
}

// Scores are the rating dimensions shown during onboarding.
type Scores struct {
	Overall    int `json:"overall"`
	Focus      int `json:"focus"`
	Discipline int `json:"discipline"`
	Clarity    int `json:"clarity"`
}

func clampAnswer(v int) int {
	if v < 0 {
		return 0
	}
	if v > AnswerMax {
		return AnswerMax
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// score maps a severity sum onto [minRating, maxRating]: zero severity rates
// maxRating, full severity rates minRating.
func score(severity, questions int) int {
	span := maxRating - minRating
	penalty := severity * span / (questions * AnswerMax)
	return clamp(maxRating-penalty, minRating, maxRating)
}

// CalculateRating derives the current ratings. Every field lands in
// [15, 48] for any input.
func CalculateRating(a Answers) Scores {
	focus := score(clampAnswer(a.FocusLoss)+clampAnswer(a.DailyHours), 2)
	discipline := score(clampAnswer(a.FirstReach)+clampAnswer(a.NightScroll), 2)
	clarity := score(clampAnswer(a.SleepImpact)+clampAnswer(a.MoodImpact), 2)

	total := clampAnswer(a.DailyHours) + clampAnswer(a.FirstReach) +
		clampAnswer(a.NightScroll) + clampAnswer(a.FocusLoss) +
		clampAnswer(a.SleepImpact) + clampAnswer(a.MoodImpact)
	overall := score(total, 6)

	return Scores{Overall: overall, Focus: focus, Discipline: discipline, Clarity: clarity}
}

// CalculatePotentialRating projects the ratings after the program: each
// field closes 80% of the gap to its cap and never falls below the current
// rating.
func CalculatePotentialRating(a Answers) Scores {
	current := CalculateRating(a)
	return Scores{
		Overall:    raise(current.Overall, potentialOverallCap),
		Focus:      raise(current.Focus, potentialFocusCap),
		Discipline: raise(current.Discipline, potentialDisciplineCap),
		Clarity:    raise(current.Clarity, potentialClarityCap),
	}
}

func raise(current, limit int) int {
	if current >= limit {
		return current
	}
	return current + (limit-current)*4/5
}

// CalculatePoorLifestylePercentage maps total severity onto [40, 95].
func CalculatePoorLifestylePercentage(a Answers) int {
	total := clampAnswer(a.DailyHours) + clampAnswer(a.FirstReach) +
		clampAnswer(a.NightScroll) + clampAnswer(a.FocusLoss) +
		clampAnswer(a.SleepImpact) + clampAnswer(a.MoodImpact)
	return 40 + total*55/(6*AnswerMax)
}
