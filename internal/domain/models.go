package domain

// Subject identifies which subject area a mini-game belongs to.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectEnglish Subject = "english"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectMath, SubjectScience, SubjectEnglish:
		return true
	}
	return false
}

// GameResult is one completed play-through of a mini-game. Results are
// immutable once recorded; the store never mutates or deletes them
// individually.
type GameResult struct {
	ID                    string  `json:"id"`
	GameID                string  `json:"gameId"`
	GameName              string  `json:"gameName"`
	Subject               Subject `json:"subject"`
	Score                 int     `json:"score"`
	TotalQuestions        int     `json:"totalQuestions"`
	CorrectAnswers        int     `json:"correctAnswers"`
	Timestamp             int64   `json:"timestamp"` // milliseconds since epoch
	CompletedSuccessfully bool    `json:"completedSuccessfully"`
}

// GameStats is derived from the stored history on demand and never persisted.
type GameStats struct {
	TotalGamesPlayed       int      `json:"totalGamesPlayed"`
	TotalQuestionsAnswered int      `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int      `json:"totalCorrectAnswers"`
	PerfectScores          int      `json:"perfectScores"`
	HighestScore           int      `json:"highestScore"`
	LastPlayedDate         int64    `json:"lastPlayedDate"`
	ConsecutiveDays        int      `json:"consecutiveDays"`
	MathGamesPlayed        int      `json:"mathGamesPlayed"`
	ScienceGamesPlayed     int      `json:"scienceGamesPlayed"`
	EnglishGamesPlayed     int      `json:"englishGamesPlayed"`
	Achievements           []string `json:"achievements"`
}

// Question is one multiple-choice quiz question. Answer indexes into Options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

// Pattern is one pattern-completion puzzle: a sequence with a single missing
// slot and a fixed option set. The correct option equals the sequence value at
// MissingIndex.
type Pattern struct {
	Sequence     []string `json:"sequence"`
	MissingIndex int      `json:"missingIndex"`
	Options      []string `json:"options"`
}

// Pack bundles the static content a subject screen needs to run its
// mini-games. Every round machine receives its full data set up front.
type Pack struct {
	Subject   Subject    `json:"subject"`
	Questions []Question `json:"questions"`
	Symbols   []string   `json:"symbols"`
	Patterns  []Pattern  `json:"patterns"`
}
