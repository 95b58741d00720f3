package stats

import (
	"strings"

	"kidquest-tracker/internal/domain"
)

// AchievementID identifies one permanently-unlockable badge.
type AchievementID string

const (
	AchFirstGame       AchievementID = "first_game"
	Ach5Games          AchievementID = "5_games"
	Ach10Games         AchievementID = "10_games"
	Ach20Games         AchievementID = "20_games"
	Ach50Games         AchievementID = "50_games"
	AchFirstPerfect    AchievementID = "first_perfect"
	Ach5Perfect        AchievementID = "5_perfect"
	Ach10Perfect       AchievementID = "10_perfect"
	AchMathStar        AchievementID = "math_star"
	AchScienceExplorer AchievementID = "science_explorer"
	AchWordWizard      AchievementID = "word_wizard"
	AchMathMaster      AchievementID = "math_master"
	AchScienceGenius   AchievementID = "science_genius"
	AchEnglishExpert   AchievementID = "english_expert"
	AchMemoryChampion  AchievementID = "memory_champion"
	AchSpeedMaster     AchievementID = "speed_master"
)

// tally holds the derived counts the achievement predicates are defined over.
type tally struct {
	games   int
	perfect int
	math    int
	science int
	english int
	memory  int
	speed   int
}

// catalog is the closed set of achievements. Every predicate is a monotonic
// threshold over tally counts, so once unlocked an achievement can never be
// revoked by further play.
var catalog = []struct {
	id       AchievementID
	unlocked func(t tally) bool
}{
	{AchFirstGame, func(t tally) bool { return t.games >= 1 }},
	{Ach5Games, func(t tally) bool { return t.games >= 5 }},
	{Ach10Games, func(t tally) bool { return t.games >= 10 }},
	{Ach20Games, func(t tally) bool { return t.games >= 20 }},
	{Ach50Games, func(t tally) bool { return t.games >= 50 }},
	{AchFirstPerfect, func(t tally) bool { return t.perfect >= 1 }},
	{Ach5Perfect, func(t tally) bool { return t.perfect >= 5 }},
	{Ach10Perfect, func(t tally) bool { return t.perfect >= 10 }},
	{AchMathStar, func(t tally) bool { return t.math >= 5 }},
	{AchScienceExplorer, func(t tally) bool { return t.science >= 5 }},
	{AchWordWizard, func(t tally) bool { return t.english >= 5 }},
	{AchMathMaster, func(t tally) bool { return t.math >= 10 }},
	{AchScienceGenius, func(t tally) bool { return t.science >= 10 }},
	{AchEnglishExpert, func(t tally) bool { return t.english >= 10 }},
	{AchMemoryChampion, func(t tally) bool { return t.memory >= 5 }},
	{AchSpeedMaster, func(t tally) bool { return t.speed >= 5 }},
}

// unlocked returns the achievements earned by the history, in catalog order.
func unlocked(history []domain.GameResult) []string {
	var t tally
	t.games = len(history)
	for _, r := range history {
		if r.TotalQuestions > 0 && r.CorrectAnswers == r.TotalQuestions {
			t.perfect++
		}
		switch r.Subject {
		case domain.SubjectMath:
			t.math++
		case domain.SubjectScience:
			t.science++
		case domain.SubjectEnglish:
			t.english++
		}
		// Deliberately a substring match: any game variant whose id mentions
		// the mechanic counts, regardless of subject.
		if strings.Contains(r.GameID, "memory") {
			t.memory++
		}
		if strings.Contains(r.GameID, "speed") {
			t.speed++
		}
	}

	var ids []string
	for _, a := range catalog {
		if a.unlocked(t) {
			ids = append(ids, string(a.id))
		}
	}
	return ids
}
