// Package stats derives summary statistics, the play streak, and the unlocked
// achievement set from a game-result history. Everything here is a pure
// function of the history at query time; nothing is cached or persisted, so
// the output is always consistent with the stored history.
package stats

import (
	"sort"
	"time"

	"kidquest-tracker/internal/domain"
)

// Compute derives a GameStats snapshot from the history. The history is
// assumed insertion-ordered, oldest first. now anchors the streak
// calculation; its location is used for calendar-day truncation.
func Compute(history []domain.GameResult, now time.Time) domain.GameStats {
	var s domain.GameStats

	s.TotalGamesPlayed = len(history)
	for _, r := range history {
		s.TotalQuestionsAnswered += r.TotalQuestions
		s.TotalCorrectAnswers += r.CorrectAnswers
		if r.TotalQuestions > 0 && r.CorrectAnswers == r.TotalQuestions {
			s.PerfectScores++
		}
		if r.Score > s.HighestScore {
			s.HighestScore = r.Score
		}
		switch r.Subject {
		case domain.SubjectMath:
			s.MathGamesPlayed++
		case domain.SubjectScience:
			s.ScienceGamesPlayed++
		case domain.SubjectEnglish:
			s.EnglishGamesPlayed++
		}
	}

	if len(history) > 0 {
		s.LastPlayedDate = history[len(history)-1].Timestamp
	}

	s.ConsecutiveDays = streak(history, now)
	s.Achievements = unlocked(history)

	return s
}

// streak counts consecutive calendar days with at least one result, ending at
// yesterday or today. A most recent play on "yesterday" still yields a streak
// of at least 1 even though the user has not played today; only a gap of more
// than one day from today breaks the streak.
func streak(history []domain.GameResult, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[time.Time]struct{}, len(history))
	for _, r := range history {
		seen[midnight(time.UnixMilli(r.Timestamp).In(loc))] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := midnight(now)
	yesterday := today.AddDate(0, 0, -1)
	if days[0].Before(yesterday) {
		return 0
	}

	count := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		count++
	}
	return count
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
