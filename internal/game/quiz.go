// Package game holds the reusable mini-game round state machines. Each
// machine is an explicit state value with pure transition methods, driven by
// external clock ticks and input events; the timer-owning shell lives in the
// runners, so the machines themselves are trivially testable.
package game

import (
	"errors"

	"kidquest-tracker/internal/constants"
	"kidquest-tracker/internal/domain"
)

var (
	ErrNoQuestions = errors.New("quiz requires at least one question")
	ErrNoSymbols   = errors.New("memory game requires at least one symbol")
	ErrNoPatterns  = errors.New("pattern game requires at least one pattern")
	ErrBadTime     = errors.New("time per question must be positive")
)

// QuizPhase is the current phase of a timed-quiz round.
type QuizPhase int

const (
	// QuizAwaitingAnswer: the current question is shown and the countdown is
	// running.
	QuizAwaitingAnswer QuizPhase = iota
	// QuizLocked: an answer was selected and is immutable; the round advances
	// after a fixed feedback delay.
	QuizLocked
	// QuizComplete: terminal. Reached after the last question, or immediately
	// on any timeout.
	QuizComplete
)

// Quiz is one timed multiple-choice round. Letting the countdown reach zero
// ends the whole round with the score accumulated so far; it does not skip a
// single question. That is the intended beat-the-clock design.
type Quiz struct {
	questions       []domain.Question
	timePerQuestion int

	phase       QuizPhase
	index       int
	timeLeft    int
	score       int
	correct     int
	lastCorrect bool
}

func NewQuiz(questions []domain.Question, timePerQuestion int) (*Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if timePerQuestion <= 0 {
		return nil, ErrBadTime
	}
	return &Quiz{
		questions:       questions,
		timePerQuestion: timePerQuestion,
		timeLeft:        timePerQuestion,
	}, nil
}

// Tick consumes one second of the countdown. At zero the round is over.
func (q *Quiz) Tick() {
	if q.phase != QuizAwaitingAnswer {
		return
	}
	q.timeLeft--
	if q.timeLeft <= 0 {
		q.timeLeft = 0
		q.phase = QuizComplete
	}
}

// Select locks in an answer for the current question. Once locked the answer
// is immutable; further selections are ignored until the round advances.
// Returns whether the selection was accepted.
func (q *Quiz) Select(option int) bool {
	if q.phase != QuizAwaitingAnswer {
		return false
	}
	if option < 0 || option >= len(q.questions[q.index].Options) {
		return false
	}

	q.lastCorrect = option == q.questions[q.index].Answer
	if q.lastCorrect {
		q.score += constants.QuizPointsPerCorrect
		q.correct++
	}
	q.phase = QuizLocked
	return true
}

// Advance moves past a locked question, either to the next question with a
// fresh countdown or to the terminal phase if the locked question was the
// last one.
func (q *Quiz) Advance() {
	if q.phase != QuizLocked {
		return
	}
	if q.index == len(q.questions)-1 {
		q.phase = QuizComplete
		return
	}
	q.index++
	q.timeLeft = q.timePerQuestion
	q.phase = QuizAwaitingAnswer
}

func (q *Quiz) Phase() QuizPhase          { return q.phase }
func (q *Quiz) Index() int                { return q.index }
func (q *Quiz) TimeLeft() int             { return q.timeLeft }
func (q *Quiz) Score() int                { return q.score }
func (q *Quiz) Correct() int              { return q.correct }
func (q *Quiz) LastCorrect() bool         { return q.lastCorrect }
func (q *Quiz) Question() domain.Question { return q.questions[q.index] }
func (q *Quiz) QuestionCount() int        { return len(q.questions) }
func (q *Quiz) Done() bool                { return q.phase == QuizComplete }
