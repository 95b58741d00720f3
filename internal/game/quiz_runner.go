package game

import (
	"sync"

	"kidquest-tracker/internal/constants"

	"github.com/jonboulle/clockwork"
)

// QuizRunnerConfig wires a Quiz to its timers and subscribers. OnComplete is
// required; everything else has a usable zero value.
type QuizRunnerConfig struct {
	Clock      clockwork.Clock
	Sounds     Sounds
	OnChange   func(*Quiz)
	OnComplete func(score, correct int)
}

// QuizRunner owns the countdown and feedback timers for one quiz round. Each
// question gets its own countdown timer, cancelled on lock and recreated on
// advance, so a stale tick can never fire into a state it does not belong to.
// Closing the runner mid-round stops all timers without firing OnComplete:
// an abandoned round records nothing.
type QuizRunner struct {
	quiz       *Quiz
	clock      clockwork.Clock
	sounds     Sounds
	onChange   func(*Quiz)
	onComplete func(score, correct int)

	mu        sync.Mutex
	countdown clockwork.Timer
	advance   clockwork.Timer
	closed    bool
	finished  bool
}

func NewQuizRunner(quiz *Quiz, cfg QuizRunnerConfig) *QuizRunner {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Sounds == nil {
		cfg.Sounds = NopSounds{}
	}
	return &QuizRunner{
		quiz:       quiz,
		clock:      cfg.Clock,
		sounds:     cfg.Sounds,
		onChange:   cfg.OnChange,
		onComplete: cfg.OnComplete,
	}
}

// Start begins the countdown for the first question.
func (r *QuizRunner) Start() {
	r.mu.Lock()
	if !r.closed && !r.finished {
		r.scheduleCountdownLocked()
	}
	r.mu.Unlock()
}

// Select locks in an answer for the current question and schedules the
// advance after the feedback delay. Returns whether the selection was
// accepted.
func (r *QuizRunner) Select(option int) bool {
	r.mu.Lock()
	if r.closed || r.finished || !r.quiz.Select(option) {
		r.mu.Unlock()
		return false
	}
	r.stopCountdownLocked()
	if r.quiz.LastCorrect() {
		r.sounds.Play(SoundCorrect)
	} else {
		r.sounds.Play(SoundWrong)
	}
	r.advance = r.clock.AfterFunc(constants.QuizLockDelay, r.onAdvance)
	r.mu.Unlock()

	r.notify()
	return true
}

// Close stops all timers without completing the round.
func (r *QuizRunner) Close() {
	r.mu.Lock()
	r.closed = true
	r.stopCountdownLocked()
	if r.advance != nil {
		r.advance.Stop()
		r.advance = nil
	}
	r.mu.Unlock()
}

func (r *QuizRunner) onTick() {
	r.mu.Lock()
	if r.closed || r.finished {
		r.mu.Unlock()
		return
	}
	r.quiz.Tick()
	if r.quiz.Done() {
		r.finishLocked()
		return
	}
	r.scheduleCountdownLocked()
	r.mu.Unlock()

	r.notify()
}

func (r *QuizRunner) onAdvance() {
	r.mu.Lock()
	if r.closed || r.finished {
		r.mu.Unlock()
		return
	}
	r.quiz.Advance()
	if r.quiz.Done() {
		r.finishLocked()
		return
	}
	r.scheduleCountdownLocked()
	r.mu.Unlock()

	r.notify()
}

func (r *QuizRunner) scheduleCountdownLocked() {
	r.countdown = r.clock.AfterFunc(constants.CountdownInterval, r.onTick)
}

func (r *QuizRunner) stopCountdownLocked() {
	if r.countdown != nil {
		r.countdown.Stop()
		r.countdown = nil
	}
}

// finishLocked is called with the mutex held and releases it.
func (r *QuizRunner) finishLocked() {
	r.finished = true
	r.stopCountdownLocked()
	score, correct := r.quiz.Score(), r.quiz.Correct()
	r.mu.Unlock()

	r.sounds.Play(SoundComplete)
	r.notify()
	if r.onComplete != nil {
		r.onComplete(score, correct)
	}
}

func (r *QuizRunner) notify() {
	if r.onChange != nil {
		r.onChange(r.quiz)
	}
}
