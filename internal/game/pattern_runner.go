package game

import (
	"sync"

	"kidquest-tracker/internal/constants"

	"github.com/jonboulle/clockwork"
)

// PatternRunnerConfig wires a PatternGame to its timers and subscribers.
type PatternRunnerConfig struct {
	Clock      clockwork.Clock
	Sounds     Sounds
	OnChange   func(*PatternGame)
	OnComplete func(score, correct int)
}

// PatternRunner owns the feedback timers for one pattern-completion round.
// There is no countdown: the round only moves on input, and a wrong answer
// ends it after the shorter feedback delay.
type PatternRunner struct {
	game       *PatternGame
	clock      clockwork.Clock
	sounds     Sounds
	onChange   func(*PatternGame)
	onComplete func(score, correct int)

	mu       sync.Mutex
	advance  clockwork.Timer
	closed   bool
	finished bool
}

func NewPatternRunner(game *PatternGame, cfg PatternRunnerConfig) *PatternRunner {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Sounds == nil {
		cfg.Sounds = NopSounds{}
	}
	return &PatternRunner{
		game:       game,
		clock:      cfg.Clock,
		sounds:     cfg.Sounds,
		onChange:   cfg.OnChange,
		onComplete: cfg.OnComplete,
	}
}

// Select locks in an answer for the current pattern and schedules the
// advance. Returns whether the selection was accepted.
func (r *PatternRunner) Select(option string) bool {
	r.mu.Lock()
	if r.closed || r.finished || !r.game.Select(option) {
		r.mu.Unlock()
		return false
	}
	delay := constants.PatternWrongDelay
	if r.game.LastCorrect() {
		r.sounds.Play(SoundCorrect)
		delay = constants.PatternCorrectDelay
	} else {
		r.sounds.Play(SoundWrong)
	}
	r.advance = r.clock.AfterFunc(delay, r.onAdvance)
	r.mu.Unlock()

	r.notify()
	return true
}

// Close stops all timers without completing the round.
func (r *PatternRunner) Close() {
	r.mu.Lock()
	r.closed = true
	if r.advance != nil {
		r.advance.Stop()
		r.advance = nil
	}
	r.mu.Unlock()
}

func (r *PatternRunner) onAdvance() {
	r.mu.Lock()
	if r.closed || r.finished {
		r.mu.Unlock()
		return
	}
	r.game.Advance()
	if r.game.Done() {
		r.finished = true
		score, correct := r.game.Score(), r.game.Correct()
		r.mu.Unlock()

		r.sounds.Play(SoundComplete)
		r.notify()
		if r.onComplete != nil {
			r.onComplete(score, correct)
		}
		return
	}
	r.mu.Unlock()

	r.notify()
}

func (r *PatternRunner) notify() {
	if r.onChange != nil {
		r.onChange(r.game)
	}
}
