package game

import (
	"sync"

	"kidquest-tracker/internal/constants"

	"github.com/jonboulle/clockwork"
)

// MemoryRunnerConfig wires a MemoryGame to its timers and subscribers.
// OnComplete carries no score: the owning screen assigns points externally,
// typically from the move count.
type MemoryRunnerConfig struct {
	Clock      clockwork.Clock
	Sounds     Sounds
	OnChange   func(*MemoryGame)
	OnComplete func()
}

// MemoryRunner owns the resolution timers for one memory-match round: a
// short delay before a matching pair settles, a longer one before a
// mismatching pair flips back, and a final pause before the completion
// callback fires.
type MemoryRunner struct {
	game       *MemoryGame
	clock      clockwork.Clock
	sounds     Sounds
	onChange   func(*MemoryGame)
	onComplete func()

	mu       sync.Mutex
	resolve  clockwork.Timer
	finish   clockwork.Timer
	closed   bool
	finished bool
}

func NewMemoryRunner(game *MemoryGame, cfg MemoryRunnerConfig) *MemoryRunner {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Sounds == nil {
		cfg.Sounds = NopSounds{}
	}
	return &MemoryRunner{
		game:       game,
		clock:      cfg.Clock,
		sounds:     cfg.Sounds,
		onChange:   cfg.OnChange,
		onComplete: cfg.OnComplete,
	}
}

// Flip turns a card face up. When it is the second card of a pair, the
// resolution timer is scheduled: matches settle quickly, mismatches linger so
// the player can see both faces. Returns whether the flip was accepted.
func (r *MemoryRunner) Flip(i int) bool {
	r.mu.Lock()
	if r.closed || r.finished || !r.game.Flip(i) {
		r.mu.Unlock()
		return false
	}
	r.sounds.Play(SoundFlip)
	if r.game.Pending() {
		delay := constants.MemoryMismatchDelay
		if r.game.PendingMatch() {
			delay = constants.MemoryMatchDelay
		}
		r.resolve = r.clock.AfterFunc(delay, r.onResolve)
	}
	r.mu.Unlock()

	r.notify()
	return true
}

// Close stops all timers without completing the round.
func (r *MemoryRunner) Close() {
	r.mu.Lock()
	r.closed = true
	if r.resolve != nil {
		r.resolve.Stop()
		r.resolve = nil
	}
	if r.finish != nil {
		r.finish.Stop()
		r.finish = nil
	}
	r.mu.Unlock()
}

func (r *MemoryRunner) onResolve() {
	r.mu.Lock()
	if r.closed || r.finished {
		r.mu.Unlock()
		return
	}
	matched := r.game.PendingMatch()
	r.game.Resolve()
	done := r.game.Done()
	if done {
		r.finish = r.clock.AfterFunc(constants.MemoryCompleteDelay, r.onFinish)
	}
	r.mu.Unlock()

	if matched {
		r.sounds.Play(SoundMatch)
	}
	r.notify()
}

func (r *MemoryRunner) onFinish() {
	r.mu.Lock()
	if r.closed || r.finished {
		r.mu.Unlock()
		return
	}
	r.finished = true
	r.mu.Unlock()

	r.sounds.Play(SoundComplete)
	if r.onComplete != nil {
		r.onComplete()
	}
}

func (r *MemoryRunner) notify() {
	if r.onChange != nil {
		r.onChange(r.game)
	}
}
