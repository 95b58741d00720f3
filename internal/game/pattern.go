package game

import (
	"fmt"

	"kidquest-tracker/internal/constants"
	"kidquest-tracker/internal/domain"
)

// PatternPhase is the current phase of a pattern-completion round.
type PatternPhase int

const (
	PatternAwaitingAnswer PatternPhase = iota
	PatternLocked
	PatternComplete
)

// PatternGame is one pattern-completion round. A correct answer advances to
// the next pattern; a single wrong answer ends the whole round with the score
// accumulated so far.
type PatternGame struct {
	patterns []domain.Pattern

	phase       PatternPhase
	index       int
	score       int
	correct     int
	lastCorrect bool
}

func NewPatternGame(patterns []domain.Pattern) (*PatternGame, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	for i, p := range patterns {
		if p.MissingIndex < 0 || p.MissingIndex >= len(p.Sequence) {
			return nil, fmt.Errorf("pattern %d: missing index %d out of range", i, p.MissingIndex)
		}
		want := p.Sequence[p.MissingIndex]
		found := false
		for _, o := range p.Options {
			if o == want {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("pattern %d: options do not contain the answer", i)
		}
	}
	return &PatternGame{patterns: patterns}, nil
}

// Select locks in an answer for the current pattern. Returns whether the
// selection was accepted.
func (p *PatternGame) Select(option string) bool {
	if p.phase != PatternAwaitingAnswer {
		return false
	}

	cur := p.patterns[p.index]
	p.lastCorrect = option == cur.Sequence[cur.MissingIndex]
	if p.lastCorrect {
		p.score += constants.PatternPointsPerCorrect
		p.correct++
	}
	p.phase = PatternLocked
	return true
}

// Advance moves past a locked pattern. A wrong answer terminates the round; a
// correct answer on the last pattern does too.
func (p *PatternGame) Advance() {
	if p.phase != PatternLocked {
		return
	}
	if !p.lastCorrect || p.index == len(p.patterns)-1 {
		p.phase = PatternComplete
		return
	}
	p.index++
	p.phase = PatternAwaitingAnswer
}

func (p *PatternGame) Phase() PatternPhase     { return p.phase }
func (p *PatternGame) Index() int              { return p.index }
func (p *PatternGame) Score() int              { return p.score }
func (p *PatternGame) Correct() int            { return p.correct }
func (p *PatternGame) LastCorrect() bool       { return p.lastCorrect }
func (p *PatternGame) Pattern() domain.Pattern { return p.patterns[p.index] }
func (p *PatternGame) PatternCount() int       { return len(p.patterns) }
func (p *PatternGame) Done() bool              { return p.phase == PatternComplete }
