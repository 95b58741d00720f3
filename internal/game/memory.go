package game

import (
	"math/rand"
	"time"
)

// Card is one face on the memory board.
type Card struct {
	Symbol  string
	FaceUp  bool
	Matched bool
}

// MemoryGame is one memory-match round. The board is every input symbol
// duplicated and shuffled, so each symbol appears exactly twice. At most two
// cards may be face-up unresolved at once; a third tap is ignored until the
// pair resolves.
type MemoryGame struct {
	cards        []Card
	flipped      []int
	moves        int
	matchedPairs int
	pairs        int
	complete     bool
}

func NewMemoryGame(symbols []string, rng *rand.Rand) (*MemoryGame, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cards := make([]Card, 0, len(symbols)*2)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s}, Card{Symbol: s})
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &MemoryGame{cards: cards, pairs: len(symbols)}, nil
}

// Flip turns a card face up. Taps on matched cards, already-flipped cards, or
// while two cards are pending resolution are ignored. Returns whether the
// flip was accepted.
func (m *MemoryGame) Flip(i int) bool {
	if m.complete || i < 0 || i >= len(m.cards) {
		return false
	}
	if len(m.flipped) == 2 {
		return false
	}
	card := &m.cards[i]
	if card.Matched || card.FaceUp {
		return false
	}

	card.FaceUp = true
	m.flipped = append(m.flipped, i)
	return true
}

// Pending reports whether two cards are face up awaiting resolution.
func (m *MemoryGame) Pending() bool { return len(m.flipped) == 2 }

// PendingMatch reports whether the two pending cards match. Only meaningful
// while Pending.
func (m *MemoryGame) PendingMatch() bool {
	if len(m.flipped) != 2 {
		return false
	}
	return m.cards[m.flipped[0]].Symbol == m.cards[m.flipped[1]].Symbol
}

// Resolve settles the pending pair: matching cards stay up and are marked
// matched, mismatching cards flip back down. The move counter increments once
// per pair of flips regardless of outcome.
func (m *MemoryGame) Resolve() {
	if len(m.flipped) != 2 {
		return
	}

	m.moves++
	a, b := &m.cards[m.flipped[0]], &m.cards[m.flipped[1]]
	if a.Symbol == b.Symbol {
		a.Matched = true
		b.Matched = true
		m.matchedPairs++
		if m.matchedPairs == m.pairs {
			m.complete = true
		}
	} else {
		a.FaceUp = false
		b.FaceUp = false
	}
	m.flipped = m.flipped[:0]
}

// Cards returns a copy of the board.
func (m *MemoryGame) Cards() []Card {
	out := make([]Card, len(m.cards))
	copy(out, m.cards)
	return out
}

func (m *MemoryGame) Moves() int        { return m.moves }
func (m *MemoryGame) MatchedPairs() int { return m.matchedPairs }
func (m *MemoryGame) Pairs() int        { return m.pairs }
func (m *MemoryGame) Done() bool        { return m.complete }
