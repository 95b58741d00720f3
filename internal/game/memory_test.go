package game

import (
	"math/rand"
	"testing"
)

func newBoard(t *testing.T, symbols ...string) *MemoryGame {
	t.Helper()
	m, err := NewMemoryGame(symbols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// indexesOf returns the two board positions holding the symbol.
func indexesOf(m *MemoryGame, symbol string) []int {
	var out []int
	for i, c := range m.Cards() {
		if c.Symbol == symbol {
			out = append(out, i)
		}
	}
	return out
}

func TestNewMemoryGameValidation(t *testing.T) {
	if _, err := NewMemoryGame(nil, nil); err != ErrNoSymbols {
		t.Errorf("NewMemoryGame(nil) err = %v, want ErrNoSymbols", err)
	}
}

func TestBoardHasEverySymbolTwice(t *testing.T) {
	m := newBoard(t, "A", "B", "C")

	cards := m.Cards()
	if len(cards) != 6 {
		t.Fatalf("board size = %d, want 6", len(cards))
	}
	counts := map[string]int{}
	for _, c := range cards {
		counts[c.Symbol]++
	}
	for _, s := range []string{"A", "B", "C"} {
		if counts[s] != 2 {
			t.Errorf("symbol %s appears %d times, want 2", s, counts[s])
		}
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	m := newBoard(t, "A", "B", "C")

	a := indexesOf(m, "A")[0]
	b := indexesOf(m, "B")[0]
	if !m.Flip(a) || !m.Flip(b) {
		t.Fatal("flips rejected")
	}
	if m.PendingMatch() {
		t.Fatal("A and B should not match")
	}

	m.Resolve()
	cards := m.Cards()
	if cards[a].FaceUp || cards[b].FaceUp {
		t.Error("mismatched cards should flip back face down")
	}
	if m.MatchedPairs() != 0 {
		t.Errorf("MatchedPairs = %d, want 0", m.MatchedPairs())
	}
	if m.Moves() != 1 {
		t.Errorf("Moves = %d, want 1 (one per flip pair, any outcome)", m.Moves())
	}
}

func TestMatchSticks(t *testing.T) {
	m := newBoard(t, "A", "B")

	pair := indexesOf(m, "A")
	m.Flip(pair[0])
	m.Flip(pair[1])
	if !m.PendingMatch() {
		t.Fatal("identical symbols should match")
	}

	m.Resolve()
	cards := m.Cards()
	if !cards[pair[0]].Matched || !cards[pair[1]].Matched {
		t.Error("matched cards should be marked matched")
	}
	if m.MatchedPairs() != 1 {
		t.Errorf("MatchedPairs = %d, want 1", m.MatchedPairs())
	}
}

func TestThirdFlipIgnoredUntilResolved(t *testing.T) {
	m := newBoard(t, "A", "B", "C")

	a := indexesOf(m, "A")[0]
	b := indexesOf(m, "B")[0]
	c := indexesOf(m, "C")[0]
	m.Flip(a)
	m.Flip(b)

	if m.Flip(c) {
		t.Error("third flip accepted while two cards pending")
	}

	m.Resolve()
	if !m.Flip(c) {
		t.Error("flip rejected after resolution")
	}
}

func TestFlipRejectsMatchedAndFaceUpCards(t *testing.T) {
	m := newBoard(t, "A", "B")

	pair := indexesOf(m, "A")
	m.Flip(pair[0])
	if m.Flip(pair[0]) {
		t.Error("re-flipping a face-up card accepted")
	}
	m.Flip(pair[1])
	m.Resolve()

	if m.Flip(pair[0]) {
		t.Error("flipping a matched card accepted")
	}
}

func TestFullMatchCompletesGame(t *testing.T) {
	m := newBoard(t, "A", "B")

	for _, s := range []string{"A", "B"} {
		pair := indexesOf(m, s)
		m.Flip(pair[0])
		m.Flip(pair[1])
		m.Resolve()
	}

	if !m.Done() {
		t.Error("game should be complete once every pair is matched")
	}
	if m.Moves() != 2 {
		t.Errorf("Moves = %d, want 2", m.Moves())
	}
}
