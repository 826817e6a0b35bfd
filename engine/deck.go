package engine

// DeckSize is the full deck: 4 suits × 13 ranks + up to 2 jokers.
const DeckSize = 54

// Deck holds the face-down draw pile and the face-up discard pile as
// fixed arrays with explicit lengths. The top of each pile is the last
// occupied element. Only the top of the discard pile is ever visible.
//
// The draw pile order is the hidden sequence; nothing reorders it except
// the reshuffle-on-empty path, which preserves the meaning of peeks.
type Deck struct {
	Draw       [DeckSize]Card
	DrawLen    uint8
	Discard    [DeckSize]Card
	DiscardLen uint8

	rng uint64 // xorshift64 stream, seed-controlled
}

// xorshift64 — same generator for shuffle and reshuffle so a seed fully
// determines the card sequence.
func (d *Deck) nextRand() uint64 {
	x := d.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	d.rng = x
	return x
}

func (d *Deck) randN(n uint64) uint64 { return d.nextRand() % n }

// NewDeck builds an unshuffled deck with the given number of jokers
// (0–2) and seeds its RNG stream.
func NewDeck(seed uint64, numJokers uint8) Deck {
	var d Deck
	d.rng = seed
	if d.rng == 0 {
		d.rng = 1 // xorshift can't start at 0
	}

	idx := 0
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			d.Draw[idx] = NewCard(suit, rank)
			idx++
		}
	}
	if numJokers > 2 {
		numJokers = 2
	}
	jokerSuits := [2]uint8{SuitRedJoker, SuitBlackJoker}
	for j := uint8(0); j < numJokers; j++ {
		d.Draw[52+int(j)] = NewCard(jokerSuits[j], RankJoker)
	}
	d.DrawLen = 52 + numJokers
	return d
}

// Shuffle permutes the draw pile with Fisher-Yates. The permutation is
// fully determined by the deck's seed.
func (d *Deck) Shuffle() {
	for i := int(d.DrawLen) - 1; i > 0; i-- {
		j := int(d.randN(uint64(i + 1)))
		d.Draw[i], d.Draw[j] = d.Draw[j], d.Draw[i]
	}
}

// Size returns the total number of cards held by both piles.
func (d *Deck) Size() int { return int(d.DrawLen) + int(d.DiscardLen) }

// Top returns the visible top card of the discard pile, or EmptyCard.
func (d *Deck) Top() Card {
	if d.DiscardLen == 0 {
		return EmptyCard
	}
	return d.Discard[d.DiscardLen-1]
}

// DrawCard removes and returns the top card of the draw pile. When the
// draw pile is empty it first reshuffles the discard pile minus its top
// card. If both piles are (effectively) exhausted it returns
// ErrEmptyPile; the caller treats that as fatal.
func (d *Deck) DrawCard() (Card, error) {
	if d.DrawLen == 0 {
		d.reshuffle()
	}
	if d.DrawLen == 0 {
		return EmptyCard, ErrEmptyPile
	}
	d.DrawLen--
	return d.Draw[d.DrawLen], nil
}

// DiscardCard pushes a card onto the discard pile, hiding the previous
// top card from view.
func (d *Deck) DiscardCard(c Card) {
	d.Discard[d.DiscardLen] = c
	d.DiscardLen++
}

// reshuffle moves every discard card except the visible top back into
// the draw pile and shuffles. The top card stays in place and visible.
func (d *Deck) reshuffle() {
	if d.DiscardLen <= 1 {
		return
	}
	top := d.Discard[d.DiscardLen-1]
	count := d.DiscardLen - 1
	for i := uint8(0); i < count; i++ {
		d.Draw[i] = d.Discard[i]
	}
	d.DrawLen = count
	d.Discard[0] = top
	d.DiscardLen = 1
	d.Shuffle()
}
