// Package engine implements a rules-faithful Cambio simulator core:
// deck and hand state, per-viewer knowledge masks, the turn state
// machine, power-card resolution, and scoring. The package is
// dependency-free and allocation-light so that a trainer can run many
// independent matches in parallel, one GameState per match.
package engine

// Suit constants — packed into upper 4 bits of Card.
const (
	SuitHearts     uint8 = 0
	SuitDiamonds   uint8 = 1
	SuitClubs      uint8 = 2
	SuitSpades     uint8 = 3
	SuitRedJoker   uint8 = 4
	SuitBlackJoker uint8 = 5
)

// Rank constants — packed into lower 4 bits of Card.
const (
	RankAce   uint8 = 0
	RankTwo   uint8 = 1
	RankThree uint8 = 2
	RankFour  uint8 = 3
	RankFive  uint8 = 4
	RankSix   uint8 = 5
	RankSeven uint8 = 6
	RankEight uint8 = 7
	RankNine  uint8 = 8
	RankTen   uint8 = 9
	RankJack  uint8 = 10
	RankQueen uint8 = 11
	RankKing  uint8 = 12
	RankJoker uint8 = 13
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
// Cards are interchangeable once drawn; identity only matters for the
// knowledge masks, which track slots rather than card objects.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// IsRed reports whether the card is Hearts or Diamonds.
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == SuitHearts || s == SuitDiamonds
}

// Value returns the point value used for scoring (never for legality):
//   - Joker → 0
//   - Ace → 1
//   - Two–Ten → face value
//   - Jack, Queen → 10
//   - King: Hearts/Diamonds → -1, Clubs/Spades → 10
func (c Card) Value() int8 {
	r := c.Rank()
	switch {
	case r == RankJoker:
		return 0
	case r == RankAce:
		return 1
	case r <= RankTen: // ranks 1–9: Two–Ten, face value
		return int8(r + 1)
	case r == RankJack, r == RankQueen:
		return 10
	case r == RankKing:
		if c.IsRed() {
			return -1
		}
		return 10
	}
	// EmptyCard or malformed
	return 0
}

// PowerKind classifies the special action granted when a drawn card of
// this rank is sent to the discard pile.
type PowerKind uint8

const (
	PowerNone      PowerKind = iota
	PowerPeekOwn             // Seven, Eight — peek one own slot
	PowerPeekOther           // Nine, Ten — peek one slot of another seat
	PowerBlindSwap           // Jack, Queen — blind-swap own slot with another seat's
	PowerKingLook            // King — peek another seat's slot, then optionally swap
)

// Power returns the power granted by discarding this card from the draw.
func (c Card) Power() PowerKind {
	switch c.Rank() {
	case RankSeven, RankEight:
		return PowerPeekOwn
	case RankNine, RankTen:
		return PowerPeekOther
	case RankJack, RankQueen:
		return PowerBlindSwap
	case RankKing:
		return PowerKingLook
	default:
		return PowerNone
	}
}

// HasPower reports whether the card grants a power when discarded from
// the draw (ranks Seven through King).
func (c Card) HasPower() bool { return c.Power() != PowerNone }

var rankNames = [...]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "Joker",
}

var suitNames = [...]string{"♥", "♦", "♣", "♠", "RJ", "BJ"}

// String renders a card for logs and test failures, e.g. "K♠" or "Joker".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	r, s := c.Rank(), c.Suit()
	if int(r) >= len(rankNames) || int(s) >= len(suitNames) {
		return "??"
	}
	if r == RankJoker {
		return "Joker"
	}
	return rankNames[r] + suitNames[s]
}
