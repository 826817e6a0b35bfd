package engine

import "testing"

// TestCardValues documents the scoring table: Joker 0, Ace 1, 2–10 face
// value, J/Q 10, red King -1, black King 10.
func TestCardValues(t *testing.T) {
	cases := []struct {
		name string
		card Card
		want int8
	}{
		{"red joker", NewCard(SuitRedJoker, RankJoker), 0},
		{"ace", NewCard(SuitClubs, RankAce), 1},
		{"two", NewCard(SuitHearts, RankTwo), 2},
		{"nine", NewCard(SuitSpades, RankNine), 9},
		{"ten", NewCard(SuitDiamonds, RankTen), 10},
		{"jack", NewCard(SuitHearts, RankJack), 10},
		{"queen", NewCard(SuitClubs, RankQueen), 10},
		{"king of hearts", NewCard(SuitHearts, RankKing), -1},
		{"king of diamonds", NewCard(SuitDiamonds, RankKing), -1},
		{"king of clubs", NewCard(SuitClubs, RankKing), 10},
		{"king of spades", NewCard(SuitSpades, RankKing), 10},
	}
	for _, tc := range cases {
		if got := tc.card.Value(); got != tc.want {
			t.Errorf("%s: Value() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestCardPowers documents the power table: 7/8 peek own, 9/10 peek
// other, J/Q blind swap, K look-then-decide. Everything else is inert.
func TestCardPowers(t *testing.T) {
	cases := []struct {
		rank uint8
		want PowerKind
	}{
		{RankAce, PowerNone},
		{RankSix, PowerNone},
		{RankSeven, PowerPeekOwn},
		{RankEight, PowerPeekOwn},
		{RankNine, PowerPeekOther},
		{RankTen, PowerPeekOther},
		{RankJack, PowerBlindSwap},
		{RankQueen, PowerBlindSwap},
		{RankKing, PowerKingLook},
		{RankJoker, PowerNone},
	}
	for _, tc := range cases {
		c := NewCard(SuitSpades, tc.rank)
		if got := c.Power(); got != tc.want {
			t.Errorf("%s: Power() = %d, want %d", c, got, tc.want)
		}
		if c.HasPower() != (tc.want != PowerNone) {
			t.Errorf("%s: HasPower() inconsistent with Power()", c)
		}
	}
}

// TestCardPack verifies suit/rank round-trip through the packed byte.
func TestCardPack(t *testing.T) {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank <= RankKing; rank++ {
			c := NewCard(suit, rank)
			if c.Suit() != suit || c.Rank() != rank {
				t.Fatalf("NewCard(%d,%d) round-trip = (%d,%d)", suit, rank, c.Suit(), c.Rank())
			}
		}
	}
}
