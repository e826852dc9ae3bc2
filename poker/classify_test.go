package poker

import "testing"

func mustHand(t *testing.T, suits, ranks [HandSize]uint8) Hand {
	t.Helper()
	var cards [HandSize]Card
	for i := range cards {
		c, err := NewCard(suits[i], ranks[i])
		if err != nil {
			t.Fatal(err)
		}
		cards[i] = c
	}
	h, err := NewHand(cards)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestClassifyLadder(t *testing.T) {
	tests := []struct {
		name  string
		suits [HandSize]uint8
		ranks [HandSize]uint8
		want  Category
	}{
		{"royal flush in spades", [HandSize]uint8{Spade, Spade, Spade, Spade, Spade}, [HandSize]uint8{10, Jack, Queen, King, Ace}, StraightFlush},
		{"wheel straight flush", [HandSize]uint8{Heart, Heart, Heart, Heart, Heart}, [HandSize]uint8{Ace, 2, 3, 4, 5}, StraightFlush},
		{"four twos", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{2, 2, 2, 2, 5}, FourOfAKind},
		{"full house threes over nines", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{3, 3, 3, 9, 9}, FullHouse},
		{"flush, not straight", [HandSize]uint8{Diamond, Diamond, Diamond, Diamond, Diamond}, [HandSize]uint8{2, 5, 9, Jack, King}, Flush},
		{"wheel straight", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{Ace, 2, 3, 4, 5}, Straight},
		{"broadway straight", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{10, Jack, Queen, King, Ace}, Straight},
		{"middle straight", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{6, 7, 8, 9, 10}, Straight},
		{"three of a kind", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{7, 7, 7, 2, 9}, ThreeOfAKind},
		{"two pair", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{4, 4, 9, 9, King}, TwoPair},
		{"one pair", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{Jack, Jack, 2, 5, 8}, OnePair},
		{"broken straight", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{2, 3, 4, 5, 7}, HighCard},
		{"nothing", [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{2, 6, 9, Jack, Ace}, HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.suits, tt.ranks)
			got := Classify(h.Ranks, h.Suits)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFourOfAKindIgnoresSuitSpread(t *testing.T) {
	spreads := [][HandSize]uint8{
		{Club, Diamond, Heart, Spade, Club},
		{Club, Diamond, Heart, Spade, Diamond},
		{Club, Diamond, Heart, Spade, Heart},
		{Club, Diamond, Heart, Spade, Spade},
	}
	for _, suits := range spreads {
		h := mustHand(t, suits, [HandSize]uint8{2, 2, 2, 2, 5})
		if got := Classify(h.Ranks, h.Suits); got != FourOfAKind {
			t.Fatalf("expected Four of a Kind for suits %v, got %v", suits, got)
		}
	}
}

func TestFullHouseIsNeverTripsOrPair(t *testing.T) {
	h := mustHand(t, [HandSize]uint8{Club, Diamond, Heart, Club, Diamond}, [HandSize]uint8{8, 8, 8, King, King})
	got := Classify(h.Ranks, h.Suits)
	if got == ThreeOfAKind || got == OnePair {
		t.Fatalf("full house misclassified as %v", got)
	}
	if got != FullHouse {
		t.Fatalf("expected Full House, got %v", got)
	}
}

func TestStraightFlushBeatsFourOfAKind(t *testing.T) {
	sf := mustHand(t, [HandSize]uint8{Spade, Spade, Spade, Spade, Spade}, [HandSize]uint8{10, Jack, Queen, King, Ace})
	quads := mustHand(t, [HandSize]uint8{Club, Diamond, Heart, Spade, Club}, [HandSize]uint8{9, 9, 9, 9, 2})
	a := Classify(sf.Ranks, sf.Suits)
	b := Classify(quads.Ranks, quads.Suits)
	if Compare(a, b) != -1 {
		t.Fatalf("expected %v to beat %v", a, b)
	}
}

func TestCompare(t *testing.T) {
	if got := Compare(Flush, Straight); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := Compare(HighCard, OnePair); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := Compare(TwoPair, TwoPair); got != 0 {
		t.Fatalf("expected tie, got %d", got)
	}
}

func TestCategoryLabels(t *testing.T) {
	if StraightFlush.String() != "Straight Flush" {
		t.Fatalf("got %q", StraightFlush.String())
	}
	if HighCard.String() != "High Card" {
		t.Fatalf("got %q", HighCard.String())
	}
}
