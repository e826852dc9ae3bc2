package poker

import "fmt"

// Category is the strength class of a five-card hand. Smaller values
// are stronger: 1 is a straight flush, 9 a bare high card.
type Category int

const (
	StraightFlush Category = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// String returns the human label for the category.
func (c Category) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Classify walks the category ladder top down and returns the first
// category the count tables satisfy.
func Classify(ranks RankCounts, suits SuitCounts) Category {
	straight := isStraight(ranks)
	flush := isFlush(suits)

	switch {
	case straight && flush:
		return StraightFlush
	case ranks.WithCount(4) == 1:
		return FourOfAKind
	case ranks.WithCount(3) == 1 && ranks.WithCount(2) == 1:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case ranks.WithCount(3) == 1 && ranks.WithCount(2) == 0:
		return ThreeOfAKind
	case ranks.WithCount(2) == 2:
		return TwoPair
	case ranks.WithCount(2) == 1:
		return OnePair
	default:
		return HighCard
	}
}

// isFlush is true when one suit holds all five cards. The suit table
// is the only correct input here; a rank table would never reach 5.
func isFlush(suits SuitCounts) bool {
	for s := 0; s <= Spade; s++ {
		if suits[s] == HandSize {
			return true
		}
	}
	return false
}

// isStraight needs five distinct ranks forming a consecutive run. The
// wheel A-2-3-4-5 is checked before the run scan because the ace is
// stored high.
func isStraight(ranks RankCounts) bool {
	if ranks.WithCount(1) != HandSize {
		return false
	}

	if ranks[Ace] == 1 && ranks[2] == 1 && ranks[3] == 1 && ranks[4] == 1 && ranks[5] == 1 {
		return true
	}

	run := 0
	for r := 2; r <= Ace; r++ {
		if ranks[r] == 1 {
			run++
			if run == HandSize {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// Compare orders two hands by category alone: -1 when a is stronger,
// 1 when b is stronger, 0 on equal categories. Equal categories are a
// tie; kicker comparison within a category is intentionally not
// implemented.
func Compare(a, b Category) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}
