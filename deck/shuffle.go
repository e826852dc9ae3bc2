package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle assigns the order numbers 1..DeckSize to the slots with a
// Fisher-Yates pass over the flattened grid.
func (d *Deck) Shuffle(r *rand.Rand) {
	order := make([]int, DeckSize)
	for i := range order {
		order[i] = i + 1
	}
	r.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for i, o := range order {
		d.grid[i/Faces][i%Faces] = o
	}
}

// ShuffleRejection assigns the order numbers one at a time by drawing
// uniform slots from the stream until an empty slot turns up. Slower
// than Shuffle but the resulting distribution is the same. A nil
// stream falls back to crypto randomness.
func (d *Deck) ShuffleRejection(stream cipher.Stream) {
	if stream == nil {
		stream = random.New()
	}
	d.grid = [Suits][Faces]int{}
	// random.Int never returns zero, so draw on 1..DeckSize and shift
	// down to cover slot 0.
	slots := big.NewInt(DeckSize + 1)
	for order := 1; order <= DeckSize; order++ {
		for {
			slot := int(random.Int(slots, stream).Int64()) - 1
			suit, face := slot/Faces, slot%Faces
			if d.grid[suit][face] == 0 {
				d.grid[suit][face] = order
				break
			}
		}
	}
}
