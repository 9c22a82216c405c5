package domain

// SpreadSize is the number of cards in a past/present/future reading.
const SpreadSize = 3

// DrawCards draws exactly three unique cards from deck using the provided
// RNG. Position 0 is the past, 1 the present, 2 the future. Orientation is
// a fair 50/50 flip per card.
func DrawCards(deck Deck, rng RNG) ([]DrawnCard, error) {
	if len(deck.Cards) < SpreadSize {
		return nil, ErrDeckTooSmall
	}

	// Fisher-Yates shuffle over indices, then take the first three.
	indices := make([]int, len(deck.Cards))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	drawn := make([]DrawnCard, SpreadSize)
	for i := range SpreadSize {
		c := deck.Cards[indices[i]]
		drawn[i] = DrawnCard{
			Name:       c.Name,
			ImageURL:   c.Image,
			IsReversed: rng.Intn(2) == 1,
			Keywords:   c.Keywords,
			Upright:    c.Upright,
			Reversed:   c.Reversed,
			Vietnamese: c.Vietnamese,
		}
	}
	return drawn, nil
}
