package domain

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardDeck is an ordered, immutable collection of flashcards returned by
// one generation call. The zero value is an empty deck.
type FlashcardDeck struct {
	cards []Flashcard
}

// NewFlashcardDeck creates a deck holding a copy of cards, so later changes to
// the caller's slice do not leak into the deck.
func NewFlashcardDeck(cards []Flashcard) *FlashcardDeck {
	owned := make([]Flashcard, len(cards))
	copy(owned, cards)
	return &FlashcardDeck{cards: owned}
}

// Len returns the number of cards in the deck.
func (d *FlashcardDeck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards.
func (d *FlashcardDeck) IsEmpty() bool {
	return d.Len() == 0
}

// Card returns the card at index i. It panics when i is out of range, like a
// slice index would.
func (d *FlashcardDeck) Card(i int) Flashcard {
	return d.cards[i]
}

// Cards returns a copy of the deck's cards in order.
func (d *FlashcardDeck) Cards() []Flashcard {
	out := make([]Flashcard, d.Len())
	if d != nil {
		copy(out, d.cards)
	}
	return out
}
