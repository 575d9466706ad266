package viewer

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
)

// ErrEmptyDeck is returned when a navigator is requested for a deck without cards.
var ErrEmptyDeck = errors.New("deck has no flashcards")

// State is the position of the viewer within a deck.
type State struct {
	// Index is the zero-based card index, always in [0, deck length).
	Index int

	// ShowAnswer reports whether the current card's answer is revealed.
	ShowAnswer bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithIntn replaces the source used by the random command. fn must return a
// value in [0, n).
func WithIntn(fn func(n int) int) Option {
	return func(n *Navigator) {
		n.intn = fn
	}
}

// Navigator applies viewer commands to a non-empty deck.
type Navigator struct {
	deck  *domain.FlashcardDeck
	state State
	intn  func(n int) int
}

// NewNavigator returns a navigator positioned on the first card with the
// answer hidden.
func NewNavigator(deck *domain.FlashcardDeck, opts ...Option) (*Navigator, error) {
	if deck.IsEmpty() {
		return nil, ErrEmptyDeck
	}

	n := &Navigator{
		deck: deck,
		intn: rand.IntN,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// State returns the current position.
func (n *Navigator) State() State {
	return n.state
}

// Current returns the card at the current position.
func (n *Navigator) Current() domain.Flashcard {
	return n.deck.Card(n.state.Index)
}

// Len returns the size of the deck being navigated.
func (n *Navigator) Len() int {
	return n.deck.Len()
}

// Flip toggles answer visibility.
func (n *Navigator) Flip() {
	n.state.ShowAnswer = !n.state.ShowAnswer
}

// Next moves forward one card, wrapping to the first.
func (n *Navigator) Next() {
	n.moveTo((n.state.Index + 1) % n.Len())
}

// Prev moves back one card, wrapping to the last.
func (n *Navigator) Prev() {
	n.moveTo((n.state.Index - 1 + n.Len()) % n.Len())
}

// Random moves to a uniformly chosen card.
func (n *Navigator) Random() {
	n.moveTo(n.intn(n.Len()))
}

// Jump moves to the 1-based card number t. Out-of-range numbers are ignored
// and Jump reports whether the position changed.
func (n *Navigator) Jump(t int) bool {
	if t < 1 || t > n.Len() {
		return false
	}
	n.moveTo(t - 1)
	return true
}

func (n *Navigator) moveTo(index int) {
	n.state = State{Index: index}
}

// Apply dispatches one command line and reports whether the viewer should
// quit. Unrecognized or malformed commands leave the state unchanged.
func (n *Navigator) Apply(line string) (quit bool) {
	if line == "" {
		return false
	}
	cmd := strings.TrimLeft(line, " \t")

	switch {
	case cmd == "f" || cmd == "flip":
		n.Flip()
	case cmd == "n" || cmd == "next":
		n.Next()
	case cmd == "p" || cmd == "prev":
		n.Prev()
	case cmd == "r" || cmd == "random":
		n.Random()
	case len(cmd) > 2 && (cmd[0] == 'j' || strings.HasPrefix(cmd, "jump")):
		if t, ok := leadingInt(jumpDigits(cmd)); ok {
			n.Jump(t)
		}
	case cmd == "q" || cmd == "quit":
		return true
	default:
		if t, ok := leadingInt(cmd); ok {
			n.Jump(t)
		}
	}
	return false
}

// jumpDigits keeps only the digits and minus signs of a jump command, so
// "jump 12" yields "12" and "j -3" yields "-3".
func jumpDigits(cmd string) string {
	var sb strings.Builder
	for _, r := range cmd {
		if (r >= '0' && r <= '9') || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// leadingInt parses the integer at the start of s: optional whitespace, an
// optional sign, then at least one digit. Trailing characters are ignored.
// It fails when there are no digits or the value overflows an int32.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var v int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int64(s[i]-'0')
		if v > math.MaxInt32+1 {
			return 0, false
		}
		i++
	}
	if i == start {
		return 0, false
	}

	if neg {
		v = -v
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int(v), true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
