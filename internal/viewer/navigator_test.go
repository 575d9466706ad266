package viewer

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeck(n int) *domain.FlashcardDeck {
	cards := make([]domain.Flashcard, n)
	for i := range cards {
		cards[i] = domain.Flashcard{
			Question: fmt.Sprintf("Q%d", i+1),
			Answer:   fmt.Sprintf("A%d", i+1),
		}
	}
	return domain.NewFlashcardDeck(cards)
}

func newTestNavigator(t *testing.T, n int, opts ...Option) *Navigator {
	t.Helper()
	nav, err := NewNavigator(testDeck(n), opts...)
	require.NoError(t, err)
	return nav
}

func TestNewNavigatorEmptyDeck(t *testing.T) {
	t.Parallel()

	_, err := NewNavigator(domain.NewFlashcardDeck(nil))
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, err = NewNavigator(nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNavigatorInitialState(t *testing.T) {
	t.Parallel()

	nav := newTestNavigator(t, 3)
	assert.Equal(t, State{Index: 0, ShowAnswer: false}, nav.State())
	assert.Equal(t, "Q1", nav.Current().Question)
}

func TestNavigatorCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		commands []string
		want     State
		wantQuit bool
	}{
		{name: "flip", commands: []string{"f"}, want: State{Index: 0, ShowAnswer: true}},
		{name: "flip long form", commands: []string{"flip"}, want: State{Index: 0, ShowAnswer: true}},
		{name: "next", commands: []string{"n"}, want: State{Index: 1}},
		{name: "next long form", commands: []string{"next"}, want: State{Index: 1}},
		{name: "prev wraps", commands: []string{"p"}, want: State{Index: 4}},
		{name: "prev long form", commands: []string{"n", "n", "prev"}, want: State{Index: 1}},
		{name: "next wraps", commands: []string{"n", "n", "n", "n", "n"}, want: State{Index: 0}},
		{name: "jump long form", commands: []string{"jump 4"}, want: State{Index: 3}},
		{name: "jump short form", commands: []string{"j 2"}, want: State{Index: 1}},
		{name: "two-character j line ignored", commands: []string{"j3"}, want: State{Index: 0}},
		{name: "jump without space", commands: []string{"j3 "}, want: State{Index: 2}},
		{name: "jump digits only", commands: []string{"j5x"}, want: State{Index: 4}},
		{name: "jump zero", commands: []string{"jump 0"}, want: State{Index: 0}},
		{name: "jump negative", commands: []string{"n", "jump -5"}, want: State{Index: 1}},
		{name: "jump past end", commands: []string{"n", "jump 6"}, want: State{Index: 1}},
		{name: "jump without digits", commands: []string{"n", "jxy"}, want: State{Index: 1}},
		{name: "jump bare word", commands: []string{"n", "jump"}, want: State{Index: 1}},
		{name: "short j ignored", commands: []string{"n", "j5"}, want: State{Index: 1}},
		{name: "bare number", commands: []string{"5"}, want: State{Index: 4}},
		{name: "number with suffix", commands: []string{"3abc"}, want: State{Index: 2}},
		{name: "number out of range", commands: []string{"n", "9"}, want: State{Index: 1}},
		{name: "leading whitespace trimmed", commands: []string{" \tn"}, want: State{Index: 1}},
		{name: "empty line ignored", commands: []string{"f", ""}, want: State{Index: 0, ShowAnswer: true}},
		{name: "unknown command ignored", commands: []string{"f", "hello"}, want: State{Index: 0, ShowAnswer: true}},
		{name: "trailing whitespace not trimmed", commands: []string{"n "}, want: State{Index: 0}},
		{name: "overflow ignored", commands: []string{"n", "jump 99999999999"}, want: State{Index: 1}},
		{name: "quit", commands: []string{"n", "q"}, want: State{Index: 1}, wantQuit: true},
		{name: "quit long form", commands: []string{"quit"}, want: State{Index: 0}, wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nav := newTestNavigator(t, 5)
			quit := false
			for _, cmd := range tt.commands {
				quit = nav.Apply(cmd)
			}

			assert.Equal(t, tt.want, nav.State())
			assert.Equal(t, tt.wantQuit, quit)
		})
	}
}

func TestNavigatorRandom(t *testing.T) {
	t.Parallel()

	var gotN int
	nav := newTestNavigator(t, 4, WithIntn(func(n int) int {
		gotN = n
		return 2
	}))

	nav.Apply("f")
	nav.Apply("random")

	assert.Equal(t, 4, gotN)
	assert.Equal(t, State{Index: 2}, nav.State())
}

func TestNavigatorWrapProperty(t *testing.T) {
	t.Parallel()

	for size := 1; size <= 7; size++ {
		for start := 0; start < size; start++ {
			nav := newTestNavigator(t, size)
			require.True(t, nav.Jump(start+1))

			for i := 0; i < size; i++ {
				nav.Apply("n")
			}
			assert.Equal(t, start, nav.State().Index, "next wrap size=%d start=%d", size, start)

			for i := 0; i < size; i++ {
				nav.Apply("p")
			}
			assert.Equal(t, start, nav.State().Index, "prev wrap size=%d start=%d", size, start)
		}
	}
}

func TestNavigatorFlipProperty(t *testing.T) {
	t.Parallel()

	for _, move := range []string{"n", "p", "r", "jump 2", "2"} {
		nav := newTestNavigator(t, 3)

		nav.Apply("f")
		nav.Apply("f")
		assert.False(t, nav.State().ShowAnswer, "double flip restores hidden")

		nav.Apply("f")
		require.True(t, nav.State().ShowAnswer)
		nav.Apply(move)
		assert.False(t, nav.State().ShowAnswer, "%q should hide the answer", move)
	}
}

func TestNavigatorIndexInvariant(t *testing.T) {
	t.Parallel()

	commands := []string{
		"f", "n", "p", "r", "q", "jump 1", "jump 0", "jump -1", "j 9", "jx",
		"0", "1", "2", "-3", "", "  ", "next", "prev", "random", "flip", "zzz",
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for size := 1; size <= 6; size++ {
		nav := newTestNavigator(t, size, WithIntn(rng.IntN))
		for i := 0; i < 500; i++ {
			nav.Apply(commands[rng.IntN(len(commands))])
			idx := nav.State().Index
			require.True(t, idx >= 0 && idx < size, "index %d out of range for size %d", idx, size)
		}
	}
}

func TestNavigatorScenarioS4(t *testing.T) {
	t.Parallel()

	nav := newTestNavigator(t, 3)
	var quit bool
	for _, cmd := range []string{"f", "n", "f", "f", "jump 3", "q"} {
		quit = nav.Apply(cmd)
	}

	assert.True(t, quit)
	assert.Equal(t, State{Index: 2, ShowAnswer: false}, nav.State())
}

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "12", want: 12, wantOK: true},
		{in: "  7", want: 7, wantOK: true},
		{in: "-5", want: -5, wantOK: true},
		{in: "+3", want: 3, wantOK: true},
		{in: "3-4", want: 3, wantOK: true},
		{in: "2147483647", want: 2147483647, wantOK: true},
		{in: "-2147483648", want: -2147483648, wantOK: true},
		{in: "2147483648"},
		{in: ""},
		{in: "-"},
		{in: "--5"},
		{in: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := leadingInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
