package viewer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
	"github.com/hkshrestha01-debug/aistudyapp/internal/viewer"
	"github.com/stretchr/testify/assert"
)

const clearSeq = "\033[2J\033[H"

const commands = "Commands: [f]lip  [n]ext  [p]rev  [r]andom  [j]ump <num>  [q]uit\n"

func threeCardDeck() *domain.FlashcardDeck {
	return domain.NewFlashcardDeck([]domain.Flashcard{
		{Question: "What is ATP?", Answer: "Energy currency."},
		{Question: "Where is chlorophyll?", Answer: "Chloroplasts."},
		{Question: "Define osmosis.", Answer: "Diffusion of water."},
	})
}

func TestRunEmptyDeck(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(domain.NewFlashcardDeck(nil), strings.NewReader("n\n"), &out)

	assert.Equal(t, "No flashcards to view.\n", out.String())
}

func TestRunRendersHiddenAndRevealed(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(threeCardDeck(), strings.NewReader("f\nq\n"), &out)

	hidden := clearSeq +
		"Flashcard 1/3\n" +
		"-------------------------\n" +
		"Q: What is ATP?\n\n" +
		"A: [hidden] (press 'f' to flip)\n\n" +
		commands
	revealed := clearSeq +
		"Flashcard 1/3\n" +
		"-------------------------\n" +
		"Q: What is ATP?\n\n" +
		"A: Energy currency.\n\n" +
		commands

	assert.Equal(t, hidden+revealed+clearSeq, out.String())
}

func TestRunScenarioS4(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(threeCardDeck(), strings.NewReader("f\nn\nf\nf\njump 3\nq\n"), &out)

	frames := strings.Split(out.String(), clearSeq)
	// leading empty split, six rendered frames, final clearSeq
	assert.Len(t, frames, 8)
	assert.Equal(t, "", frames[len(frames)-1])

	last := frames[len(frames)-2]
	assert.Contains(t, last, "Flashcard 3/3\n")
	assert.Contains(t, last, "Q: Define osmosis.\n")
	assert.Contains(t, last, "A: [hidden]")
}

func TestRunEOFEndsLoop(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(threeCardDeck(), strings.NewReader("n"), &out)

	frames := strings.Split(out.String(), clearSeq)
	assert.Len(t, frames, 4, "initial frame, frame after the unterminated line, final clearSeq")
	assert.Contains(t, frames[2], "Flashcard 2/3\n")
	assert.True(t, strings.HasSuffix(out.String(), clearSeq))
}

func TestRunEmptyLineRerenders(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(threeCardDeck(), strings.NewReader("\n\r\nq\n"), &out)

	frames := strings.Split(out.String(), clearSeq)
	assert.Len(t, frames, 5)
	for _, frame := range frames[1:4] {
		assert.Contains(t, frame, "Flashcard 1/3\n")
	}
}

func TestRunHandlesCRLF(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	viewer.Run(threeCardDeck(), strings.NewReader("n\r\nq\r\n"), &out)

	assert.Contains(t, out.String(), "Flashcard 2/3\n")
	assert.True(t, strings.HasSuffix(out.String(), clearSeq))
}
