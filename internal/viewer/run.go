package viewer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
)

// clearScreen erases the terminal and homes the cursor.
const clearScreen = "\033[2J\033[H"

const commandsLine = "Commands: [f]lip  [n]ext  [p]rev  [r]andom  [j]ump <num>  [q]uit\n"

// Run browses deck with a line-oriented command loop, reading commands from
// in and rendering to out. It returns when the user quits or in reaches EOF.
// An empty deck prints a notice and returns immediately.
func Run(deck *domain.FlashcardDeck, in io.Reader, out io.Writer, opts ...Option) {
	nav, err := NewNavigator(deck, opts...)
	if err != nil {
		fmt.Fprint(out, "No flashcards to view.\n")
		return
	}

	reader := bufio.NewReader(in)
	for {
		render(out, nav)

		line, ok := readLine(reader)
		if !ok {
			break
		}
		if nav.Apply(line) {
			break
		}
	}
	fmt.Fprint(out, clearScreen)
}

// render draws the current card.
func render(out io.Writer, nav *Navigator) {
	state := nav.State()
	card := nav.Current()

	var sb strings.Builder
	sb.WriteString(clearScreen)
	fmt.Fprintf(&sb, "Flashcard %d/%d\n", state.Index+1, nav.Len())
	sb.WriteString("-------------------------\n")
	fmt.Fprintf(&sb, "Q: %s\n\n", card.Question)
	if state.ShowAnswer {
		fmt.Fprintf(&sb, "A: %s\n\n", card.Answer)
	} else {
		sb.WriteString("A: [hidden] (press 'f' to flip)\n\n")
	}
	sb.WriteString(commandsLine)

	io.WriteString(out, sb.String())
}

// readLine returns the next line without its terminator. A final line without
// a newline is still returned; ok is false only when nothing was read.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}
