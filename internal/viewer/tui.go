package viewer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
	"github.com/rivo/tview"
)

// tuiViewer is the full-screen front-end over a Navigator.
type tuiViewer struct {
	app  *tview.Application
	view *tview.TextView
	nav  *Navigator

	// pending holds digits typed toward a jump, applied on Enter
	pending string
	stop    func()
}

func newTUIViewer(nav *Navigator) *tuiViewer {
	v := &tuiViewer{
		app: tview.NewApplication(),
		nav: nav,
	}
	v.stop = v.app.Stop

	v.view = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetWordWrap(true).
		SetWrap(true)
	v.view.SetBorder(true).
		SetTitle(" Study Flashcards ").
		SetTitleAlign(tview.AlignCenter)

	v.refresh()
	return v
}

// RunTUI browses deck in a full-screen terminal UI. It blocks until the user
// quits. An empty deck prints the same notice as Run to out and returns nil.
func RunTUI(deck *domain.FlashcardDeck, out io.Writer, opts ...Option) error {
	nav, err := NewNavigator(deck, opts...)
	if err != nil {
		fmt.Fprint(out, "No flashcards to view.\n")
		return nil
	}

	v := newTUIViewer(nav)

	layout := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(v.view, 0, 2, true).
			AddItem(nil, 0, 1, false), 0, 2, true).
		AddItem(nil, 0, 1, false)

	v.app.SetInputCapture(v.handleKey)
	if err := v.app.SetRoot(layout, true).Run(); err != nil {
		return fmt.Errorf("flashcard viewer failed: %w", err)
	}
	return nil
}

// handleKey maps a key press onto a navigator command. Handled keys are
// consumed; anything else is passed through.
func (v *tuiViewer) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		v.nav.Next()
	case tcell.KeyLeft:
		v.nav.Prev()
	case tcell.KeyEscape:
		v.stop()
		return nil
	case tcell.KeyEnter:
		if t, ok := leadingInt(v.pending); ok {
			v.nav.Jump(t)
		}
		v.pending = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if v.pending != "" {
			v.pending = v.pending[:len(v.pending)-1]
		}
	case tcell.KeyRune:
		r := event.Rune()
		switch {
		case r >= '0' && r <= '9':
			v.pending += string(r)
		case r == 'f' || r == ' ':
			v.nav.Flip()
		case r == 'n':
			v.nav.Next()
		case r == 'p':
			v.nav.Prev()
		case r == 'r':
			v.nav.Random()
		case r == 'q':
			v.stop()
			return nil
		default:
			return event
		}
	default:
		return event
	}

	v.refresh()
	return nil
}

func (v *tuiViewer) refresh() {
	v.view.SetText(v.text())
}

// text renders the current card with tview color tags.
func (v *tuiViewer) text() string {
	state := v.nav.State()
	card := v.nav.Current()

	var sb strings.Builder
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Flashcard %d/%d\n\n", state.Index+1, v.nav.Len())

	sb.WriteString("[::b]Q:[::-]\n")
	sb.WriteString("[cyan]" + tview.Escape(card.Question) + "[white]\n\n")

	sb.WriteString("[::b]A:[::-]\n")
	if state.ShowAnswer {
		sb.WriteString("[yellow]" + tview.Escape(card.Answer) + "[white]\n")
	} else {
		sb.WriteString("[gray]" + tview.Escape("[hidden]") + "[white]\n")
	}

	sb.WriteString("\n─────────────────────────\n")
	if v.pending != "" {
		fmt.Fprintf(&sb, "Jump to: %s\n", v.pending)
	}
	sb.WriteString("f/space: flip  |  ←/→: prev/next  |  r: random  |  <num> Enter: jump  |  q: quit")

	return sb.String()
}
