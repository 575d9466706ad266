// Package viewer lets a student browse a flashcard deck in the terminal.
//
// Navigator is the navigation state machine shared by both front-ends: Run,
// a line-oriented command loop over any io.Reader/io.Writer pair, and RunTUI,
// a full-screen tview application that maps keys onto the same commands.
package viewer
