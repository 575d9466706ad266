package main

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// choice selects which generation pipelines run.
type choice int

const (
	choiceSummary    choice = 1
	choiceFlashcards choice = 2
	choiceBoth       choice = 3
)

func (c choice) wantsSummary() bool {
	return c == choiceSummary || c == choiceBoth
}

func (c choice) wantsFlashcards() bool {
	return c == choiceFlashcards || c == choiceBoth
}

// Outcomes of the text protocol that end the run quietly.
var (
	errNoInput = errors.New("no input detected")
	errNoText  = errors.New("no text entered")
)

const menuPrompt = "What do you want?\n" +
	"1 = Summary only\n" +
	"2 = Flashcards only\n" +
	"3 = Both summary + flashcards\n" +
	"Enter choice (1/2/3): "

const pasteInstructions = "\nPaste your study text below.\n" +
	"When you're done, press Enter on an empty line to finish input.\n" +
	"Then press Enter.\n\n"

// readChoice prints the menu and reads one line. The leading integer of the
// line selects the choice and an unparsable line means both. Values outside
// 1..3 are kept as-is and select no pipeline.
func readChoice(r *bufio.Reader, out io.Writer) choice {
	io.WriteString(out, menuPrompt)

	line, _ := readLine(r)
	return parseChoice(line)
}

func parseChoice(line string) choice {
	s := strings.TrimSpace(line)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return choiceBoth
	}
	return choice(n)
}

// readStudyText prints the paste instructions and reads the study text. A
// line ending in '\' continues onto the next line; an empty line or EOF ends
// the continuation.
func readStudyText(r *bufio.Reader, out io.Writer) (string, error) {
	io.WriteString(out, pasteInstructions)

	line, ok := readLine(r)
	if !ok {
		return "", errNoInput
	}
	if line == "" {
		return "", errNoText
	}

	text := line
	for strings.HasSuffix(text, `\`) {
		text = strings.TrimSuffix(text, `\`) + "\n"

		next, ok := readLine(r)
		if !ok || next == "" {
			break
		}
		text += next
	}

	if text == "" {
		return "", errNoText
	}
	return text, nil
}

// readLine returns the next line without its terminator; ok is false at EOF
// when nothing was read.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}
