// Package main implements studyassist, a terminal study assistant that turns
// pasted study text into a summary and an interactive flashcard deck using a
// hosted language model.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// options holds the command-line flags.
type options struct {
	configPath string
	inputPath  string
	logLevel   string
	tui        bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and reports any failure on stderr as a single
// "Error: " line. The exit code is always 0.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 0
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "studyassist",
		Short: "Summarize study text and drill it as flashcards",
		Long: `studyassist asks what you want (a summary, flashcards or both), reads
your study text, and sends it to a language model.

The summary is printed to the terminal. Flashcards open in an interactive
viewer: f flips, n/p move, r picks a random card, j <num> jumps, q quits.

End a pasted line with '\' to continue on the next line. The OpenAI provider
reads its key from OPENAI_API_KEY; the Gemini provider from GEMINI_API_KEY.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.inputPath, "input", "", "read study text from a .txt, .md or .pdf file instead of stdin")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&opts.tui, "tui", false, "browse flashcards in a full-screen viewer")

	return cmd
}
