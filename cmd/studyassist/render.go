package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hkshrestha01-debug/aistudyapp/internal/domain"
)

// renderSummary writes the summary section to out.
func renderSummary(out io.Writer, s *domain.SummaryResult) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n=== SUMMARY ===\n%s\n\n", s.Summary)

	sb.WriteString("Key points:\n")
	for _, kp := range s.KeyPoints {
		fmt.Fprintf(&sb, "- %s\n", kp)
	}

	sb.WriteString("\nDefinitions:\n")
	for _, d := range s.Definitions {
		fmt.Fprintf(&sb, "%s: %s\n", d.Term, d.Definition)
	}

	io.WriteString(out, sb.String())
}
