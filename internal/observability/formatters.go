// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidateProfile outputs a human-readable summary of the profile
// collected so far. Unknown fields show as "-".
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orDash(profile.Phone)))
	if profile.YearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Years:     %d\n", *profile.YearsExperience))
	} else {
		sb.WriteString("Years:     -\n")
	}
	sb.WriteString(fmt.Sprintf("Position:  %s\n", orDash(profile.DesiredPosition)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(profile.CurrentLocation)))

	if len(profile.TechStack) > 0 {
		stack := strings.Join(profile.TechStack, ", ")
		if len(stack) > 40 {
			stack = stack[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Stack:     %s", stack))
	} else {
		sb.WriteString("Stack:     -")
	}

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintQuestionProgress outputs the generated questions and which have been
// answered so far.
func (p *Printer) PrintQuestionProgress(questions, answers []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Answered %d of %d:\n\n", len(answers), len(questions)))

	count := min(len(questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		marker := " "
		if i < len(answers) {
			marker = "✓"
		}
		q := questions[i]
		if len(q) > 50 {
			q = q[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, q))
	}
	if len(questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(questions)-maxItemsToShow))
	}

	p.printBox("TECHNICAL QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTranscript outputs the full ordered transcript.
func (p *Printer) PrintTranscript(messages []types.Message) {
	if len(messages) == 0 {
		return
	}

	var sb strings.Builder
	for i, m := range messages {
		content := m.Content
		if len(content) > 45 {
			content = content[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-9s %s", m.Role+":", content))
		if i < len(messages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TRANSCRIPT", sb.String())
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
