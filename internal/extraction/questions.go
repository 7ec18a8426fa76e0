package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

// questionLine matches "<integer>. <text>" after trimming.
var questionLine = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// ParseNumberedList scans a model reply line by line for numbered entries.
// Matching lines are kept as "<number>. <text>" in their original order;
// lines that do not match are discarded.
func ParseNumberedList(reply string) []string {
	var questions []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		m := questionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		questions = append(questions, fmt.Sprintf("%s. %s", m[1], m[2]))
	}
	return questions
}
