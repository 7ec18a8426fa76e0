// Package extraction recovers structured data from free-text model replies:
// a JSON object or array embedded in prose, and numbered question lists.
package extraction

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/talent-scout/internal/llm"
)

// ExtractJSON recovers a JSON value from an arbitrary model reply.
// It first attempts a strict decode of the whole (code-fence-cleaned) text,
// then falls back to the first {...} or [...] span found in the text.
// A malformed fragment yields total failure, never partial extraction.
func ExtractJSON(text string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(llm.CleanJSONBlock(text))
	if cleaned == "" {
		return nil, &ParseError{Message: "empty reply"}
	}

	var probe any
	if err := json.Unmarshal([]byte(cleaned), &probe); err == nil {
		return json.RawMessage(cleaned), nil
	}

	span, ok := jsonSpan(cleaned)
	if !ok {
		return nil, &ParseError{Message: "no JSON object or array found in reply"}
	}

	if err := json.Unmarshal([]byte(span), &probe); err != nil {
		return nil, &ParseError{Message: "recovered span is not valid JSON", Cause: err}
	}
	return json.RawMessage(span), nil
}

// jsonSpan locates the greedy candidate span: from the earliest opener to the
// last matching closer, spanning newlines. Returns false if no such span exists.
func jsonSpan(text string) (string, bool) {
	type candidate struct {
		opener byte
		closer byte
	}
	candidates := []candidate{{'{', '}'}, {'[', ']'}}

	best := -1
	bestEnd := -1
	for _, c := range candidates {
		start := strings.IndexByte(text, c.opener)
		if start < 0 {
			continue
		}
		end := strings.LastIndexByte(text, c.closer)
		if end <= start {
			continue
		}
		if best < 0 || start < best {
			best = start
			bestEnd = end
		}
	}

	if best < 0 {
		return "", false
	}
	return text[best : bestEnd+1], true
}
