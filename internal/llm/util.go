package llm

import "strings"

// CleanJSONBlock strips a markdown code fence wrapped around a model reply.
// The extraction prompt asks for bare JSON, but the model fences the payload
// often enough that downstream parsing has to tolerate it.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")

	// A generic fence may still open with a language tag on its own line.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		tag := body[:idx]
		if tag != "" && len(tag) < 20 && !strings.ContainsAny(tag, " {") {
			body = body[idx+1:]
		}
	}

	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}
