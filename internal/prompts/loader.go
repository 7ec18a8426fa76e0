// Package prompts holds the intake dialogue's prompt templates. Templates
// live in JSON files embedded at build time, one key per dialogue stage,
// with {{.Key}} placeholders substituted at call time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

// Parsed files are cached so the controller can fetch a template on every
// turn without re-decoding JSON.
var (
	fileCache   = make(map[string]map[string]string)
	fileCacheMu sync.RWMutex
)

// Get returns the template stored under key in the named file
// (e.g. Get("intake.json", "greeting")).
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("no prompt %q in %s", key, filename)
	}
	return tmpl, nil
}

// MustGet is Get for templates the dialogue cannot run without. A missing
// template is a packaging error, so it panics.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format substitutes {{.Key}} placeholders with values from data. Placeholders
// without a value are left in place, so a missing substitution stays visible
// in the rendered prompt.
func Format(template string, data map[string]string) string {
	rendered := template
	for key, value := range data {
		rendered = strings.ReplaceAll(rendered, fmt.Sprintf("{{.%s}}", key), value)
	}
	return rendered
}

func loadFile(filename string) (map[string]string, error) {
	fileCacheMu.RLock()
	templates, ok := fileCache[filename]
	fileCacheMu.RUnlock()
	if ok {
		return templates, nil
	}

	data, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	fileCacheMu.Lock()
	fileCache[filename] = templates
	fileCacheMu.Unlock()

	return templates, nil
}

// ClearCache drops all parsed files; tests use it to exercise cold loads.
func ClearCache() {
	fileCacheMu.Lock()
	fileCache = make(map[string]map[string]string)
	fileCacheMu.Unlock()
}

// List returns the prompt keys defined in a file.
func List(filename string) ([]string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}
