package synthesis

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/protektiq/lifeflow/internal/infra/planner"
)

var errNoPlanInText = errors.New("no parseable plan found in text")

// extractProposedTasks recovers a structured task list from a text
// response. It strips code fences, then tries the whole text, the widest
// bracketed array, and the widest braced object, in that order.
func extractProposedTasks(text string) ([]planner.ProposedTask, error) {
	text = stripCodeFences(text)

	for _, fragment := range jsonFragments(text) {
		if tasks, ok := decodeTasks(fragment); ok {
			return tasks, nil
		}
	}

	return nil, errNoPlanInText
}

func jsonFragments(text string) []string {
	fragments := []string{text}

	if start, end := strings.IndexByte(text, '['), strings.LastIndexByte(text, ']'); start >= 0 && end > start {
		fragments = append(fragments, text[start:end+1])
	}
	if start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}'); start >= 0 && end > start {
		fragments = append(fragments, text[start:end+1])
	}

	return fragments
}

func decodeTasks(fragment string) ([]planner.ProposedTask, bool) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, false
	}

	var wrapped struct {
		Tasks []planner.ProposedTask `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(fragment), &wrapped); err == nil && len(wrapped.Tasks) > 0 {
		return wrapped.Tasks, true
	}

	var bare []planner.ProposedTask
	if err := json.Unmarshal([]byte(fragment), &bare); err == nil && len(bare) > 0 {
		return bare, true
	}

	return nil, false
}

// stripCodeFences unwraps the first fenced block when the text carries
// markdown fences, dropping an optional language tag.
func stripCodeFences(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}

	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(body[:nl])
		if firstLine == "" || isLanguageTag(firstLine) {
			body = body[nl+1:]
		}
	}

	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return body
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
