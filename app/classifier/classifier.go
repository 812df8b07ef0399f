// Package classifier provides the topic classification capability behind a
// single interface with two interchangeable backends: a remote HTTP
// inference endpoint and a locally loaded statistical model.
package classifier

import (
	"context"
	"strings"
)

// Unknown is returned whenever classification fails or produces no label.
const Unknown = "unknown"

// maxChars bounds the text submitted to a backend, keeping cost and latency
// per call independent of article length.
const maxChars = 2000

// Classifier labels a piece of text with a raw category string. A failure of
// the backend never surfaces to the caller; it yields Unknown instead.
type Classifier interface {
	Classify(ctx context.Context, text string) string
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
