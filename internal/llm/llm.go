// Package llm generates the friendly Vietnamese summary text shown next
// to a finished plan. The engine works without it; a nil TextGenerator
// simply disables summaries.
package llm

import "context"

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
