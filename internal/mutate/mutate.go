// Package mutate turns a user's chat message into a new version of the
// storefront document. A remote assistant rewrites the whole page when
// available; a local rule interpreter covers the rest.
package mutate

import (
	"context"
	"errors"
)

// ErrAssistantUnavailable is returned by the remote strategy when the
// assistant cannot produce a usable document (no API key, transport
// failure, or a malformed reply).
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// Intent is one edit request against the current document.
type Intent struct {
	Message     string `json:"message"`
	CurrentHTML string `json:"current_html"`
	StoreName   string `json:"store_name"`
	StoreType   string `json:"store_type"`
}

// Result is the outcome of applying an intent.
type Result struct {
	HTML    string `json:"html"`
	Message string `json:"message"`
	// Strategy names what produced the result, "assistant" or "rules".
	Strategy string `json:"strategy,omitempty"`
}

// Strategy transforms a document according to an intent. Implementations
// must either return a complete replacement document or an error; they
// never return a partial page.
type Strategy interface {
	Name() string
	Mutate(ctx context.Context, intent Intent) (Result, error)
}
