// Package render produces printable documents from address book entries.
// Rendering is read-only: it never touches the stores.
package render

import "github.com/and161185/abook/internal/model"

// Renderer turns an ordered entry list into a formatted document.
type Renderer interface {
	Render(entries []model.Entry) ([]byte, error)
}

// New returns the renderer for the given format ("html" or "text").
func New(format string) (Renderer, bool) {
	switch format {
	case "html":
		return &htmlRenderer{}, true
	case "text":
		return &textRenderer{}, true
	default:
		return nil, false
	}
}
