package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal, wrapped at width columns.
// If no renderer can be built the markdown is returned unchanged.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md, fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
