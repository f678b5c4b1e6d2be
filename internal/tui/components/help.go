package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type HelpProps struct {
	Markdown string
	Width    int // outer width of the box
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	// Check cache first
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	// Create new renderer
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	// Store in cache
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderHelp renders the help markdown inside the help box. Plain text is
// shown if the markdown cannot be rendered.
func RenderHelp(props HelpProps) string {
	inner := max(props.Width-HelpBoxStyle.GetHorizontalFrameSize(), 1)

	body := props.Markdown
	if renderer, err := getRenderer(inner); err == nil {
		if rendered, err := renderer.Render(props.Markdown); err == nil {
			body = strings.Trim(rendered, "\n")
		}
	}

	return HelpBoxStyle.
		Width(props.Width).
		Render(body)
}
