package format

import "github.com/gomarkdown/markdown"

// RenderHTML converts a markdown answer to HTML for clients that ask for
// text/html. Answers are system-assembled templates plus document sentences,
// so default parser and renderer settings are sufficient.
func RenderHTML(md string) string {
	return string(markdown.ToHTML([]byte(md), nil, nil))
}
