package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document on the terminal, falling back
// to the raw text when the terminal renderer cannot be set up.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, err := r.Render(doc); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(doc)
}
