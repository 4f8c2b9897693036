// Package htmltomarkdown implements notebook.TextExtractor by converting
// pages to Markdown, keeping headings, lists, code and tables readable.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/notebook"
)

// Ensure Converter implements notebook.TextExtractor at compile time.
var _ notebook.TextExtractor = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// ExtractText converts a page to Markdown. Script and style elements are
// dropped by the base plugin.
func (c *Converter) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", notebook.Errorf(notebook.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", notebook.Errorf(notebook.EPARSE, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(md), nil
}
