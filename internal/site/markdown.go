package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts trusted site copy to HTML. Raw HTML in the
// source is not passed through.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// RenderParagraphs renders each blank-line separated block on its own, so
// paragraphs can be revealed one at a time.
func RenderParagraphs(src string) ([]template.HTML, error) {
	var out []template.HTML
	for _, block := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		html, err := RenderMarkdown(block)
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}
