// Package richtext renders the markdown authored in the content sheet.
package richtext

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in the source is dropped by goldmark (WithUnsafe is not set);
// the UGC policy then strips anything unsafe that markdown itself can
// produce, such as javascript: links.
var (
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
	)
	htmlPolicy = bluemonday.UGCPolicy()
)

// RenderMarkdown converts src to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlPolicy.Sanitize(buf.String()), nil
}

const bulletChars = "-*•"

// SplitList turns a multi-line cell into list items. Blank lines are
// dropped and a single leading bullet is removed from each line.
func SplitList(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if r, size := utf8.DecodeRuneInString(line); r != utf8.RuneError && strings.ContainsRune(bulletChars, r) {
			line = strings.TrimSpace(line[size:])
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// Excerpt returns the first max runes of text with whitespace collapsed,
// followed by an ellipsis when anything was cut.
func Excerpt(text string, max int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if max <= 0 || utf8.RuneCountInString(collapsed) <= max {
		return collapsed
	}
	runes := []rune(collapsed)
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}
