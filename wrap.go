package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cast"
)

// WrapText formats a block of text under a left-aligned key. The key is
// padded (or truncated) to the configured key length and followed by ": ";
// the text is broken greedily at the last whitespace boundary at or before
// the wrap width, and every continuation line is indented to the start of
// the text column (key length + 2). A word longer than the wrap width is
// hard-cut.
//
// Wrapping normalizes whitespace, so re-wrapping an already wrapped body
// with identical parameters is a no-op. An empty key disables the key
// column entirely; empty text yields the key line with an empty text field.
func WrapText(text any, key string, opts ...Option) string {
	cfg := defaultConfig().apply(opts)
	body := coerceText(text)

	if key == "" {
		return strings.Join(wrapWords(strings.Fields(body), cfg.wrapWidth), "\n")
	}

	prefix := padKey(key, cfg.keyLength) + ": "
	indent := strings.Repeat(" ", cfg.keyLength+2)
	lines := wrapWords(strings.Fields(body), cfg.wrapWidth)
	if len(lines) == 0 {
		return strings.TrimRight(prefix, " ")
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// wrapPlain wraps free text at width, preserving explicit paragraph breaks
// (blank lines). Whitespace inside a paragraph is normalized.
func wrapPlain(text string, width int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	paras := strings.Split(text, "\n\n")
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		words := strings.Fields(p)
		if len(words) == 0 {
			continue
		}
		out = append(out, strings.Join(wrapWords(words, width), "\n"))
	}
	return strings.Join(out, "\n\n")
}

// wrapWords packs words greedily into lines no wider than width. Words
// wider than a whole line are hard-cut.
func wrapWords(words []string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	cur := ""
	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				head = string([]rune(word)[0])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		switch {
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// padKey left-aligns key in a field of length n, truncating when the key is
// longer than the field.
func padKey(key string, n int) string {
	if runewidth.StringWidth(key) > n {
		return runewidth.Truncate(key, n, "")
	}
	return runewidth.FillRight(key, n)
}

func coerceText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return formatValue(v, DefaultDecimals)
}
