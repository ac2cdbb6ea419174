package report

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Description renders a free-text block wrapped to a fixed column width,
// preserving explicit paragraph breaks. An optional title is centered over
// rule lines the way a [MetricBlock] title is.
type Description struct {
	cfg  config
	text string
}

// NewDescription builds a description from text, which must be a string or
// a value coercible to one; anything else fails with [ErrInvalidType].
func NewDescription(text any, opts ...Option) (*Description, error) {
	s, ok := text.(string)
	if !ok {
		coerced, err := cast.ToStringE(text)
		if err != nil {
			return nil, fmt.Errorf("%w: description must be a string or coercible, got %T", ErrInvalidType, text)
		}
		s = coerced
	}
	return &Description{cfg: defaultConfig().apply(opts), text: s}, nil
}

// Text returns the original unwrapped text.
func (d *Description) Text() string { return d.text }

// Render returns the wrapped text.
func (d *Description) Render() string {
	body := wrapPlain(d.text, d.cfg.wrapWidth)
	if body == "" {
		body = SentinelEmpty
	}
	if d.cfg.title == "" {
		return body
	}
	rule := strings.Repeat(d.cfg.ruleChar, d.cfg.wrapWidth)
	return centerText(d.cfg.title, d.cfg.wrapWidth) + "\n" + rule + "\n" + body + "\n" + rule
}

func (d *Description) String() string { return d.Render() }
