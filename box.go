package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cast"
)

// Box renders a single message surrounded by a border. The inner width is
// the widest message line plus one padding column on each side; the top and
// bottom borders repeat the rule character and the sides use a vertical bar.
type Box struct {
	cfg     config
	message string
}

// NewBox builds a box around message, which must be a string or a value
// coercible to one; anything else fails with [ErrInvalidType].
func NewBox(message any, opts ...Option) (*Box, error) {
	s, ok := message.(string)
	if !ok {
		coerced, err := cast.ToStringE(message)
		if err != nil {
			return nil, fmt.Errorf("%w: box message must be a string or coercible, got %T", ErrInvalidType, message)
		}
		s = coerced
	}
	return &Box{cfg: defaultConfig().apply(opts), message: s}, nil
}

// Message returns the original message.
func (b *Box) Message() string { return b.message }

// Render returns the bordered message.
func (b *Box) Render() string {
	lines := strings.Split(strings.ReplaceAll(b.message, "\r\n", "\n"), "\n")
	inner := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > inner {
			inner = w
		}
	}
	inner += 2 // one padding column each side

	border := strings.Repeat(b.cfg.ruleChar, inner+2)
	var sb strings.Builder
	sb.WriteString(border)
	for _, line := range lines {
		sb.WriteString("\n| ")
		sb.WriteString(runewidth.FillRight(line, inner-2))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	sb.WriteString(border)
	return sb.String()
}

func (b *Box) String() string { return b.Render() }
