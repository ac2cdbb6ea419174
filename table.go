package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// frameLayout holds the formatted cells and computed geometry for one frame.
// Widths are stable for the lifetime of one render call.
type frameLayout struct {
	headers []string
	cells   [][]string // cells[row][col]
	widths  []int
	aligns  []alignment
}

// layoutFrame formats every cell of f and computes per-column widths:
// width = max(header length, max formatted-cell length). Cells wider than
// the cell-width limit are truncated with "..." first, which caps the
// column width. Numeric columns align right, text columns align left.
func layoutFrame(f *Frame, cfg config) frameLayout {
	l := frameLayout{
		headers: f.Names(),
		cells:   make([][]string, f.NumRows()),
		widths:  make([]int, f.NumCols()),
		aligns:  make([]alignment, f.NumCols()),
	}
	for i := range l.cells {
		l.cells[i] = make([]string, f.NumCols())
	}
	for c, col := range f.cols {
		l.widths[c] = runewidth.StringWidth(col.Name)
		l.aligns[c] = alignRight
		for _, v := range col.Values {
			if !isNumeric(v) {
				l.aligns[c] = alignLeft
				break
			}
		}
		for r, v := range col.Values {
			cell := truncateCell(formatValue(v, cfg.decimals), cfg.maxCellWidth)
			if w := runewidth.StringWidth(cell); w > l.widths[c] {
				l.widths[c] = w
			}
			l.cells[r][c] = cell
		}
	}
	return l
}

// totalWidth is the rendered line width: column widths plus gaps.
func totalWidth(widths []int, gap int) int {
	n := 0
	for _, w := range widths {
		n += w
	}
	if len(widths) > 1 {
		n += gap * (len(widths) - 1)
	}
	return n
}

// renderLayout emits the header row, a dash separator row, and the body
// rows, padding every cell to its column width. Widths may be wider than
// the layout's own (shared multi-frame computation).
func renderLayout(l frameLayout, widths []int, cfg config) []string {
	gap := strings.Repeat(" ", cfg.columnGap)

	header := make([]string, len(widths))
	sep := make([]string, len(widths))
	for c, w := range widths {
		header[c] = alignCell(l.headers[c], w, alignCenter)
		sep[c] = strings.Repeat("-", w)
	}
	lines := []string{
		strings.TrimRight(strings.Join(header, gap), " "),
		strings.Join(sep, gap),
	}
	for _, row := range l.cells {
		padded := make([]string, len(widths))
		for c, w := range widths {
			padded[c] = alignCell(row[c], w, l.aligns[c])
		}
		lines = append(lines, strings.TrimRight(strings.Join(padded, gap), " "))
	}
	return lines
}

// renderFrameTable renders one frame as a bordered fixed-width table with an
// optional centered title. Empty frames render the sentinel body instead of
// header and separator.
func renderFrameTable(f *Frame, title string, cfg config) string {
	if f == nil || f.Empty() {
		if title != "" {
			return title + "\n" + SentinelNoData
		}
		return SentinelNoData
	}
	l := layoutFrame(f, cfg)
	width := totalWidth(l.widths, cfg.columnGap)
	rule := strings.Repeat(cfg.ruleChar, width)

	var b strings.Builder
	if title != "" {
		b.WriteString(centerText(title, width))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(strings.Join(renderLayout(l, l.widths, cfg), "\n"))
	b.WriteString("\n")
	b.WriteString(rule)
	return b.String()
}

// FrameFormatter renders one [Frame] as an aligned fixed-width table and
// exposes its columns through canonical-name lookup.
type FrameFormatter struct {
	cfg   config
	frame *Frame
	index map[string]int
	err   error
}

// NewFrameFormatter returns an empty formatter. Populate it with [FrameFormatter.AddFrame].
func NewFrameFormatter(opts ...Option) *FrameFormatter {
	return &FrameFormatter{cfg: defaultConfig().apply(opts)}
}

// AddFrame replaces any previously held frame and rebuilds the column
// lookup index. Invalid input (nil frame, or column names whose canonical
// identifiers collide) leaves the formatter's state unchanged and records
// the failure, retrievable through [FrameFormatter.Err].
func (ff *FrameFormatter) AddFrame(f *Frame) *FrameFormatter {
	if f == nil {
		ff.err = fmt.Errorf("%w: nil frame", ErrInvalidType)
		return ff
	}
	index := make(map[string]int, f.NumCols())
	for i, name := range f.Names() {
		id := Canonical(name)
		if prev, ok := index[id]; ok {
			ff.err = fmt.Errorf("%w: columns %q and %q both canonicalize to %q",
				ErrAmbiguousAttribute, f.Names()[prev], name, id)
			return ff
		}
		index[id] = i
	}
	ff.frame = f
	ff.index = index
	ff.err = nil
	return ff
}

// Err returns the failure recorded by the most recent [FrameFormatter.AddFrame], if any.
func (ff *FrameFormatter) Err() error { return ff.err }

// Frame returns the held frame, or nil.
func (ff *FrameFormatter) Frame() *Frame { return ff.frame }

// Names returns the held frame's column names in order.
func (ff *FrameFormatter) Names() []string { return ff.frame.Names() }

// Column returns the original (unformatted) values of the column whose name
// canonicalizes to the same identifier as name.
func (ff *FrameFormatter) Column(name string) ([]any, bool) {
	if ff.frame == nil {
		return nil, false
	}
	i, ok := ff.index[Canonical(name)]
	if !ok {
		return nil, false
	}
	vals := make([]any, ff.frame.NumRows())
	copy(vals, ff.frame.cols[i].Values)
	return vals, true
}

// Render returns the table as fixed-width text. An empty or absent frame
// renders the sentinel body.
func (ff *FrameFormatter) Render() string {
	return renderFrameTable(ff.frame, ff.cfg.title, ff.cfg)
}

func (ff *FrameFormatter) String() string { return ff.Render() }

// truncateCell caps a formatted cell at max display columns, marking the
// cut with "...". Truncation is presentation-only; lookup still returns the
// original values.
func truncateCell(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}

// alignCell pads s to width with spaces according to the alignment.
// Adapted to display-width semantics so wide runes count correctly.
func alignCell(s string, width int, a alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch a {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// centerText centers s over width for title lines, trimming the trailing
// pad so titles never carry invisible whitespace.
func centerText(s string, width int) string {
	return strings.TrimRight(alignCell(s, width, alignCenter), " ")
}
