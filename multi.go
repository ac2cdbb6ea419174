package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Strategy is the layout algorithm a [MultiFrameFormatter] chooses from its
// frames' column sets.
type Strategy int

const (
	// StrategySameColumns stacks frames over one shared column-width
	// computation so columns align visually across blocks. Chosen when
	// every frame has an identical ordered column-name set.
	StrategySameColumns Strategy = iota
	// StrategyDifferentColumns lays every frame out independently.
	StrategyDifferentColumns
)

func (s Strategy) String() string {
	if s == StrategySameColumns {
		return "same_columns"
	}
	return "different_columns"
}

type framed struct {
	frame   *Frame
	keyword string // "" when unkeyed
}

type colRef struct {
	frame, col int
}

// MultiFrameFormatter holds an ordered collection of frames with optional
// keywords, renders them as stacked sub-titled blocks, and synthesizes
// collision-free cross-frame column lookup names.
type MultiFrameFormatter struct {
	cfg    config
	frames []framed
	index  map[string]colRef
}

// NewMultiFrameFormatter returns an empty formatter. Populate it with
// [MultiFrameFormatter.AddFrames] or [MultiFrameFormatter.AddFramesKeyed].
func NewMultiFrameFormatter(opts ...Option) *MultiFrameFormatter {
	return &MultiFrameFormatter{
		cfg:   defaultConfig().apply(opts),
		index: map[string]colRef{},
	}
}

// AddFrames appends frames without keywords. A column name that would
// collide with one already held fails with [ErrAmbiguousAttribute] and
// leaves the formatter unchanged; supply keywords through
// [MultiFrameFormatter.AddFramesKeyed] to disambiguate.
func (m *MultiFrameFormatter) AddFrames(frames ...*Frame) error {
	return m.add(frames, nil)
}

// AddFramesKeyed appends frames with one keyword per frame. Every column
// registers the lookup name <canonical(column)>_<canonical(keyword)>; the
// bare column name stays registered while it is unambiguous. A keyword
// count that does not match the frame count fails with [ErrInvalidType].
func (m *MultiFrameFormatter) AddFramesKeyed(frames []*Frame, keywords []string) error {
	if len(keywords) != len(frames) {
		return fmt.Errorf("%w: %d keywords for %d frames", ErrInvalidType, len(keywords), len(frames))
	}
	return m.add(frames, keywords)
}

func (m *MultiFrameFormatter) add(frames []*Frame, keywords []string) error {
	for _, f := range frames {
		if f == nil {
			return fmt.Errorf("%w: nil frame", ErrInvalidType)
		}
	}

	next := make([]framed, len(m.frames), len(m.frames)+len(frames))
	copy(next, m.frames)
	for i, f := range frames {
		kw := ""
		if keywords != nil {
			kw = keywords[i]
		}
		next = append(next, framed{frame: f, keyword: kw})
	}

	index, err := buildMultiIndex(next)
	if err != nil {
		return err
	}
	m.frames = next
	m.index = index
	return nil
}

// buildMultiIndex synthesizes the lookup-name index for the full frame
// collection. Keyed columns register <col>_<keyword> and keep the bare
// column name while unique; unkeyed duplicates are ambiguous. Every
// insertion is collision-checked so a synthesized keyed name can never
// shadow, or be shadowed by, a literal column name.
func buildMultiIndex(frames []framed) (map[string]colRef, error) {
	// Count canonical column names across all frames first.
	seen := map[string]int{}
	for _, fr := range frames {
		for _, name := range fr.frame.Names() {
			seen[Canonical(name)]++
		}
	}

	index := map[string]colRef{}
	insert := func(name string, ref colRef) error {
		if _, ok := index[name]; ok {
			return fmt.Errorf("%w: %q occurs more than once", ErrAmbiguousAttribute, name)
		}
		index[name] = ref
		return nil
	}
	for fi, fr := range frames {
		for ci, name := range fr.frame.Names() {
			base := Canonical(name)
			ref := colRef{frame: fi, col: ci}
			if fr.keyword != "" {
				if err := insert(base+"_"+Canonical(fr.keyword), ref); err != nil {
					return nil, err
				}
				if seen[base] == 1 {
					if err := insert(base, ref); err != nil {
						return nil, err
					}
				}
				continue
			}
			if seen[base] > 1 {
				return nil, fmt.Errorf("%w: column %q occurs in multiple frames; supply keywords to disambiguate",
					ErrAmbiguousAttribute, name)
			}
			if err := insert(base, ref); err != nil {
				return nil, err
			}
		}
	}
	return index, nil
}

// Strategy returns the composition strategy selected from the held frames'
// column sets.
func (m *MultiFrameFormatter) Strategy() Strategy {
	frames := make([]*Frame, len(m.frames))
	for i, fr := range m.frames {
		frames[i] = fr.frame
	}
	if sameColumnSet(frames) {
		return StrategySameColumns
	}
	return StrategyDifferentColumns
}

// NumFrames returns the number of held frames.
func (m *MultiFrameFormatter) NumFrames() int { return len(m.frames) }

// Contains reports whether an equal frame (by full contents, not identity)
// is held.
func (m *MultiFrameFormatter) Contains(f *Frame) bool {
	for _, fr := range m.frames {
		if fr.frame.Equal(f) {
			return true
		}
	}
	return false
}

// Names returns every synthesized lookup name, sorted.
func (m *MultiFrameFormatter) Names() []string {
	names := make([]string, 0, len(m.index))
	for name := range m.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Column returns the original values behind a synthesized lookup name.
func (m *MultiFrameFormatter) Column(name string) ([]any, bool) {
	ref, ok := m.index[Canonical(name)]
	if !ok {
		return nil, false
	}
	col := m.frames[ref.frame].frame.cols[ref.col]
	vals := make([]any, len(col.Values))
	copy(vals, col.Values)
	return vals, true
}

// subTitle returns the block heading for frame i: its keyword when given,
// otherwise "DataFrame i".
func (m *MultiFrameFormatter) subTitle(i int) string {
	if kw := m.frames[i].keyword; kw != "" {
		return kw
	}
	return "DataFrame " + strconv.Itoa(i)
}

// Render returns all frames as stacked blocks, each preceded by its
// sub-title and separated from the next by one blank line. Under
// [StrategySameColumns] one shared width computation aligns columns across
// blocks; otherwise every frame computes its own layout.
func (m *MultiFrameFormatter) Render() string {
	if len(m.frames) == 0 {
		return SentinelNoData
	}

	var shared []int
	if m.Strategy() == StrategySameColumns {
		for _, fr := range m.frames {
			l := layoutFrame(fr.frame, m.cfg)
			if shared == nil {
				shared = l.widths
				continue
			}
			for c, w := range l.widths {
				if w > shared[c] {
					shared[c] = w
				}
			}
		}
	}

	blocks := make([]string, len(m.frames))
	for i, fr := range m.frames {
		blocks[i] = m.renderBlock(fr.frame, m.subTitle(i), shared)
	}
	out := strings.Join(blocks, "\n\n")
	if m.cfg.title != "" {
		return centerText(m.cfg.title, blockWidth(out)) + "\n\n" + out
	}
	return out
}

func (m *MultiFrameFormatter) renderBlock(f *Frame, title string, shared []int) string {
	if f.Empty() {
		return title + "\n" + SentinelNoData
	}
	l := layoutFrame(f, m.cfg)
	widths := l.widths
	if shared != nil {
		widths = shared
	}
	width := totalWidth(widths, m.cfg.columnGap)
	rule := strings.Repeat(m.cfg.ruleChar, width)

	var b strings.Builder
	b.WriteString(centerText(title, width))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(strings.Join(renderLayout(l, widths, m.cfg), "\n"))
	b.WriteString("\n")
	b.WriteString(rule)
	return b.String()
}

func (m *MultiFrameFormatter) String() string { return m.Render() }
