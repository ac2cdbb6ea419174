package report

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Canonical section titles produced by [Report] operations.
const (
	SectionDataSummary      = "Data Summary"
	SectionBasicStatistics  = "Basic Statistics"
	SectionUniqueCounts     = "Unique Counts"
	SectionCorrelation      = "Correlation Matrix"
	SectionModelSummary     = "Model Summary"
	SectionModelPerformance = "Model Performance"
	SectionMixedTypes       = "Mixed Types Summary"
	SectionRecommendations  = "Recommendations"
)

// Analyzer is the external analytics collaborator a [Report] delegates
// numeric description to. Implementations compute whatever summary metrics
// they like for a frame; the report only renders the result.
type Analyzer interface {
	Describe(f *Frame) []Metric
}

// MetricsFunc adapts a plain function to [Analyzer].
type MetricsFunc func(f *Frame) []Metric

func (fn MetricsFunc) Describe(f *Frame) []Metric { return fn(f) }

// defaultAnalyzer reports only row and column counts. Real statistics come
// from an injected collaborator; see [WithAnalyzer].
type defaultAnalyzer struct{}

func (defaultAnalyzer) Describe(f *Frame) []Metric {
	return []Metric{
		{Name: "rows", Value: f.NumRows()},
		{Name: "columns", Value: f.NumCols()},
	}
}

// Recommendation is one keyed free-text recommendation.
type Recommendation struct {
	Key  string
	Text string
}

type section struct {
	title string
	body  string
}

// Report assembles ordered named sections into one textual document. Each
// content-producing call makes its section present, or replaces the prior
// block when called again; sections keep their first-insertion order and
// are never removed.
type Report struct {
	cfg        config
	order      []string
	sections   map[string]section
	mixedKinds []string
}

// NewReport returns an empty report.
func NewReport(opts ...Option) *Report {
	return &Report{
		cfg:      defaultConfig().apply(opts),
		sections: map[string]section{},
	}
}

func (r *Report) setSection(title, body string) {
	if _, ok := r.sections[title]; !ok {
		r.order = append(r.order, title)
	}
	r.sections[title] = section{title: title, body: body}
}

// DataSummary adds a sample-data section showing the frame's leading rows.
// An empty frame renders the sentinel body.
func (r *Report) DataSummary(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidType)
	}
	if f.Empty() {
		r.setSection(SectionDataSummary, SentinelNoData)
		return nil
	}
	r.setSection(SectionDataSummary, renderFrameTable(f.Head(r.cfg.sampleRows), "", r.cfg))
	return nil
}

// BasicStatistics adds a metric section with the analyzer's description of
// the frame. Numeric computation belongs to the collaborator configured
// through [WithAnalyzer]; the default reports row and column counts only.
func (r *Report) BasicStatistics(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidType)
	}
	if f.Empty() {
		r.setSection(SectionBasicStatistics, SentinelNoData)
		return nil
	}
	metrics := r.cfg.analyzer.Describe(f)
	r.setSection(SectionBasicStatistics, metricsBody(metrics, r.cfg))
	return nil
}

// UniqueCounts adds a metric section counting distinct values in every
// non-numeric column. Counting is a single pass per column; first-seen
// order decides ties, and column order follows the frame.
func (r *Report) UniqueCounts(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidType)
	}
	if f.Empty() {
		r.setSection(SectionUniqueCounts, SentinelNoData)
		return nil
	}
	var metrics []Metric
	for _, col := range f.cols {
		numeric := true
		for _, v := range col.Values {
			if !isNumeric(v) {
				numeric = false
				break
			}
		}
		if numeric {
			continue
		}
		seen := map[string]struct{}{}
		for _, v := range col.Values {
			seen[formatValue(v, r.cfg.decimals)] = struct{}{}
		}
		metrics = append(metrics, Metric{Name: col.Name, Value: len(seen)})
	}
	r.setSection(SectionUniqueCounts, metricsBody(metrics, r.cfg))
	return nil
}

// CorrelationMatrix adds a table section rendering an externally computed
// square correlation frame. The report does not compute correlations.
func (r *Report) CorrelationMatrix(f *Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidType)
	}
	if f.Empty() {
		r.setSection(SectionCorrelation, SentinelNoData)
		return nil
	}
	r.setSection(SectionCorrelation, renderFrameTable(f, "", r.cfg))
	return nil
}

// ModelSummary adds a metric section from model results: a mapping, a
// struct exposing named fields, or []Metric. Anything else fails with
// [ErrInvalidType] and leaves the report unchanged.
func (r *Report) ModelSummary(results any) error {
	metrics, err := normalizeMetrics(results)
	if err != nil {
		return err
	}
	r.setSection(SectionModelSummary, metricsBody(metrics, r.cfg))
	return nil
}

// ModelPerformanceSummary is [Report.ModelSummary] under the model
// performance section title.
func (r *Report) ModelPerformanceSummary(results any) error {
	metrics, err := normalizeMetrics(results)
	if err != nil {
		return err
	}
	r.setSection(SectionModelPerformance, metricsBody(metrics, r.cfg))
	return nil
}

// MixedTypesSummary adds a section for a mapping whose values may be
// heterogeneous. Scalars render inline; sequences and nested mappings
// render as indented blocks. The distinct value kinds observed are
// retrievable through [Report.MixedKinds].
func (r *Report) MixedTypesSummary(data any) error {
	entries, err := normalizeMetrics(data)
	if err != nil {
		return err
	}

	kinds := map[string]struct{}{}
	nameWidth := 0
	for _, e := range entries {
		kinds[kindOf(e.Value)] = struct{}{}
		if w := runewidth.StringWidth(e.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var lines []string
	for _, e := range entries {
		name := runewidth.FillRight(e.Name, nameWidth)
		if isScalar(e.Value) {
			lines = append(lines, fmt.Sprintf("%s : %s", name, formatValue(e.Value, r.cfg.decimals)))
			continue
		}
		lines = append(lines, name+" :")
		lines = append(lines, indentYAML(e.Value)...)
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = SentinelEmpty
	}
	r.setSection(SectionMixedTypes, body)

	r.mixedKinds = r.mixedKinds[:0]
	for k := range kinds {
		r.mixedKinds = append(r.mixedKinds, k)
	}
	sort.Strings(r.mixedKinds)
	return nil
}

// MixedKinds returns the sorted distinct value kinds observed by the most
// recent [Report.MixedTypesSummary] call.
func (r *Report) MixedKinds() []string {
	out := make([]string, len(r.mixedKinds))
	copy(out, r.mixedKinds)
	return out
}

// indentYAML renders a non-scalar value as an indented nested block.
func indentYAML(v any) []string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return []string{"    " + fmt.Sprintf("%v", v)}
	}
	raw := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = "    " + line
	}
	return out
}

// AddRecommendations adds a recommendations section. recs may be a string,
// a []string, a string-keyed mapping, or []Recommendation. For non-mapped
// input, keys supplies the labels; missing keys default to Key1, Key2, ...
// in input order. Each entry wraps through [WrapText].
func (r *Report) AddRecommendations(recs any, keys ...string) error {
	entries, err := normalizeRecommendations(recs, keys)
	if err != nil {
		return err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = WrapText(e.Text, e.Key,
			WithKeyLength(r.cfg.keyLength), WithWrapWidth(r.cfg.wrapWidth))
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = SentinelEmpty
	}
	r.setSection(SectionRecommendations, body)
	return nil
}

func normalizeRecommendations(recs any, keys []string) ([]Recommendation, error) {
	var texts []string
	switch x := recs.(type) {
	case nil:
		return nil, fmt.Errorf("%w: recommendations require a string, []string, mapping, or []Recommendation, got nil", ErrInvalidType)
	case string:
		texts = []string{x}
	case []string:
		texts = append(texts, x...)
	case []Recommendation:
		if len(keys) > 0 {
			return nil, fmt.Errorf("%w: keys are redundant for []Recommendation", ErrInvalidType)
		}
		out := make([]Recommendation, len(x))
		copy(out, x)
		return out, nil
	default:
		rv := reflect.ValueOf(recs)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: recommendations require a string, []string, mapping, or []Recommendation, got %T", ErrInvalidType, recs)
		}
		if len(keys) > 0 {
			return nil, fmt.Errorf("%w: keys are redundant for a mapping", ErrInvalidType)
		}
		mapKeys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			mapKeys = append(mapKeys, k.String())
		}
		sort.Strings(mapKeys)
		out := make([]Recommendation, len(mapKeys))
		for i, k := range mapKeys {
			out[i] = Recommendation{Key: k, Text: coerceText(rv.MapIndex(reflect.ValueOf(k)).Interface())}
		}
		return out, nil
	}

	if len(keys) > 0 && len(keys) != len(texts) {
		return nil, fmt.Errorf("%w: %d keys for %d recommendations", ErrInvalidType, len(keys), len(texts))
	}
	out := make([]Recommendation, len(texts))
	for i, t := range texts {
		key := fmt.Sprintf("Key%d", i+1)
		if len(keys) > 0 {
			key = keys[i]
		}
		out[i] = Recommendation{Key: key, Text: t}
	}
	return out, nil
}

// Sections returns the present section titles in insertion order.
func (r *Report) Sections() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// HasSection reports whether a section with the given title is present.
func (r *Report) HasSection(title string) bool {
	_, ok := r.sections[title]
	return ok
}

// MissingSections returns the expected titles that are not present, in the
// order given.
func (r *Report) MissingSections(expected []string) []string {
	var missing []string
	for _, title := range expected {
		if !r.HasSection(title) {
			missing = append(missing, title)
		}
	}
	return missing
}

// RequireSections fails with [ErrMissingSection] unless every expected
// section is present.
func (r *Report) RequireSections(expected ...string) error {
	if missing := r.MissingSections(expected); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSection, strings.Join(missing, ", "))
	}
	return nil
}

// Render returns all sections in insertion order. Each section renders as
// its title centered over a rule line sized to the block, the body, and a
// closing dash rule. An empty report renders the sentinel body.
func (r *Report) Render() string {
	if len(r.order) == 0 {
		if r.cfg.title != "" {
			return r.cfg.title + "\n" + SentinelEmpty
		}
		return SentinelEmpty
	}
	blocks := make([]string, len(r.order))
	for i, title := range r.order {
		s := r.sections[title]
		blocks[i] = renderSection(s.title, s.body, r.cfg)
	}
	out := strings.Join(blocks, "\n\n")
	if r.cfg.title != "" {
		width := blockWidth(out)
		return centerText(r.cfg.title, width) + "\n\n" + out
	}
	return out
}

func (r *Report) String() string { return r.Render() }

// renderSection frames a body with a centered title over a rule of the
// block's width and closes with a dash rule.
func renderSection(title, body string, cfg config) string {
	width := blockWidth(body)
	if w := runewidth.StringWidth(title); w > width {
		width = w
	}
	var b strings.Builder
	b.WriteString(centerText(title, width))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(cfg.ruleChar, width))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width))
	return b.String()
}

// metricsBody renders metric lines without their own rule framing; the
// section supplies the frame.
func metricsBody(metrics []Metric, cfg config) string {
	if len(metrics) == 0 {
		return SentinelEmpty
	}
	return strings.Join(metricLines(metrics, cfg.decimals), "\n")
}

// blockWidth is the display width of the widest line in a block.
func blockWidth(block string) int {
	width := 0
	for _, line := range strings.Split(block, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
