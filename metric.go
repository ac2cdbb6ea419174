package report

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Metric is one named scalar value.
type Metric struct {
	Name  string
	Value any
}

// MetricBlock renders named scalar values as aligned "name : value" lines,
// optionally under a title centered over rule lines of fixed width.
type MetricBlock struct {
	cfg     config
	metrics []Metric
	index   map[string]int
}

// NewMetricBlock builds a metric block from v, which must be one of:
//
//   - []Metric — kept in order
//   - a map with string keys — entries sorted by key for determinism
//   - a struct (or pointer to struct) — exported fields in declaration order
//
// Anything else fails with [ErrInvalidType]. Metric names whose canonical
// identifiers collide fail with [ErrAmbiguousAttribute].
func NewMetricBlock(v any, opts ...Option) (*MetricBlock, error) {
	metrics, err := normalizeMetrics(v)
	if err != nil {
		return nil, err
	}
	index, err := indexMetrics(metrics)
	if err != nil {
		return nil, err
	}
	return &MetricBlock{
		cfg:     defaultConfig().apply(opts),
		metrics: metrics,
		index:   index,
	}, nil
}

// Title returns the configured title, or "".
func (m *MetricBlock) Title() string { return m.cfg.title }

// Names returns the original metric names in render order.
func (m *MetricBlock) Names() []string {
	names := make([]string, len(m.metrics))
	for i, mt := range m.metrics {
		names[i] = mt.Name
	}
	return names
}

// Metric returns the original value of the metric whose name canonicalizes
// to the same identifier as name.
func (m *MetricBlock) Metric(name string) (any, bool) {
	i, ok := m.index[Canonical(name)]
	if !ok {
		return nil, false
	}
	return m.metrics[i].Value, true
}

// Render returns the block as fixed-width text.
func (m *MetricBlock) Render() string {
	rule := strings.Repeat(m.cfg.ruleChar, m.cfg.ruleWidth)
	var b strings.Builder
	if m.cfg.title != "" {
		b.WriteString(centerText(m.cfg.title, m.cfg.ruleWidth))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(rule)
	return b.String()
}

func (m *MetricBlock) String() string { return m.Render() }

func (m *MetricBlock) body() string {
	if len(m.metrics) == 0 {
		return SentinelEmpty
	}
	return strings.Join(metricLines(m.metrics, m.cfg.decimals), "\n")
}

// metricLines renders metrics as "name : value" with names padded to the
// longest name.
func metricLines(metrics []Metric, decimals int) []string {
	nameWidth := 0
	for _, mt := range metrics {
		if w := runewidth.StringWidth(mt.Name); w > nameWidth {
			nameWidth = w
		}
	}
	lines := make([]string, len(metrics))
	for i, mt := range metrics {
		lines[i] = fmt.Sprintf("%s : %s",
			runewidth.FillRight(mt.Name, nameWidth),
			formatValue(mt.Value, decimals))
	}
	return lines
}

// normalizeMetrics converts the accepted input shapes into an ordered
// []Metric. See [NewMetricBlock].
func normalizeMetrics(v any) ([]Metric, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: metrics require a mapping, struct, or []Metric, got nil", ErrInvalidType)
	case []Metric:
		out := make([]Metric, len(x))
		copy(out, x)
		return out, nil
	case map[string]any:
		return mapMetrics(x), nil
	case map[string]float64:
		return mapMetrics(x), nil
	case map[string]int:
		return mapMetrics(x), nil
	case map[string]string:
		return mapMetrics(x), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		out := make([]Metric, len(keys))
		for i, k := range keys {
			out[i] = Metric{Name: k, Value: rv.MapIndex(reflect.ValueOf(k)).Interface()}
		}
		return out, nil
	case reflect.Struct:
		var out []Metric
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			out = append(out, Metric{Name: field.Name, Value: rv.Field(i).Interface()})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: metrics require a mapping, struct, or []Metric, got %T", ErrInvalidType, v)
}

func mapMetrics[V any](m map[string]V) []Metric {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Metric, len(keys))
	for i, k := range keys {
		out[i] = Metric{Name: k, Value: m[k]}
	}
	return out
}

func indexMetrics(metrics []Metric) (map[string]int, error) {
	index := make(map[string]int, len(metrics))
	for i, mt := range metrics {
		id := Canonical(mt.Name)
		if prev, ok := index[id]; ok {
			return nil, fmt.Errorf("%w: %q and %q both canonicalize to %q",
				ErrAmbiguousAttribute, metrics[prev].Name, mt.Name, id)
		}
		index[id] = i
	}
	return index, nil
}
