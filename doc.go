// Package report renders tabular and scalar analytical results as
// fixed-width, human-readable text suitable for consoles and logs.
//
// The building blocks are a small set of formatters sharing one contract,
// [Renderer]:
//
//   - [MetricBlock] — named scalar values as aligned "name : value" lines
//     under an optional centered title framed by rule lines
//   - [Box] — a single message surrounded by a border
//   - [Description] — free text wrapped to a fixed column width
//   - [FrameFormatter] — one [Frame] as an aligned table with a header row,
//     separator, and per-type column alignment
//   - [MultiFrameFormatter] — several frames stacked under sub-titles, with
//     a layout strategy chosen from their column sets
//   - [Report] — ordered named sections (data summary, basic statistics,
//     unique counts, model summary, recommendations, ...) assembled into
//     one document
//
// Every formatter renders with Render (or String) and can be written to an
// [io.Writer] with [Write]:
//
//	mb, _ := report.NewMetricBlock(map[string]any{"accuracy": 0.95})
//	report.Write(os.Stdout, mb)
//
// # Frames
//
// A [Frame] is an ordered table of named columns with equal-length value
// sequences. Formatters never mutate a frame passed to them; column values
// remain reachable in their original, unformatted form through name lookup:
//
//	ff := report.NewFrameFormatter().AddFrame(frame)
//	vals, _ := ff.Column("sepal_length")
//
// # Name canonicalization
//
// Column and metric names become lookup identifiers through [Canonical]:
// lowercase, every run of non-alphanumeric characters collapsed to a single
// underscore, leading and trailing underscores trimmed. The transform is
// deterministic and idempotent and is part of the public contract. When the
// same column name occurs in several frames of a composition, keywords
// disambiguate ("A" in frames keyed "first" and "second" is reachable as
// a_first and a_second).
//
// # Empty input
//
// An empty frame or mapping is valid input. Rendering substitutes a sentinel
// block ("No data") instead of failing; only malformed input is an error.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidType] — an input's shape does not match the documented
//     contract (non-mapping metrics, mismatched column lengths, ...)
//   - [ErrAmbiguousAttribute] — multi-frame name synthesis would collide
//     without a disambiguating keyword
//   - [ErrMissingSection] — a completeness query found an expected report
//     section absent
//
// Malformed input fails at the mutating call; rendering valid state never
// fails and is byte-for-byte reproducible.
package report
