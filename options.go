package report

// Rendering defaults. Every one of them can be overridden per formatter
// through an Option.
const (
	DefaultDecimals     = 4
	DefaultRuleWidth    = 50
	DefaultColumnGap    = 2
	DefaultKeyLength    = 15
	DefaultWrapWidth    = 70
	DefaultSampleRows   = 5
	DefaultMaxCellWidth = 50
)

type config struct {
	title        string
	ruleChar     string
	ruleWidth    int
	decimals     int
	columnGap    int
	keyLength    int
	wrapWidth    int
	sampleRows   int
	maxCellWidth int
	analyzer     Analyzer
}

func defaultConfig() config {
	return config{
		ruleChar:     "=",
		ruleWidth:    DefaultRuleWidth,
		decimals:     DefaultDecimals,
		columnGap:    DefaultColumnGap,
		keyLength:    DefaultKeyLength,
		wrapWidth:    DefaultWrapWidth,
		sampleRows:   DefaultSampleRows,
		maxCellWidth: DefaultMaxCellWidth,
		analyzer:     defaultAnalyzer{},
	}
}

func (c config) apply(opts []Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option adjusts a formatter's rendering configuration.
type Option func(*config)

// WithTitle sets the title rendered above the formatter's content.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithRuleChar sets the character used for rule and border lines.
func WithRuleChar(r rune) Option {
	return func(c *config) { c.ruleChar = string(r) }
}

// WithRuleWidth sets the width of metric-block rule lines.
func WithRuleWidth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.ruleWidth = n
		}
	}
}

// WithDecimals sets the number of decimal places for non-integral floats.
func WithDecimals(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.decimals = n
		}
	}
}

// WithColumnGap sets the number of spaces between table columns.
func WithColumnGap(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.columnGap = n
		}
	}
}

// WithKeyLength sets the width of the key column for wrapped key/value text.
func WithKeyLength(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.keyLength = n
		}
	}
}

// WithWrapWidth sets the maximum characters per wrapped text line.
func WithWrapWidth(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.wrapWidth = n
		}
	}
}

// WithMaxCellWidth sets the maximum rendered width of a table cell before
// truncation with "...". A value below 1 removes the limit.
func WithMaxCellWidth(n int) Option {
	return func(c *config) { c.maxCellWidth = n }
}

// WithSampleRows sets how many leading rows a data-summary section shows.
func WithSampleRows(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.sampleRows = n
		}
	}
}

// WithAnalyzer sets the collaborator a [Report] delegates numeric
// description to. See [Analyzer].
func WithAnalyzer(a Analyzer) Option {
	return func(c *config) {
		if a != nil {
			c.analyzer = a
		}
	}
}
