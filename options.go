package tempus

// Option adjusts pattern construction. Options that do not apply to the
// pattern type being built are ignored.
type Option func(*patternOptions)

type patternOptions struct {
	culture      *Culture
	zones        ZoneProvider
	resolver     Resolver
	templateDate LocalDate
	templateTime LocalTime
	templateZone Zone
	minLabel     string
	maxLabel     string
}

func resolveOptions(opts []Option) patternOptions {
	o := patternOptions{
		culture:      InvariantCulture,
		resolver:     StrictResolver,
		templateDate: MustLocalDate(2000, 1, 1),
		templateTime: Midnight,
		templateZone: NewFixedZone("UTC", ZeroOffset),
		minLabel:     "MinInstant",
		maxLabel:     "MaxInstant",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCulture selects the culture whose separators, names and standard
// patterns the pattern compiles against. The default is InvariantCulture.
func WithCulture(c *Culture) Option {
	return func(o *patternOptions) { o.culture = c }
}

// WithTemplateDate supplies the date fields a parse leaves unspecified.
// The default template date is 2000-01-01.
func WithTemplateDate(d LocalDate) Option {
	return func(o *patternOptions) { o.templateDate = d }
}

// WithTemplateTime supplies the time fields a parse leaves unspecified.
// The default template time is midnight.
func WithTemplateTime(t LocalTime) Option {
	return func(o *patternOptions) { o.templateTime = t }
}

// WithTemplateZone supplies the zone used when a zoned pattern has no zone
// specifier. The default is a fixed UTC zone.
func WithTemplateZone(z Zone) Option {
	return func(o *patternOptions) { o.templateZone = z }
}

// WithZoneProvider supplies the live zone lookup a zoned pattern parses
// zone identifiers through. Zone data stays a per-pattern dependency and
// can differ between patterns compiled from the same text.
func WithZoneProvider(p ZoneProvider) Option {
	return func(o *patternOptions) { o.zones = p }
}

// WithResolver selects how ambiguous and skipped local times map to zoned
// values. The default is StrictResolver.
func WithResolver(r Resolver) Option {
	return func(o *patternOptions) { o.resolver = r }
}

// WithMinMaxLabels sets the texts substituted for instants outside the
// representable calendar range.
func WithMinMaxLabels(minLabel, maxLabel string) Option {
	return func(o *patternOptions) {
		o.minLabel = minLabel
		o.maxLabel = maxLabel
	}
}
