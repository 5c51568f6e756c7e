package tempus

import "sort"

// Zone is the narrow view of a time zone the pattern engine needs: an
// identifier and the ability to classify a local wall clock reading. Zone
// databases and transition rules live outside this module.
type Zone interface {
	ID() string
	MapLocal(dt LocalDateTime) ZoneLocalMapping
}

// ZoneLocalMapping classifies a local date-time within a zone: Count is 1
// when the reading happens exactly once, 2 when a backward transition makes
// it ambiguous, and 0 when a forward transition skips it. Early and Late
// are the candidate offsets; for a skipped reading they are the offsets on
// either side of the gap.
type ZoneLocalMapping struct {
	Zone  Zone
	Local LocalDateTime
	Count int
	Early Offset
	Late  Offset
}

// Resolver turns a local mapping into a fully zoned value, or rejects it.
type Resolver func(m ZoneLocalMapping) (ZonedDateTime, *ParseError)

// StrictResolver accepts only unambiguous readings.
func StrictResolver(m ZoneLocalMapping) (ZonedDateTime, *ParseError) {
	switch m.Count {
	case 1:
		return ZonedDateTime{local: m.Local, zone: m.Zone, offset: m.Early}, nil
	case 0:
		return ZonedDateTime{}, parseErrf(CodeSkippedLocalTime,
			"local time %s is skipped in zone %s", m.Local, m.Zone.ID())
	default:
		return ZonedDateTime{}, parseErrf(CodeAmbiguousLocalTime,
			"local time %s is ambiguous in zone %s", m.Local, m.Zone.ID())
	}
}

// LenientResolver maps ambiguous readings to the earlier offset and skipped
// readings forward past the gap, to the start of the later interval.
func LenientResolver(m ZoneLocalMapping) (ZonedDateTime, *ParseError) {
	if m.Count == 0 {
		gap := int64(m.Late.Seconds()-m.Early.Seconds()) * 1e9
		return ZonedDateTime{local: m.Local.addNanos(gap), zone: m.Zone, offset: m.Late}, nil
	}
	return ZonedDateTime{local: m.Local, zone: m.Zone, offset: m.Early}, nil
}

// FixedZone is a zone with a single constant offset.
type FixedZone struct {
	id     string
	offset Offset
}

// NewFixedZone builds a constant-offset zone.
func NewFixedZone(id string, offset Offset) *FixedZone {
	return &FixedZone{id: id, offset: offset}
}

func (z *FixedZone) ID() string { return z.id }

func (z *FixedZone) MapLocal(dt LocalDateTime) ZoneLocalMapping {
	return ZoneLocalMapping{Zone: z, Local: dt, Count: 1, Early: z.offset, Late: z.offset}
}

// SingleTransitionZone is a zone with exactly one offset transition. It is
// enough to produce ambiguous and skipped local readings, which makes it
// useful for exercising resolvers without a time zone database.
type SingleTransitionZone struct {
	id         string
	transition Instant
	early      Offset
	late       Offset
}

// NewSingleTransitionZone builds a zone using the early offset before the
// transition instant and the late offset from it onwards.
func NewSingleTransitionZone(id string, transition Instant, early, late Offset) *SingleTransitionZone {
	return &SingleTransitionZone{id: id, transition: transition, early: early, late: late}
}

func (z *SingleTransitionZone) ID() string { return z.id }

func (z *SingleTransitionZone) MapLocal(dt LocalDateTime) ZoneLocalMapping {
	m := ZoneLocalMapping{Zone: z, Local: dt, Early: z.early, Late: z.late}
	earlyValid := instantAt(dt, z.early).nanos < z.transition.nanos
	lateValid := instantAt(dt, z.late).nanos >= z.transition.nanos
	if earlyValid {
		m.Count++
	}
	if lateValid {
		m.Count++
		if !earlyValid {
			m.Early = z.late
		}
	}
	return m
}

// instantAt is the instant of a local reading under a known offset.
func instantAt(dt LocalDateTime, offset Offset) Instant {
	i, _ := instantOfUTC(dt)
	return Instant{nanos: i.nanos - int64(offset.Seconds())*1e9}
}

// ZoneProvider supplies zones by identifier during parsing.
type ZoneProvider interface {
	IDs() []string
	Zone(id string) (Zone, bool)
}

// ZoneMap is an in-memory ZoneProvider.
type ZoneMap map[string]Zone

// NewZoneMap builds a provider from a fixed set of zones.
func NewZoneMap(zones ...Zone) ZoneMap {
	m := make(ZoneMap, len(zones))
	for _, z := range zones {
		m[z.ID()] = z
	}
	return m
}

// IDs lists the zone identifiers in a stable order.
func (m ZoneMap) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m ZoneMap) Zone(id string) (Zone, bool) {
	z, ok := m[id]
	return z, ok
}
