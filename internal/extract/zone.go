package extract

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/gyeh/tagstamp/internal/model"
)

// Base offsets are sampled in a fixed year so a zone resolves the same way
// regardless of today's date.
const baseOffsetReferenceYear = 2024

// Zone is a resolved target time zone and its standard (non-daylight) offset.
type Zone struct {
	Name     string
	Abbrev   string
	Base     time.Duration
	Location *time.Location

	fixed *time.Location
}

// ResolveZone loads an IANA zone id and computes its base offset.
// An empty id resolves to model.DefaultTimeZone. "Local" is rejected because
// it depends on the host.
func ResolveZone(id string) (*Zone, error) {
	name := strings.TrimSpace(id)
	if name == "" {
		name = model.DefaultTimeZone
	}
	if strings.EqualFold(name, "Local") {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("time zone \"Local\" depends on the host; name an IANA zone instead")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown time zone %q", id)).
			WithCause(err)
	}

	base, abbrev := baseOffset(loc)
	return &Zone{
		Name:     name,
		Abbrev:   abbrev,
		Base:     base,
		Location: loc,
		fixed:    time.FixedZone(abbrev, int(base/time.Second)),
	}, nil
}

// baseOffset picks the smaller of the January and July offsets. Daylight
// time always runs ahead of standard time, so this holds in both
// hemispheres and for zones like Europe/Dublin whose tzdata marks winter
// as the daylight period.
func baseOffset(loc *time.Location) (time.Duration, string) {
	jan := time.Date(baseOffsetReferenceYear, time.January, 1, 0, 0, 0, 0, time.UTC).In(loc)
	jul := time.Date(baseOffsetReferenceYear, time.July, 1, 0, 0, 0, 0, time.UTC).In(loc)
	std := jan
	_, janOffset := jan.Zone()
	_, julOffset := jul.Zone()
	if julOffset < janOffset {
		std = jul
	}
	abbrev, offset := std.Zone()
	return time.Duration(offset) * time.Second, abbrev
}

// AtBaseOffset shifts the parsed wall clock by the base offset and tags the
// result with that offset. The parsed value's own offset is not consulted.
func (z *Zone) AtBaseOffset(p *model.ParsedTimestamp) *model.NormalizedTimestamp {
	w := p.Instant
	shifted := time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), time.UTC).Add(z.Base)
	return &model.NormalizedTimestamp{
		Instant: time.Date(shifted.Year(), shifted.Month(), shifted.Day(),
			shifted.Hour(), shifted.Minute(), shifted.Second(), shifted.Nanosecond(), z.fixed),
		Offset: z.Base,
		Zone:   z.Name,
	}
}

// InLocation converts the parsed instant into the zone using the offset in
// force at that instant, daylight saving included.
func (z *Zone) InLocation(p *model.ParsedTimestamp) *model.NormalizedTimestamp {
	t := p.Instant.In(z.Location)
	_, offset := t.Zone()
	return &model.NormalizedTimestamp{
		Instant: t,
		Offset:  time.Duration(offset) * time.Second,
		Zone:    z.Name,
	}
}
