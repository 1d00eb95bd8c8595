package pipeline

import (
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/tempus-cli/tempus/internal/errs"
	"github.com/tempus-cli/tempus/internal/humantime"
)

// render completes the parsed result into a full local date-time,
// anchors it in loc and formats it with pattern.
func render(parsed humantime.Result, pattern string, now time.Time, loc *time.Location) (string, error) {
	naive := complete(parsed, now)

	zoned, err := zoneLocal(naive, loc)
	if err != nil {
		return "", err
	}

	f, err := strftime.New(pattern)
	if err != nil {
		return "", errs.UserInputf(errs.UnsupportedFormat, "%v", err)
	}
	return f.FormatString(zoned), nil
}

// complete fills the missing half of a partial result: dates get
// midnight, bare times get the calendar date of now.
func complete(parsed humantime.Result, now time.Time) time.Time {
	switch parsed.Kind {
	case humantime.KindDate:
		year, month, day := parsed.Value.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	case humantime.KindTime:
		year, month, day := now.Date()
		hour, min, sec := parsed.Value.Clock()
		return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	default:
		return parsed.Value
	}
}

// zoneLocal interprets a zone-naive wall clock in loc. A wall clock
// skipped by a spring-forward transition or repeated by a fall-back
// one denotes no single instant, so both cases fail instead of
// silently picking a candidate.
func zoneLocal(naive time.Time, loc *time.Location) (time.Time, error) {
	year, month, day := naive.Date()
	hour, min, sec := naive.Clock()
	wallUTC := time.Date(year, month, day, hour, min, sec, 0, time.UTC)

	// Zone offsets in effect around the requested wall clock. DST
	// shifts are far smaller than twelve hours, so probing a day
	// around it sees both sides of any transition.
	probe := time.Date(year, month, day, hour, min, sec, 0, loc)
	offsets := map[int]struct{}{}
	for _, t := range []time.Time{probe.Add(-12 * time.Hour), probe, probe.Add(12 * time.Hour)} {
		_, off := t.Zone()
		offsets[off] = struct{}{}
	}

	var matches []time.Time
	for off := range offsets {
		cand := wallUTC.Add(-time.Duration(off) * time.Second).In(loc)
		cy, cm, cd := cand.Date()
		ch, cmin, cs := cand.Clock()
		if cy == year && cm == month && cd == day && ch == hour && cmin == min && cs == sec {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return time.Time{}, errs.UserInputf(errs.UnsupportedFormat,
			"local time %s does not exist in %s", wallUTC.Format("2006-01-02 15:04:05"), loc)
	default:
		return time.Time{}, errs.UserInputf(errs.UnsupportedFormat,
			"local time %s is ambiguous in %s", wallUTC.Format("2006-01-02 15:04:05"), loc)
	}
}
