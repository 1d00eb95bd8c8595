// Package humantime turns free-form date/time text into a tagged
// calendar result: a date, a time of day, or both. Explicit layouts
// are tried before the natural-language grammars so that "2025-06-24"
// stays a date and "15:30" stays a time of day.
package humantime

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/tj/go-naturaldate"
)

// Kind tags which calendar fields of a Result are meaningful.
type Kind int

const (
	// KindDate is a calendar date with no time of day.
	KindDate Kind = iota + 1
	// KindDateTime is a full local date and time of day.
	KindDateTime
	// KindTime is a time of day with no date.
	KindTime
)

// Result is a parsed expression. Value is a zone-naive wall clock
// carried in a UTC container: for KindDate only the date fields are
// meaningful, for KindTime only the clock fields.
type Result struct {
	Kind  Kind
	Value time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04pm",
	"3:04 pm",
	"3pm",
}

// Parser understands explicit layouts plus English natural-language
// expressions ("tomorrow", "next friday at 9:30", "in 3 days").
type Parser struct {
	when *when.Parser
}

// NewParser creates a Parser with the English and common rule sets.
func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{when: w}
}

// Parse interprets text relative to now, which must carry the wall
// clock and location the expression should be anchored to.
func (p *Parser) Parse(text string, now time.Time) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("empty expression")
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return Result{Kind: KindDateTime, Value: naive(t)}, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return Result{Kind: KindDate, Value: naive(t)}, nil
		}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return Result{Kind: KindTime, Value: naive(t)}, nil
		}
	}

	if match, err := p.when.Parse(text, now); err == nil && match != nil {
		return Result{Kind: KindDateTime, Value: naive(match.Time)}, nil
	}

	t, err := naturaldate.Parse(text, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return Result{}, fmt.Errorf("cannot understand %q", text)
	}
	return Result{Kind: KindDateTime, Value: naive(t)}, nil
}

// naive strips the location, keeping the wall clock.
func naive(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}
