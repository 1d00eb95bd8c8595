// Package pipeline is the core transformation: it resolves the output
// format, establishes the reference instant, hands the expression to
// the natural-language parser, reconciles the result against the
// target time zone and renders the final string.
package pipeline

import (
	"time"

	"github.com/tempus-cli/tempus/internal/errs"
	"github.com/tempus-cli/tempus/internal/humantime"
)

// Parser is the natural-language capability the pipeline consumes.
// now carries the wall clock and location relative expressions are
// anchored to.
type Parser interface {
	Parse(text string, now time.Time) (humantime.Result, error)
}

// Request is the immutable input of one pipeline run.
type Request struct {
	// Expression is the raw natural-language text.
	Expression string
	// Format is a strftime pattern or the name of a preset.
	Format string
	// Location is the target time zone.
	Location *time.Location
	// Now, when set, replaces the clock reading as the reference
	// instant. Useful for deterministic runs.
	Now *time.Time
}

// Preset names a format pattern.
type Preset struct {
	Name   string
	Format string
}

// Pipeline runs requests through parse, reconcile and render. A
// Pipeline holds no per-run state; Process may be called concurrently.
type Pipeline struct {
	parser Parser
	clock  func() time.Time
}

// New creates a Pipeline around a parser and a clock. A nil clock
// falls back to time.Now.
func New(parser Parser, clock func() time.Time) *Pipeline {
	if clock == nil {
		clock = time.Now
	}
	return &Pipeline{parser: parser, clock: clock}
}

// Process turns req into a formatted datetime string. It stops at the
// first failing stage; no partial output is produced.
func (p *Pipeline) Process(req Request, presets []Preset) (string, error) {
	loc := req.Location
	if loc == nil {
		loc = time.Local
	}

	var now time.Time
	if req.Now != nil {
		now = req.Now.In(loc)
	} else {
		now = p.clock().In(loc)
	}

	format, err := ResolveFormat(req.Format, presets)
	if err != nil {
		return "", err
	}

	parsed, err := p.parser.Parse(req.Expression, now)
	if err != nil {
		return "", errs.UserInputf(errs.InvalidDateFormat, "failed to parse %q: %v", req.Expression, err)
	}

	return render(parsed, format, now, loc)
}
