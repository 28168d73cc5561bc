package splitter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Unit is one emitted (name, lines) pair. Lines keep their original
// terminators; joining them with no separator reproduces the source text.
type Unit struct {
	Name  string
	Lines []string
}

// EmitFunc receives each completed unit as soon as it is finalized, so
// callers can persist units while the rest of the input is still streaming.
// Returning an error stops the split.
type EmitFunc func(Unit) error

// Config holds the knobs for a splitter engine.
type Config struct {
	// Conditions are the trigger phrases. Nil or empty means
	// DefaultConditions.
	Conditions []string
	// TriggerCount is the number of condition hits accumulated before a new
	// unit is cut. Must be >= 1.
	TriggerCount int
	// IgnoreBlankLines drops whitespace-only lines before any matching or
	// accumulation.
	IgnoreBlankLines bool
	// Logger is optional; nil discards debug output.
	Logger *slog.Logger
}

// Engine splits a line stream into units. An Engine is immutable after New;
// all per-run state lives inside Split, so one Engine can serve any number
// of sequential invocations.
type Engine struct {
	conditions  []condition
	trigger     int
	ignoreBlank bool
	logger      *slog.Logger
}

// New validates the configuration and returns a ready engine.
func New(cfg Config) (*Engine, error) {
	if cfg.TriggerCount < 1 {
		return nil, fmt.Errorf("trigger count must be >= 1, got %d", cfg.TriggerCount)
	}

	raw := cfg.Conditions
	if len(raw) == 0 {
		raw = DefaultConditions
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		conditions:  compileConditions(raw),
		trigger:     cfg.TriggerCount,
		ignoreBlank: cfg.IgnoreBlankLines,
		logger:      logger,
	}, nil
}

// FallbackName returns the sequential default name for a unit index.
func FallbackName(index int) string {
	return fmt.Sprintf("file_%d", index)
}

// Split consumes r line by line and emits completed units. A unit is cut
// when a matching line arrives after the hit count has reached the trigger
// count; the cutting line itself opens the next unit, and a name extracted
// from it names that next unit. Whatever is left accumulated at end of
// input is flushed as a final unit. Returns the number of units emitted.
//
// Zero input lines produce zero units. Malformed SQL is not an error; the
// only failure modes are reader errors and emit errors.
func (e *Engine) Split(r io.Reader, emit EmitFunc) (int, error) {
	var (
		pending []string
		hits    int
		index   int
		emitted int
	)
	name := FallbackName(index)

	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			skip := e.ignoreBlank && strings.TrimSpace(line) == ""
			if !skip {
				upper := strings.ToUpper(line)
				if matchesAny(upper, e.conditions) {
					if hits >= e.trigger {
						// Cut before appending: the current line belongs to
						// the unit after the cut, never to the one emitted.
						if err := emit(Unit{Name: name, Lines: pending}); err != nil {
							return emitted, err
						}
						emitted++
						e.logger.Debug("unit emitted", "name", name, "lines", len(pending))

						pending = nil
						hits = 0
						index++
						name = FallbackName(index)
					}
					hits++
					if extracted, ok := extractName(line, upper, e.conditions); ok {
						name = extracted
					}
				}
				pending = append(pending, line)
			}
		}
		if readErr != nil {
			if readErr != io.EOF {
				return emitted, readErr
			}
			break
		}
	}

	if len(pending) > 0 {
		if err := emit(Unit{Name: name, Lines: pending}); err != nil {
			return emitted, err
		}
		emitted++
		e.logger.Debug("unit emitted", "name", name, "lines", len(pending))
	}

	return emitted, nil
}
