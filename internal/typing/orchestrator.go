// Package typing turns a target text into a sequence of arena rounds and
// keeps score: cursor, per-character judgements, limits and statistics.
package typing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flytype/internal/arena"
	"github.com/vovakirdan/flytype/internal/core"
)

// Phase is the run lifecycle.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhaseCompleted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRunning:
		return "Running"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Judgement is the verdict on one target position.
type Judgement int

const (
	Unset Judgement = iota
	Correct
	Incorrect
)

// Event is a notable outcome of a round, used for sound cues.
type Event int

const (
	EventCorrect Event = iota
	EventIncorrect
	EventBackspace
	EventCompleted
)

// Selector runs one selection round at a time. *arena.Arena satisfies it.
type Selector interface {
	Start(items []arena.Item, title string, onComplete func(value string))
	Cancel()
	Active() bool
}

// Generator produces the target text of a run.
type Generator interface {
	Generate(opts Options, mode LimitMode, value int) string
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Hooks receive what the orchestrator publishes. Nil hooks are skipped.
type Hooks struct {
	OnStats   func(Stats)
	OnResults func(Results)
	OnEvent   func(Event)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(o *Orchestrator) { o.clock = c }
}

// WithLogger sets the logger run lifecycle messages go to.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithHooks sets the publication hooks.
func WithHooks(h Hooks) Option {
	return func(o *Orchestrator) { o.hooks = h }
}

// Orchestrator drives typing runs. Like the arena it is single-threaded:
// every method and every round completion must come from one goroutine.
type Orchestrator struct {
	sel    Selector
	gen    Generator
	rng    core.Rand
	clock  Clock
	logger *log.Logger
	hooks  Hooks

	settings   Settings
	target     []rune
	judgements []Judgement
	cursor     int
	typed      int
	errors     int
	phase      Phase
	started    time.Time
	finished   time.Time
	runID      string

	round    int // Token of the latest round; completions carrying an older one are dropped
	inFlight bool
	results  Results
}

// New creates an orchestrator in the Setup phase.
func New(sel Selector, gen Generator, rng core.Rand, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sel:    sel,
		gen:    gen,
		rng:    rng,
		clock:  systemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start begins a new run with the given settings. A run still in progress
// is abandoned without publishing results.
func (o *Orchestrator) Start(s Settings) {
	if o.phase == PhaseRunning {
		o.cancelRound()
	}

	o.phase = PhaseSetup
	o.settings = s
	o.target = []rune(o.gen.Generate(s.Options, s.Mode, s.Value))
	o.judgements = make([]Judgement, len(o.target))
	o.cursor = 0
	o.typed = 0
	o.errors = 0
	o.results = Results{}
	o.runID = uuid.NewString()

	o.phase = PhaseRunning
	o.started = o.clock.Now()
	o.logger.Debug("run started", "run", o.runID, "mode", s.Mode, "limit", s.Value, "chars", len(o.target))

	o.publishStats()
	o.requestRound()
}

// Check refreshes the live stats and enforces the time limit.
// The platform calls it on a ~100ms timer. No-op unless Running.
func (o *Orchestrator) Check() {
	if o.phase != PhaseRunning {
		return
	}
	if o.settings.Mode == LimitTime && o.Elapsed() >= time.Duration(o.settings.Value)*time.Second {
		o.complete()
		return
	}
	o.publishStats()
}

// Finish ends the run immediately, as if Exit had been chosen.
func (o *Orchestrator) Finish() {
	if o.phase != PhaseRunning {
		return
	}
	o.complete()
}

// requestRound opens the round for the character under the cursor.
// At most one round is in flight.
func (o *Orchestrator) requestRound() {
	if o.phase != PhaseRunning || o.inFlight {
		return
	}
	if o.cursor >= len(o.target) {
		o.complete()
		return
	}

	expected := o.target[o.cursor]
	o.round++
	token := o.round
	o.inFlight = true
	o.sel.Start(BuildLetterChoices(expected, o.rng), "Select: "+DescribeChar(expected), func(value string) {
		o.handleChoice(token, value)
	})
}

// handleChoice applies the outcome of round token.
func (o *Orchestrator) handleChoice(token int, value string) {
	if token != o.round || o.phase != PhaseRunning {
		return
	}
	o.inFlight = false

	switch value {
	case ValueExit:
		o.complete()
		return

	case ValueBackspace:
		if o.cursor > 0 {
			o.cursor--
		}
		if len(o.judgements) > 0 {
			o.judgements[o.cursor] = Unset
		}
		o.emit(EventBackspace)
		o.publishStats()
		o.requestRound()
		return
	}

	o.typed++
	if value == string(o.target[o.cursor]) {
		o.judgements[o.cursor] = Correct
		o.cursor++
		o.emit(EventCorrect)
	} else {
		// A miss steps back and marks the previous character, even if it was correct
		o.errors++
		if o.cursor > 0 {
			o.cursor--
		}
		o.judgements[o.cursor] = Incorrect
		o.emit(EventIncorrect)
	}
	o.publishStats()

	if o.cursor >= len(o.target) || o.phase != PhaseRunning {
		o.complete()
		return
	}
	o.requestRound()
}

// complete moves to Completed, cancels the in-flight round and publishes results.
func (o *Orchestrator) complete() {
	if o.phase != PhaseRunning {
		return
	}
	o.phase = PhaseCompleted
	o.finished = o.clock.Now()
	o.cancelRound()

	stats := o.Stats()
	o.results = Results{
		RunID:          o.runID,
		ElapsedSeconds: stats.Elapsed.Seconds(),
		WPM:            stats.WPM,
		Accuracy:       stats.Accuracy,
		TypedCount:     o.typed,
		ErrorCount:     o.errors,
		LimitSummary:   o.settings.LimitSummary(),
	}
	o.logger.Debug("run completed", "run", o.runID, "wpm", stats.WPM, "accuracy", stats.Accuracy,
		"typed", o.typed, "errors", o.errors, "elapsed", stats.Elapsed.Round(time.Millisecond))

	if o.hooks.OnStats != nil {
		o.hooks.OnStats(stats)
	}
	o.emit(EventCompleted)
	if o.hooks.OnResults != nil {
		o.hooks.OnResults(o.results)
	}
}

// cancelRound invalidates the current round token and stops the selector.
func (o *Orchestrator) cancelRound() {
	o.round++
	if o.inFlight {
		o.inFlight = false
		if o.sel.Active() {
			o.sel.Cancel()
		}
	}
}

func (o *Orchestrator) publishStats() {
	if o.hooks.OnStats != nil {
		o.hooks.OnStats(o.Stats())
	}
}

func (o *Orchestrator) emit(e Event) {
	if o.hooks.OnEvent != nil {
		o.hooks.OnEvent(e)
	}
}

// Stats returns the current statistics.
func (o *Orchestrator) Stats() Stats {
	elapsed := o.Elapsed()
	return Stats{
		Elapsed:        elapsed,
		ElapsedDisplay: ElapsedDisplay(o.settings, elapsed),
		WPM:            WPM(o.typed, elapsed),
		Accuracy:       Accuracy(o.typed, o.errors),
		TypedCount:     o.typed,
		ErrorCount:     o.errors,
	}
}

// Elapsed returns the run time so far, frozen once the run completes.
func (o *Orchestrator) Elapsed() time.Duration {
	switch o.phase {
	case PhaseRunning:
		return o.clock.Now().Sub(o.started)
	case PhaseCompleted:
		return o.finished.Sub(o.started)
	default:
		return 0
	}
}

// Phase returns the lifecycle phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Settings returns the settings of the current or last run.
func (o *Orchestrator) Settings() Settings {
	return o.settings
}

// Target returns the target text. Callers must not modify it.
func (o *Orchestrator) Target() []rune {
	return o.target
}

// Judgements returns the per-character verdicts. Callers must not modify them.
func (o *Orchestrator) Judgements() []Judgement {
	return o.judgements
}

// Cursor returns the index of the next expected character.
func (o *Orchestrator) Cursor() int {
	return o.cursor
}

// Expected returns the character under the cursor, or 0 past the end.
func (o *Orchestrator) Expected() rune {
	if o.cursor < len(o.target) {
		return o.target[o.cursor]
	}
	return 0
}

// Results returns the summary of the last completed run.
func (o *Orchestrator) Results() Results {
	return o.results
}
