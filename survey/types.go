// SPDX-License-Identifier: MIT

package survey

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/prime"
)

// Sentinel errors for the survey driver.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("survey: invalid option supplied")

	// ErrBadRange is returned by the family generators for an empty or invalid range.
	ErrBadRange = errors.New("survey: invalid family range")
)

// Candidate is one named graph to classify. The survey reads Graph but never
// writes it; callers must not mutate it while Run is in progress.
type Candidate struct {
	Name  string
	Graph *core.Graph
}

// Outcome is the classification of one candidate.
type Outcome struct {
	Name      string
	Prime     bool
	Minimal   bool
	Base      bool
	Generated bool
	Report    prime.Report
	Twins     int
	Elapsed   time.Duration

	// Err is set when a predicate was inconclusive or failed; the boolean
	// fields are then unreliable.
	Err error
}

// Verdict labels reported to metrics and logs.
const (
	VerdictMinimal      = "minimal"
	VerdictPrime        = "prime"
	VerdictNotPrime     = "not_prime"
	VerdictInconclusive = "inconclusive"
	VerdictError        = "error"
)

// Verdict classifies the outcome for metrics and logs.
func (o Outcome) Verdict() string {
	switch {
	case o.Err != nil && errors.Is(o.Err, prime.ErrInconclusive):
		return VerdictInconclusive
	case o.Err != nil:
		return VerdictError
	case o.Minimal:
		return VerdictMinimal
	case o.Prime:
		return VerdictPrime
	default:
		return VerdictNotPrime
	}
}

// Result aggregates one survey run.
type Result struct {
	RunID uuid.UUID

	// Outcomes follow the order of the input candidates.
	Outcomes []Outcome

	// Base lists, in input order, the candidates that are minimal prime base graphs.
	Base []string
}

// Option configures Run.
type Option func(*Options)

// Options holds the survey knobs.
type Options struct {
	// Workers bounds the number of candidates evaluated concurrently.
	Workers int

	// Generated additionally runs IsGeneratedGraph(g, 1) on every candidate.
	Generated bool

	// Predicate is forwarded to every prime predicate.
	Predicate []prime.Option

	// Metrics, when non-nil, records verdicts and timings.
	Metrics *Metrics

	err error
}

// DefaultOptions uses GOMAXPROCS workers and skips the generated-graph test.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds concurrency (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithGenerated toggles the generated-graph test.
func WithGenerated(on bool) Option {
	return func(o *Options) {
		o.Generated = on
	}
}

// WithPredicateOptions forwards options to package prime.
func WithPredicateOptions(opts ...prime.Option) Option {
	return func(o *Options) {
		o.Predicate = append(o.Predicate, opts...)
	}
}

// WithMetrics records verdicts and timings into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
