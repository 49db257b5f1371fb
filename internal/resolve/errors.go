package resolve

import (
	"sync"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// Sink is the concrete dtype.ErrorSink: every Report raised during one
// type-checking run is appended here instead of panicking, letting a
// host surface all of a run's diagnostics at once rather than
// stopping at the first (spec §6).
type Sink struct {
	mu      sync.Mutex
	Reports []*errors.Report
}

func NewSink() *Sink { return &Sink{} }

// Raise implements dtype.ErrorSink. It always returns a non-nil error
// so callers can use the idiomatic `if err := x.Resolve(ctx); err !=
// nil { return err }` short-circuit immediately after raising.
func (s *Sink) Raise(report *errors.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reports = append(s.Reports, report)
	return errors.WrapReport(report)
}

// All returns a snapshot of every report raised so far.
func (s *Sink) All() []*errors.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*errors.Report(nil), s.Reports...)
}
