package errors

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
)

// Report is the canonical structured error type raised by the type
// core. It is the concrete Go shape of the host's error-reporting
// sink (spec §6/§7): every core operation that can fail builds one of
// these and hands it to a Sink instead of panicking.
type Report struct {
	Schema        string         `json:"schema"`                   // Always "typecore.error/v1"
	Code          string         `json:"code"`                     // One of the TYP### constants
	Phase         string         `json:"phase"`                    // Always "typecheck" for this core
	Message       string         `json:"message"`                  // Human-readable message
	Span          *ast.Span      `json:"span,omitempty"`           // Source location
	Data          map[string]any `json:"data,omitempty"`           // Structured submessage (field/constructor/parameter)
	Fix           *Fix           `json:"fix,omitempty"`             // Suggested fix, if any
	CorrelationID string         `json:"correlation_id,omitempty"` // Fresh uuid per Report; not shared between reports
}

// Fix represents a suggested fix with a confidence score.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// ReportError wraps a Report as an error so it survives errors.As()
// unwrapping across the resolve/match/generics package boundaries.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (deterministic: top-level fields in
// struct declaration order, Data map keys sorted).
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New builds a Report for one of the TYP### codes, stamping it with a
// fresh correlation id. Every call draws a new id, so reports raised
// while resolving or matching the same top-level type expression do
// not share one.
func New(code, message string, span ast.Span) *Report {
	return &Report{
		Schema:        "typecore.error/v1",
		Code:          code,
		Phase:         "typecheck",
		Message:       message,
		Span:          &span,
		Data:          map[string]any{},
		CorrelationID: uuid.NewString(),
	}
}

// WithData attaches a structured submessage (e.g. which field,
// constructor, or parameter caused a ShapeMismatch) to the report.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	r.Data[key] = value
	return r
}
