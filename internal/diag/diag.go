// Package diag renders *errors.Report values for a human at a terminal
// or as newline-delimited JSON for tooling, the two output modes a host
// driver needs around the type core's error sink (spec §7).
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

// Renderer writes Reports to an io.Writer, either colorized for a human
// or as compact JSON, one per line, for a consuming tool.
type Renderer struct {
	w      io.Writer
	color  bool
	json   bool
	code   func(a ...interface{}) string
	msg    func(a ...interface{}) string
	span   func(a ...interface{}) string
	fix    func(a ...interface{}) string
}

// NewRenderer builds a human-facing Renderer for w. Coloring is enabled
// only when w is a terminal (checked via go-isatty), matching the
// teacher's REPL convention of disabling color once stdout is
// redirected to a file or pipe.
func NewRenderer(w io.Writer) *Renderer {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{
		w:     w,
		color: useColor,
		code:  colorFunc(useColor, color.FgRed, color.Bold),
		msg:   colorFunc(useColor, color.Reset),
		span:  colorFunc(useColor, color.Faint),
		fix:   colorFunc(useColor, color.FgGreen),
	}
}

// NewJSONRenderer builds a Renderer that emits one compact JSON object
// per Report, for hosts that want to consume diagnostics as data rather
// than text.
func NewJSONRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, json: true}
}

func colorFunc(enabled bool, attrs ...color.Attribute) func(a ...interface{}) string {
	if !enabled {
		return fmt.Sprint
	}
	return color.New(attrs...).SprintFunc()
}

// Write renders one Report to the underlying writer.
func (r *Renderer) Write(rep *errors.Report) error {
	if rep == nil {
		return nil
	}
	if r.json {
		line, err := rep.ToJSON(true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.w, line)
		return err
	}

	loc := "<unknown>"
	if rep.Span != nil {
		loc = rep.Span.String()
	}
	_, err := fmt.Fprintf(r.w, "%s %s\n  %s\n", r.code(rep.Code), r.span(loc), r.msg(rep.Message))
	if err != nil {
		return err
	}
	if rep.Fix != nil {
		_, err = fmt.Fprintf(r.w, "  %s %s (confidence %.2f)\n", r.fix("fix:"), rep.Fix.Suggestion, rep.Fix.Confidence)
	}
	return err
}

// WriteAll renders every Report in reps, stopping at the first write
// error.
func (r *Renderer) WriteAll(reps []*errors.Report) error {
	for _, rep := range reps {
		if err := r.Write(rep); err != nil {
			return err
		}
	}
	return nil
}
