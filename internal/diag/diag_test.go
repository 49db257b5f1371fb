package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/ast"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/diag"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/errors"
)

func TestRendererWritesMessageAndCode(t *testing.T) {
	var buf bytes.Buffer
	r := diag.NewRenderer(&buf)
	rep := errors.New("TYP006", "shape mismatch", ast.Unknown)

	require.NoError(t, r.Write(rep))
	out := buf.String()
	assert.Contains(t, out, "TYP006")
	assert.Contains(t, out, "shape mismatch")
}

func TestRendererSkipsNilReport(t *testing.T) {
	var buf bytes.Buffer
	r := diag.NewRenderer(&buf)
	require.NoError(t, r.Write(nil))
	assert.Empty(t, buf.String())
}

func TestJSONRendererEmitsOneLinePerReport(t *testing.T) {
	var buf bytes.Buffer
	r := diag.NewJSONRenderer(&buf)
	reps := []*errors.Report{
		errors.New("TYP001", "unknown name", ast.Unknown),
		errors.New("TYP002", "not a declared type", ast.Unknown),
	}

	require.NoError(t, r.WriteAll(reps))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"code":"TYP001"`)
	assert.Contains(t, lines[1], `"code":"TYP002"`)
}

func TestRendererIncludesFixSuggestion(t *testing.T) {
	var buf bytes.Buffer
	r := diag.NewRenderer(&buf)
	rep := errors.New("TYP009", "constructor not found", ast.Unknown)
	rep.Fix = &errors.Fix{Suggestion: "did you mean Node?", Confidence: 0.8}

	require.NoError(t, r.Write(rep))
	assert.Contains(t, buf.String(), "did you mean Node?")
}
