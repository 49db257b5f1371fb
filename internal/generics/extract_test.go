package generics_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/fixtures"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/generics"
)

func TestExtractArrayBindsElementType(t *testing.T) {
	w := fixtures.NewWorld("extract")
	u32 := fixtures.Basic(dtype.KindU32)
	pattern := dtype.NewArray(dtype.NewGeneric("T", nil, u32.Location()), u32.Location())
	concrete := dtype.NewArray(u32, u32.Location())

	bindings, err := generics.Extract(w.Ctx, pattern, concrete, []string{"T"})
	require.NoError(t, err)
	require.Contains(t, bindings, "T")

	if diff := cmp.Diff(u32.Serialize(false), bindings["T"].Serialize(false)); diff != "" {
		t.Errorf("bound T mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractStructBindsEachField(t *testing.T) {
	w := fixtures.NewWorld("extract")
	u32 := fixtures.Basic(dtype.KindU32)
	boolT := fixtures.Basic(dtype.KindBool)
	span := u32.Location()

	pattern := dtype.NewStruct([]dtype.StructField{
		{Name: "a", Type: dtype.NewGeneric("A", nil, span)},
		{Name: "b", Type: dtype.NewGeneric("B", nil, span)},
	}, span)
	concrete := dtype.NewStruct([]dtype.StructField{
		{Name: "a", Type: u32},
		{Name: "b", Type: boolT},
	}, span)

	bindings, err := generics.Extract(w.Ctx, pattern, concrete, []string{"A", "B"})
	require.NoError(t, err)
	require.Equal(t, u32.Hash(), bindings["A"].Hash())
	require.Equal(t, boolT.Hash(), bindings["B"].Hash())
}

func TestExtractVecScenario(t *testing.T) {
	w := fixtures.NewWorld("extract")
	u32 := fixtures.Basic(dtype.KindU32)
	vecDecl := w.Vec()

	concrete, err := vecDecl.Instantiate([]dtype.DataType{u32})
	require.NoError(t, err)
	require.NoError(t, concrete.Resolve(w.Ctx))

	// The still-generic declaration body is the extraction pattern: a
	// caller that only has "Vec<T>" and a concrete "Vec<u32>" value
	// recovers T this way.
	bindings, err := generics.Extract(w.Ctx, vecDecl.Type, concrete, []string{"T"})
	require.NoError(t, err)
	require.Equal(t, u32.Hash(), bindings["T"].Hash())
}

func TestExtractFunctionBindsParamsAndReturn(t *testing.T) {
	w := fixtures.NewWorld("extract")
	u32 := fixtures.Basic(dtype.KindU32)
	span := u32.Location()

	pattern := dtype.NewFunction(
		[]dtype.FunctionArgument{{Name: "x", Type: dtype.NewGeneric("T", nil, span)}},
		dtype.NewGeneric("T", nil, span),
		span,
	)
	concrete := dtype.NewFunction(
		[]dtype.FunctionArgument{{Name: "x", Type: u32}},
		u32,
		span,
	)

	bindings, err := generics.Extract(w.Ctx, pattern, concrete, []string{"T"})
	require.NoError(t, err)
	require.Equal(t, u32.Hash(), bindings["T"].Hash())
}
