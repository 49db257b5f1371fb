package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/fixtures"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/match"
)

func TestAreIdenticalRejectsWidening(t *testing.T) {
	w := fixtures.NewWorld("identical")
	u64 := fixtures.Basic(dtype.KindU64)
	u8 := fixtures.Basic(dtype.KindU8)

	assert.False(t, match.AreIdentical(w.Ctx, u64, u8))
	assert.True(t, match.AreIdentical(w.Ctx, u64, fixtures.Basic(dtype.KindU64)))
}

func TestAreSignaturesIdenticalIgnoresReturnType(t *testing.T) {
	w := fixtures.NewWorld("identical")
	span := fixtures.Basic(dtype.KindU32).Location()
	u32 := fixtures.Basic(dtype.KindU32)
	voidT := fixtures.Basic(dtype.KindVoid)

	a := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32}}, voidT, span)
	b := dtype.NewFunction([]dtype.FunctionArgument{{Name: "y", Type: u32}}, fixtures.Basic(dtype.KindBool), span)

	assert.True(t, match.AreSignaturesIdentical(w.Ctx, a, b))
}

func TestAreSignaturesIdenticalRejectsParamMismatch(t *testing.T) {
	w := fixtures.NewWorld("identical")
	span := fixtures.Basic(dtype.KindU32).Location()
	a := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: fixtures.Basic(dtype.KindU32)}}, fixtures.Basic(dtype.KindVoid), span)
	b := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: fixtures.Basic(dtype.KindU8)}}, fixtures.Basic(dtype.KindVoid), span)

	assert.False(t, match.AreSignaturesIdentical(w.Ctx, a, b))
}

func TestCanCastBetweenBasics(t *testing.T) {
	w := fixtures.NewWorld("identical")
	assert.True(t, match.CanCast(w.Ctx, fixtures.Basic(dtype.KindF64), fixtures.Basic(dtype.KindU8)).OK)
}

func TestCanCastLiteralIntToBasic(t *testing.T) {
	w := fixtures.NewWorld("identical")
	span := fixtures.Basic(dtype.KindU32).Location()
	lit := dtype.NewLiteralInt(4, span)
	assert.True(t, match.CanCast(w.Ctx, lit, fixtures.Basic(dtype.KindU32)).OK)
}

func TestCanCastMismatchedClassAttributesFails(t *testing.T) {
	w := fixtures.NewWorld("identical")
	span := fixtures.Basic(dtype.KindU32).Location()
	a := dtype.NewClass("A", span)
	a.Attributes = []dtype.StructField{{Name: "id", Type: fixtures.Basic(dtype.KindU32)}}
	b := dtype.NewClass("B", span)
	assert.False(t, match.CanCast(w.Ctx, a, b).OK)
}
