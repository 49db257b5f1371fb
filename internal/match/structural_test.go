package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/fixtures"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/match"
)

func TestClassMatchByAttributesAndMethods(t *testing.T) {
	w := fixtures.NewWorld("struct")
	u32 := fixtures.Basic(dtype.KindU32)

	narrow := dtype.NewClass("Point", u32.Location())
	narrow.Attributes = []dtype.StructField{{Name: "x", Type: u32}}

	wide := dtype.NewClass("Point3D", u32.Location())
	wide.Attributes = []dtype.StructField{
		{Name: "x", Type: u32},
		{Name: "y", Type: u32},
	}

	// Non-strict: wide has every attribute narrow requires, plus more.
	assert.True(t, match.Match(w.Ctx, narrow, wide, false).OK)
	// Strict: attribute counts must match exactly.
	assert.False(t, match.Match(w.Ctx, narrow, wide, true).OK)
}

func TestClassMatchMissingAttributeFails(t *testing.T) {
	w := fixtures.NewWorld("struct")
	u32 := fixtures.Basic(dtype.KindU32)

	expected := dtype.NewClass("Point", u32.Location())
	expected.Attributes = []dtype.StructField{{Name: "x", Type: u32}}

	actual := dtype.NewClass("Empty", u32.Location())

	result := match.Match(w.Ctx, expected, actual, false)
	assert.False(t, result.OK)
}

func TestEnumMatchRequiresIdenticalFields(t *testing.T) {
	w := fixtures.NewWorld("struct")
	span := fixtures.Basic(dtype.KindU32).Location()

	a := dtype.NewEnum([]dtype.EnumField{{Name: "Red", Value: 0}, {Name: "Blue", Value: 1}}, span)
	b := dtype.NewEnum([]dtype.EnumField{{Name: "Red", Value: 0}, {Name: "Blue", Value: 1}}, span)
	c := dtype.NewEnum([]dtype.EnumField{{Name: "Red", Value: 0}, {Name: "Green", Value: 2}}, span)

	assert.True(t, match.Match(w.Ctx, a, b, false).OK)
	assert.False(t, match.Match(w.Ctx, a, c, false).OK)
}

func TestEnumAcceptsLiteralIntNonStrict(t *testing.T) {
	w := fixtures.NewWorld("struct")
	span := fixtures.Basic(dtype.KindU32).Location()
	enum := dtype.NewEnum([]dtype.EnumField{{Name: "Red", Value: 0}}, span)
	lit := dtype.NewLiteralInt(1, span)

	assert.True(t, match.Match(w.Ctx, enum, lit, false).OK)
	assert.False(t, match.Match(w.Ctx, enum, lit, true).OK)
}

func TestInterfaceWidthSubtypingStrictRequiresEqualMethodCounts(t *testing.T) {
	w := fixtures.NewWorld("struct")
	voidT := fixtures.Basic(dtype.KindVoid)
	u32 := fixtures.Basic(dtype.KindU32)

	expected := fixtures.SimpleInterface("Small", fixtures.Method("f", voidT))
	actual := fixtures.SimpleInterface("Wide",
		fixtures.Method("f", voidT),
		fixtures.MethodWithParams("g", []dtype.FunctionArgument{{Name: "x", Type: u32}}, u32),
	)

	// Non-strict: actual exposes every method expected requires, plus more.
	assert.True(t, match.Match(w.Ctx, expected, actual, false).OK)
	// Strict: method counts must match exactly (spec §8 scenario 2).
	assert.False(t, match.Match(w.Ctx, expected, actual, true).OK)
}

func TestFunctionMatchRequiresEqualMutabilityFlags(t *testing.T) {
	w := fixtures.NewWorld("struct")
	span := fixtures.Basic(dtype.KindU32).Location()
	u32 := fixtures.Basic(dtype.KindU32)
	voidT := fixtures.Basic(dtype.KindVoid)

	expected := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32, IsMutable: true}}, voidT, span)
	actual := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32, IsMutable: false}}, voidT, span)

	assert.False(t, match.Match(w.Ctx, expected, actual, false).OK)

	actualMut := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32, IsMutable: true}}, voidT, span)
	assert.True(t, match.Match(w.Ctx, expected, actualMut, false).OK)
}

func TestFunctionMatchUnsetExpectedReturnIsInferenceSink(t *testing.T) {
	w := fixtures.NewWorld("struct")
	span := fixtures.Basic(dtype.KindU32).Location()
	u32 := fixtures.Basic(dtype.KindU32)
	voidT := fixtures.Basic(dtype.KindVoid)

	expected := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32}}, dtype.NewUnset(span), span)
	actual := dtype.NewFunction([]dtype.FunctionArgument{{Name: "x", Type: u32}}, voidT, span)

	assert.True(t, match.Match(w.Ctx, expected, actual, false).OK)
}

func TestVariantConstructorAsymmetry(t *testing.T) {
	w := fixtures.NewWorld("struct")
	tree := w.Tree()
	u32 := fixtures.Basic(dtype.KindU32)
	inst, err := tree.Instantiate([]dtype.DataType{u32})
	assert.NoError(t, err)
	variant := inst.(*dtype.VariantType)
	assert.NoError(t, variant.Resolve(w.Ctx))

	leaf, ok := variant.Constructor("Leaf")
	assert.True(t, ok)

	// A constructor satisfies its parent variant...
	assert.True(t, match.Match(w.Ctx, variant, leaf, false).OK)
	// ...but the variant itself does not satisfy a specific constructor.
	assert.False(t, match.Match(w.Ctx, leaf, variant, false).OK)
}
