package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/config"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/dtype"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/fixtures"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/match"
	"github.com/unlimitedsoftwareworks/type-c-sub003/internal/resolve"
)

// Exercises the four assertions from the end-to-end numeric widening
// scenario: same-family widening both ways, and the cross-family
// unsigned-to-signed "gap >= 1" rule.
func TestWidensToScenario(t *testing.T) {
	w := fixtures.NewWorld("widen")

	cases := []struct {
		name             string
		expected, actual dtype.Kind
		want             bool
	}{
		{"u64 <- u8", dtype.KindU64, dtype.KindU8, true},
		{"u8 <- u64", dtype.KindU8, dtype.KindU64, false},
		{"i32 <- u16", dtype.KindI32, dtype.KindU16, true},
		{"i32 <- u32", dtype.KindI32, dtype.KindU32, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := match.Match(w.Ctx, fixtures.Basic(c.expected), fixtures.Basic(c.actual), false)
			assert.Equal(t, c.want, result.OK, "match(%s, %s): %s", c.expected, c.actual, result.Message)
		})
	}
}

func TestMatchStrictRejectsWidening(t *testing.T) {
	w := fixtures.NewWorld("widen")
	result := match.Match(w.Ctx, fixtures.Basic(dtype.KindU64), fixtures.Basic(dtype.KindU8), true)
	require.False(t, result.OK)
}

func TestLiteralIntRangeCheckIsOptIn(t *testing.T) {
	w := fixtures.NewWorld("widen")
	u8 := fixtures.Basic(dtype.KindU8)
	lit := dtype.NewLiteralInt(8, u8.Location())

	// Disabled by default: an 8-byte literal still matches u8.
	assert.True(t, match.Match(w.Ctx, u8, lit, false).OK)
}

func TestLiteralIntRangeCheckRejectsOversizedLiteral(t *testing.T) {
	reg := resolve.NewRegistry()
	sink := resolve.NewSink()
	cfg := config.Default()
	cfg.LiteralIntRangeCheck = true
	ctx := resolve.NewContextWithConfig(reg, dtype.PackageID("widen"), sink, cfg)

	u8 := fixtures.Basic(dtype.KindU8)
	lit := dtype.NewLiteralInt(8, u8.Location())

	result := match.Match(ctx, u8, lit, false)
	require.False(t, result.OK)
}
