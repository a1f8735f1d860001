package internal

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

// The exact value an expansion represents.
func ratSum(e ...float64) *big.Rat {
	sum := new(big.Rat)
	for _, c := range e {
		sum.Add(sum, rat(c))
	}
	return sum
}

// Components must grow strictly in magnitude, and no zeros may appear
// except as the single component of a zero expansion.
func assertWellFormed(t *testing.T, e []float64) {
	t.Helper()
	require.NotEmpty(t, e)
	if len(e) == 1 {
		return
	}
	for i, c := range e {
		assert.NotZero(t, c, "zero component at %d in %v", i, e)
		if i > 0 {
			assert.Less(t, math.Abs(e[i-1]), math.Abs(c), "components out of order in %v", e)
		}
	}
}

var twoOpCases = [][2]float64{
	{1, 1e-30},
	{1e-30, 1},
	{0.1, 0.2},
	{1 << 53, 1},
	{-3.5, 3.5},
	{1e300, -1e283},
	{math.Pi, -math.E},
	{0, -7},
}

func TestTwoSumAndDiff(t *testing.T) {
	for _, tc := range twoOpCases {
		a, b := tc[0], tc[1]

		x, y := twoSum(a, b)
		assert.Equal(t, a+b, x)
		assert.Equal(t, 0, ratSum(a, b).Cmp(ratSum(x, y)), "twoSum(%v, %v)", a, b)

		x, y = twoDiff(a, b)
		assert.Equal(t, a-b, x)
		assert.Equal(t, 0, ratSum(a, -b).Cmp(ratSum(x, y)), "twoDiff(%v, %v)", a, b)

		if math.Abs(a) >= math.Abs(b) {
			x, y = fastTwoSum(a, b)
			assert.Equal(t, 0, ratSum(a, b).Cmp(ratSum(x, y)), "fastTwoSum(%v, %v)", a, b)
		}
	}
}

func TestTwoProduct(t *testing.T) {
	for _, tc := range [][2]float64{
		{0.1, 0.1},
		{1 + 0x1p-52, 1 - 0x1p-53},
		{math.Pi, math.E},
		{-3, 7},
		{1e150, 1e-150},
		{0, 5},
	} {
		a, b := tc[0], tc[1]
		x, y := twoProduct(a, b)
		assert.Equal(t, a*b, x)
		expected := new(big.Rat).Mul(rat(a), rat(b))
		assert.Equal(t, 0, expected.Cmp(ratSum(x, y)), "twoProduct(%v, %v)", a, b)
	}
}

func TestTwoTwoDiff(t *testing.T) {
	a1, a0 := twoSum(1, 0x1p-60)
	b1, b0 := twoSum(1, -0x1p-70)
	terms := twoTwoDiff(a1, a0, b1, b0)
	expected := new(big.Rat).Sub(ratSum(a1, a0), ratSum(b1, b0))
	assert.Equal(t, 0, expected.Cmp(ratSum(terms[:]...)))
	assert.Equal(t, Positive, expansionSign(terms[:]))
}

func TestSumZeroElim_Cancellation(t *testing.T) {
	// 1 + 1e-30 and -1 + 2e-30: the large parts cancel exactly and only the
	// tiny parts survive.
	e1, e0 := twoSum(1, 1e-30)
	f1, f0 := twoSum(-1, 2e-30)
	e := []float64{e0, e1}
	f := []float64{f0, f1}

	var buf [4]float64
	h := sumZeroElim(e, f, buf[:])
	assertWellFormed(t, h)
	assert.Equal(t, 0, ratSum(1e-30, 2e-30).Cmp(ratSum(h...)))
	assert.Equal(t, Positive, expansionSign(h))

	// Exact cancellation leaves a single zero.
	h = sumZeroElim(e, negate([]float64{e0, e1}), buf[:])
	assert.Equal(t, []float64{0}, h)
	assert.Equal(t, Zero, expansionSign(h))
}

func TestSumZeroElim_Empty(t *testing.T) {
	var buf [2]float64
	assert.Equal(t, []float64{1, 2}, sumZeroElim(nil, []float64{1, 2}, buf[:]))
	assert.Equal(t, []float64{3}, sumZeroElim([]float64{0, 3}, nil, buf[:]))
	assert.Equal(t, []float64{0}, sumZeroElim(nil, nil, buf[:]))
}

func TestScaleZeroElim(t *testing.T) {
	e1, e0 := twoSum(1, 0x1p-80)
	e := []float64{e0, e1}
	var buf [4]float64
	h := scaleZeroElim(e, 3, buf[:])
	assertWellFormed(t, h)
	expected := new(big.Rat).Mul(ratSum(e...), rat(3))
	assert.Equal(t, 0, expected.Cmp(ratSum(h...)))

	assert.Equal(t, []float64{0}, scaleZeroElim(e, 0, buf[:]))
	assert.Equal(t, []float64{0}, scaleZeroElim(nil, 3, buf[:]))
}

func TestExpansionSign(t *testing.T) {
	assert.Equal(t, Zero, expansionSign(nil))
	assert.Equal(t, Zero, expansionSign([]float64{0, 0}))
	assert.Equal(t, Negative, expansionSign([]float64{1e-20, -1}))
	assert.Equal(t, Positive, expansionSign([]float64{-1e-20, 1, 0}))
}

func TestExpansion_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	wide := gen.Float64Range(-1e100, 1e100)
	narrow := gen.Float64Range(-1, 1)

	properties.Property("sum of two two-component expansions is exact", prop.ForAll(
		func(a, b, c, d float64) bool {
			e1, e0 := twoSum(a, b)
			f1, f0 := twoSum(c, d)
			var buf [4]float64
			h := sumZeroElim([]float64{e0, e1}, []float64{f0, f1}, buf[:])
			return ratSum(a, b, c, d).Cmp(ratSum(h...)) == 0
		},
		wide, narrow, wide, narrow,
	))

	properties.Property("two-two product is exact", prop.ForAll(
		func(a, b, c, d float64) bool {
			a1, a0 := twoDiff(a, b)
			b1, b0 := twoDiff(c, d)
			var buf [8]float64
			h := twoTwoProduct(a1, a0, b1, b0, buf[:])
			expected := new(big.Rat).Mul(ratSum(a, -b), ratSum(c, -d))
			return expected.Cmp(ratSum(h...)) == 0
		},
		wide, narrow, narrow, wide,
	))

	properties.TestingRun(t)
}
