package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ok := Point{1, 2}
	assert.NoError(t, Validate(ok, ok, ok))
	assert.NoError(t, Validate(Point{0, 0}, Point{MaxMagnitude, -MaxMagnitude}, Point{MinMagnitude, -MinMagnitude}))

	for _, tc := range []struct {
		name    string
		p, q, r Point
		point   string
		axis    string
		message string
	}{
		{"nan", Point{math.NaN(), 0}, ok, ok, "p", "x", "is NaN"},
		{"inf", ok, Point{0, math.Inf(-1)}, ok, "q", "y", "is infinite"},
		{"huge", ok, ok, Point{1e136, 0}, "r", "x", "exceeds 2^450"},
		{"tiny", ok, ok, Point{0, 1e-136}, "r", "y", "below 2^-450"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.p, tc.q, tc.r)
			require.Error(t, err)
			domainErr, isDomainErr := errors.Cause(err).(*DomainError)
			require.True(t, isDomainErr, "unexpected error type %T", errors.Cause(err))
			assert.Equal(t, tc.point, domainErr.Point)
			assert.Equal(t, tc.axis, domainErr.Axis)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestOrientChecked(t *testing.T) {
	o, err := OrientChecked(Point{0, 0}, Point{1, 0}, Point{0, 1})
	require.NoError(t, err)
	assert.Equal(t, Positive, o)

	o, err = OrientChecked(Point{0, 0}, Point{math.Inf(1), 0}, Point{0, 1})
	require.Error(t, err)
	assert.Equal(t, Zero, o)
	assert.Contains(t, err.Error(), "orienting [(0, 0) (+Inf, 0) (0, 1)]")
	assert.IsType(t, &DomainError{}, errors.Cause(err))
}
