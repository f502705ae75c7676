package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPackageRunningRoundTrip(t *testing.T) {
	w, err := ReadPackage("RUN", []float64{15000, 1.5, 75})
	require.NoError(t, err)

	running, ok := w.(Running)
	require.True(t, ok, "expected Running, got %T", w)
	require.Equal(t, 15000, running.Action)
	require.Equal(t, 1.5, running.Duration)
	require.Equal(t, 75.0, running.Weight)
}

func TestReadPackageBindsVariantFields(t *testing.T) {
	w, err := ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.Equal(t, SportsWalking{Training: Training{Action: 9000, Duration: 1, Weight: 75}, Height: 180}, w)

	w, err = ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.Equal(t, Swimming{Training: Training{Action: 720, Duration: 1, Weight: 80}, LengthPool: 25, CountPool: 40}, w)
}

func TestReadPackageUnknownCode(t *testing.T) {
	_, err := ReadPackage("XYZ", []float64{1, 2, 3})

	var unknown *UnknownWorkoutTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "XYZ", unknown.Code)
	require.Contains(t, err.Error(), "XYZ")
}

func TestReadPackageCodesAreCaseSensitive(t *testing.T) {
	_, err := ReadPackage("run", []float64{1, 2, 3})

	var unknown *UnknownWorkoutTypeError
	require.ErrorAs(t, err, &unknown)
}

func TestReadPackageArityMismatch(t *testing.T) {
	cases := []struct {
		code string
		data []float64
		want int
	}{
		{"RUN", []float64{1, 2}, 3},
		{"RUN", []float64{1, 2, 3, 4}, 3},
		{"WLK", []float64{9000, 1, 75}, 4},
		{"SWM", []float64{720, 1, 80, 25}, 5},
		{"SWM", nil, 5},
	}
	for _, tc := range cases {
		_, err := ReadPackage(tc.code, tc.data)

		var arity *ArityError
		require.ErrorAs(t, err, &arity, tc.code)
		require.Equal(t, tc.code, arity.Code)
		require.Equal(t, tc.want, arity.Want)
		require.Equal(t, len(tc.data), arity.Got)
	}
}

func TestReadPackageRejectsFractionalCounts(t *testing.T) {
	_, err := ReadPackage("RUN", []float64{100.5, 1, 75})
	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	require.Contains(t, arity.Error(), "action")

	_, err = ReadPackage("SWM", []float64{720, 1, 80, 25, 40.2})
	require.ErrorAs(t, err, &arity)
	require.Contains(t, arity.Error(), "pool lap count")

	_, err = ReadPackage("RUN", []float64{1e20, 1, 75})
	require.ErrorAs(t, err, &arity)
	require.Contains(t, arity.Error(), "action out of range")

	_, err = ReadPackage("SWM", []float64{720, 1, 80, 25, 1e20})
	require.ErrorAs(t, err, &arity)
	require.Contains(t, arity.Error(), "pool lap count out of range")

	_, err = ReadPackage("WLK", []float64{-1e20, 1, 75, 180})
	require.ErrorAs(t, err, &arity)
}

func TestReadPackageInvalidDuration(t *testing.T) {
	for _, hours := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ReadPackage("RUN", []float64{15000, hours, 75})
		require.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestCodes(t *testing.T) {
	require.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())

	n, ok := Arity("SWM")
	require.True(t, ok)
	require.Equal(t, 5, n)

	_, ok = Arity("XYZ")
	require.False(t, ok)
}
