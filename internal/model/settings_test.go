package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoFillXModeLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Auto fill X: Off", AutoFillXOff.Label())
	require.Equal(t, "Base", AutoFillXBase.ShortLabel())
	require.Equal(t, "Smart", AutoFillXSmart.ShortLabel())
	require.Contains(t, AutoFillXBase.Explanation(), "completed lines")
}

func TestAutoFillXModeShiftClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, AutoFillXOff, AutoFillXOff.Shift(-1))
	require.Equal(t, AutoFillXBase, AutoFillXOff.Shift(1))
	require.Equal(t, AutoFillXSmart, AutoFillXBase.Shift(5))
}

func TestDefaultGameplayOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultGameplayOptions()
	require.False(t, opts.MultiClick)
	require.True(t, opts.AutoFillNumbers)
	require.Equal(t, AutoFillXSmart, opts.AutoFillX)
}
