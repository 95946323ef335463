package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(e *Engine, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.GetNoise(i)
	}
	return out
}

func TestResetReplaysSequence(t *testing.T) {
	for _, dist := range []Distribution{Uniform, Gaussian} {
		e := New(12345, Config{Level: LevelMedium, Distribution: dist})

		e.Reset()
		first := sequence(e, 10)
		e.Reset()
		second := sequence(e, 10)

		require.Equal(t, first, second, "distribution %s", dist)
	}
}

func TestIndependentInstancesAgree(t *testing.T) {
	cfg := Config{Level: LevelHigh, Distribution: Gaussian}
	a := sequence(New(777, cfg), 10)
	b := sequence(New(777, cfg), 10)
	require.Equal(t, a, b)
}

func TestSeedChangeDecorrelates(t *testing.T) {
	cfg := Config{Level: LevelMedium, Distribution: Uniform}
	a := sequence(New(1000, cfg), 10)
	b := sequence(New(1001, cfg), 10)
	require.NotEqual(t, a, b)
}

func TestLevelOffIsZero(t *testing.T) {
	e := New(42, Config{Level: LevelOff, Distribution: Uniform})
	for _, v := range sequence(e, 10) {
		require.Zero(t, v)
	}
}

func TestLevelScalesAreOrdered(t *testing.T) {
	require.Zero(t, LevelOff.Scale())
	require.Greater(t, LevelLow.Scale(), LevelOff.Scale())
	require.Greater(t, LevelMedium.Scale(), LevelLow.Scale())
	require.Greater(t, LevelHigh.Scale(), LevelMedium.Scale())
}

func TestUniformBounds(t *testing.T) {
	e := New(9, Config{Level: LevelHigh, Distribution: Uniform})
	scale := LevelHigh.Scale()
	for _, v := range sequence(e, 1000) {
		require.GreaterOrEqual(t, v, -scale)
		require.Less(t, v, scale)
	}
}

func TestGaussianIsFinite(t *testing.T) {
	e := New(0, Config{Level: LevelHigh, Distribution: Gaussian})
	for _, v := range sequence(e, 1000) {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestApplyToAudioDataIsCorrelated(t *testing.T) {
	e := New(555, Config{Level: LevelMedium, Distribution: Gaussian})

	a := make([]float64, 64)
	b := make([]float64, 64)
	e.ApplyToAudioData(a)
	e.ApplyToAudioData(b)

	// Both applications observe the same noise, so two measurements of one
	// logical buffer stay correlated.
	require.Equal(t, a, b)

	changed := false
	for _, v := range a {
		if v != 0 {
			changed = true
		}
	}
	require.True(t, changed, "medium-level noise should perturb the buffer")
}

func TestLevelByteAmplitudesAreOrdered(t *testing.T) {
	require.Zero(t, LevelOff.ByteAmplitude())
	require.Greater(t, LevelLow.ByteAmplitude(), LevelOff.ByteAmplitude())
	require.Greater(t, LevelMedium.ByteAmplitude(), LevelLow.ByteAmplitude())
	require.Greater(t, LevelHigh.ByteAmplitude(), LevelMedium.ByteAmplitude())
}

func TestApplyToByteDataPerturbs(t *testing.T) {
	for _, level := range []Level{LevelLow, LevelMedium, LevelHigh} {
		for _, dist := range []Distribution{Uniform, Gaussian} {
			e := New(31337, Config{Level: level, Distribution: dist})

			buf := make([]byte, 1024)
			for i := range buf {
				buf[i] = 128
			}
			e.ApplyToByteData(buf)

			changed := false
			for _, b := range buf {
				if b != 128 {
					changed = true
					break
				}
			}
			require.True(t, changed, "level %s distribution %s left the buffer untouched", level, dist)
		}
	}
}

func TestApplyToByteDataClampsWithoutWraparound(t *testing.T) {
	e := New(31337, Config{Level: LevelHigh, Distribution: Gaussian})

	// Negative noise on a zero byte must clamp to 0, not wrap to 255.
	low := make([]byte, 1024)
	e.ApplyToByteData(low)
	for _, b := range low {
		require.Less(t, b, byte(128))
	}

	// Positive noise on a full byte must clamp to 255, not wrap to 0.
	high := make([]byte, 1024)
	for i := range high {
		high[i] = 255
	}
	e.ApplyToByteData(high)
	for _, b := range high {
		require.Greater(t, b, byte(128))
	}
}

func TestApplyToByteDataIsDeterministic(t *testing.T) {
	e := New(31337, Config{Level: LevelHigh, Distribution: Gaussian})

	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}
	e.ApplyToByteData(buf)

	again := make([]byte, 256)
	for i := range again {
		again[i] = byte(i)
	}
	e.ApplyToByteData(again)
	require.Equal(t, buf, again)
}

func TestApplyToByteDataOffIsNoop(t *testing.T) {
	e := New(31337, Config{Level: LevelOff, Distribution: Gaussian})

	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}
	e.ApplyToByteData(buf)
	for i := range buf {
		require.Equal(t, byte(i), buf[i])
	}
}

func TestGenerateSecureSeed(t *testing.T) {
	require.NotEqual(t, GenerateSecureSeed(), GenerateSecureSeed())
}
