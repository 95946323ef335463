// Package noise produces bounded deterministic perturbations for downstream
// measurement channels (audio buffers, canvas bytes, metric reads). The
// contract is replayability: the same seed, level, and distribution yield a
// byte-identical noise sequence across independent engines or across a
// reset, so repeated measurements of one logical session stay correlated.
package noise

import (
	"math"

	"github.com/jinshan6677-spec/fpgen/internal/sample"
)

// Level selects the noise magnitude. Scales are strictly increasing and
// tunable policy; only the ordering and "off means zero" are contractual.
type Level string

const (
	LevelOff    Level = "off"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Scale returns the level's magnitude multiplier. Unrecognized levels fall
// back to medium.
func (l Level) Scale() float64 {
	switch l {
	case LevelOff:
		return 0
	case LevelLow:
		return 0.00001
	case LevelMedium:
		return 0.0001
	case LevelHigh:
		return 0.001
	default:
		return 0.0001
	}
}

// ByteAmplitude returns the integer noise amplitude for byte-oriented
// channels. Byte buffers need whole-unit perturbations — the float scales
// above all round to zero — so the byte path carries its own magnitude
// regime. Unrecognized levels fall back to medium.
func (l Level) ByteAmplitude() float64 {
	switch l {
	case LevelOff:
		return 0
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	default:
		return 2
	}
}

// Distribution selects the shape of the raw perturbation.
type Distribution string

const (
	Uniform  Distribution = "uniform"
	Gaussian Distribution = "gaussian"
)

// Config bundles the two noise policy knobs.
type Config struct {
	Level        Level        `koanf:"level" json:"level"`
	Distribution Distribution `koanf:"distribution" json:"distribution"`
}

// minUniform keeps the first Box–Muller draw away from zero so the log term
// stays finite.
const minUniform = 1e-10

// Engine is a seeded deterministic noise generator.
type Engine struct {
	seed uint32
	src  *sample.LCG
	cfg  Config
}

// New creates an engine at the position implied by seed.
func New(seed uint32, cfg Config) *Engine {
	return &Engine{
		seed: seed,
		src:  sample.NewLCG(seed),
		cfg:  cfg,
	}
}

// Seed returns the engine's seed.
func (e *Engine) Seed() uint32 {
	return e.seed
}

// Reset rewinds the generator to the position implied purely by the seed,
// discarding any advancement.
func (e *Engine) Reset() {
	e.src.Seed(e.seed)
}

// draw produces one unit-scale perturbation: uniform in [-1, 1), or a
// standard-normal Box–Muller sample.
func (e *Engine) draw() float64 {
	if e.cfg.Distribution == Gaussian {
		u1 := e.src.Float64()
		if u1 < minUniform {
			u1 = minUniform
		}
		u2 := e.src.Float64()
		return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	}
	return e.src.Float64()*2 - 1
}

// GetNoise produces the next scalar perturbation. index is the consumer's
// sample position and is informational: values are positional in draw order,
// which is why callers reset before walking a buffer.
func (e *Engine) GetNoise(index int) float64 {
	scale := e.cfg.Level.Scale()
	if scale == 0 {
		return 0
	}
	return e.draw() * scale
}

// ApplyToAudioData adds one noise value per sample to a flat signed buffer,
// without clamping. The generator is reset first so two applications against
// the same logical session observe identical noise.
func (e *Engine) ApplyToAudioData(buf []float64) {
	e.Reset()
	for i := range buf {
		buf[i] += e.GetNoise(i)
	}
}

// ApplyToByteData perturbs a byte-oriented buffer: per-position noise at the
// level's byte amplitude is rounded to the nearest integer and the result
// clamped into [0, 255].
func (e *Engine) ApplyToByteData(buf []byte) {
	amp := e.cfg.Level.ByteAmplitude()
	if amp == 0 {
		return
	}
	e.Reset()
	for i := range buf {
		v := int(buf[i]) + int(math.Round(e.draw()*amp))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		buf[i] = byte(v)
	}
}
