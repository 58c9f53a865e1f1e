// Package curve implements AnimationCurve: an immutable, piecewise cubic
// Hermite curve with pre/post wrap modes, plus a JSON loader and an
// LRU-backed registry so devices of the same kind share curve instances by
// pointer identity.
package curve

import (
	"fmt"
	"math"
)

// WrapMode selects how the curve behaves outside its keyframe range.
type WrapMode int

const (
	// Clamp is the implicit default: evaluating past either end holds the
	// boundary keyframe's value.
	Clamp WrapMode = 1
	Loop  WrapMode = 2
	PingPong WrapMode = 4
	ClampForever WrapMode = 8
)

// Keyframe is one control point of the curve.
type Keyframe struct {
	Time         float64
	Value        float64
	InTangent    float64
	OutTangent   float64
	InWeight     float64
	OutWeight    float64
	WeightedMode int // bit 0: in is weighted, bit 1: out is weighted
}

// Curve is an ordered, immutable sequence of keyframes plus wrap modes.
// Keyframes must be supplied already sorted by Time; New does not sort.
type Curve struct {
	keys          []Keyframe
	preWrapMode   WrapMode
	postWrapMode  WrapMode
}

// New builds a Curve from keyframes sorted ascending by Time.
func New(keys []Keyframe, preWrap, postWrap WrapMode) *Curve {
	if preWrap == 0 {
		preWrap = Clamp
	}
	if postWrap == 0 {
		postWrap = Clamp
	}
	cp := make([]Keyframe, len(keys))
	copy(cp, keys)
	return &Curve{keys: cp, preWrapMode: preWrap, postWrapMode: postWrap}
}

// Evaluate samples the curve at t, applying wrap-mode remapping outside
// [t0, tN] and cubic Hermite interpolation between bracketing keys inside.
func (c *Curve) Evaluate(t float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	if len(c.keys) == 1 {
		return c.keys[0].Value
	}

	t0 := c.keys[0].Time
	tN := c.keys[len(c.keys)-1].Time

	switch {
	case t < t0:
		t = c.wrap(c.preWrapMode, t, t0, tN)
	case t > tN:
		t = c.wrap(c.postWrapMode, t, t0, tN)
	}

	i := c.bracket(t)
	a, b := c.keys[i], c.keys[i+1]
	return hermite(a, b, t)
}

func (c *Curve) wrap(mode WrapMode, t, t0, tN float64) float64 {
	span := tN - t0
	if span <= 0 {
		return t0
	}
	switch mode {
	case ClampForever:
		return clampF(t, t0, tN)
	case PingPong:
		k := math.Floor((t - t0) / span)
		frac := (t - t0) - k*span
		if int64(k)%2 != 0 {
			return tN - frac
		}
		return t0 + frac
	case Loop:
		offset := math.Mod(t-t0, span)
		if offset < 0 {
			offset += span
		}
		return t0 + offset
	default: // Clamp
		return clampF(t, t0, tN)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bracket returns the index i such that keys[i].Time <= t <= keys[i+1].Time.
func (c *Curve) bracket(t float64) int {
	for i := 0; i < len(c.keys)-1; i++ {
		if t <= c.keys[i+1].Time {
			return i
		}
	}
	return len(c.keys) - 2
}

func hermite(a, b Keyframe, t float64) float64 {
	dt := b.Time - a.Time
	if dt <= 0 {
		return a.Value
	}
	s := (t - a.Time) / dt

	outTangent := a.OutTangent
	if a.WeightedMode&2 != 0 && a.OutWeight > 0 {
		outTangent *= a.OutWeight
	}
	inTangent := b.InTangent
	if b.WeightedMode&1 != 0 && b.InWeight > 0 {
		inTangent *= b.InWeight
	}

	m0 := outTangent * dt
	m1 := inTangent * dt

	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*a.Value + h10*m0 + h01*b.Value + h11*m1
}

// String reports a compact description, useful for debug logging.
func (c *Curve) String() string {
	return fmt.Sprintf("curve{keys=%d pre=%d post=%d}", len(c.keys), c.preWrapMode, c.postWrapMode)
}
