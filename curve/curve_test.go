package curve

import (
	"math"
	"testing"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func ramp() []Keyframe {
	return []Keyframe{
		{Time: 0, Value: 0},
		{Time: 1000, Value: 10},
		{Time: 2000, Value: 20},
	}
}

// TestCurveClamp is spec scenario 7: a ClampForever postWrapMode past the
// final keyframe returns the final keyframe's value exactly.
func TestCurveClamp(t *testing.T) {
	c := New(ramp(), Clamp, ClampForever)
	want := c.Evaluate(2000)
	if got := c.Evaluate(2500); got != want {
		t.Errorf("Evaluate(2500) = %v, want exactly %v", got, want)
	}
}

// TestCurvePingPong is spec scenario 8.
func TestCurvePingPong(t *testing.T) {
	keys := []Keyframe{
		{Time: 0, Value: 0},
		{Time: 600, Value: 5},
		{Time: 1200, Value: 10},
	}
	c := New(keys, Clamp, PingPong)
	for _, delta := range []float64{100, 200, 1100} {
		a := c.Evaluate(1200 + delta)
		b := c.Evaluate(1200 - delta)
		if !near(a, b, 1e-9) {
			t.Errorf("pingpong asymmetry at delta=%v: Evaluate(1200+d)=%v Evaluate(1200-d)=%v", delta, a, b)
		}
	}
}

func TestCurveLoopWraps(t *testing.T) {
	keys := []Keyframe{
		{Time: 0, Value: 0},
		{Time: 100, Value: 1},
	}
	c := New(keys, Clamp, Loop)
	if got, want := c.Evaluate(150), c.Evaluate(50); !near(got, want, 1e-9) {
		t.Errorf("Evaluate(150) = %v, want %v (loop wrap of 50)", got, want)
	}
}

func TestCurveInteriorHermite(t *testing.T) {
	c := New(ramp(), Clamp, Clamp)
	// At the exact keyframe times, the curve must return the keyframe value.
	if got := c.Evaluate(1000); !near(got, 10, 1e-9) {
		t.Errorf("Evaluate(1000) = %v, want 10", got)
	}
}

func TestParseIgnoresUnknownFields(t *testing.T) {
	doc := []byte(`{
		"m_PreInfinity": 1,
		"m_PostInfinity": 8,
		"keys": [
			{"time": 0, "value": 0, "inSlope": 0, "outSlope": 0, "inWeight": 0, "outWeight": 0, "weightedMode": 0, "somethingElse": "ignored"},
			{"time": 2000, "value": 5, "inSlope": 0, "outSlope": 0, "inWeight": 0, "outWeight": 0, "weightedMode": 0}
		],
		"extraTopLevelField": true
	}`)
	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := c.Evaluate(2500); got != 5 {
		t.Errorf("Evaluate(2500) = %v, want 5 (ClampForever past last key)", got)
	}
}
