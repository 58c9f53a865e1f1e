package curve

import (
	"encoding/json"
	"fmt"
)

// jsonKeyframe mirrors the field names of the curve JSON format (§6):
// unknown fields are ignored by encoding/json's default decode behavior.
type jsonKeyframe struct {
	Time         float64 `json:"time"`
	Value        float64 `json:"value"`
	InSlope      float64 `json:"inSlope"`
	OutSlope     float64 `json:"outSlope"`
	InWeight     float64 `json:"inWeight"`
	OutWeight    float64 `json:"outWeight"`
	WeightedMode int     `json:"weightedMode"`
}

type jsonCurve struct {
	PreInfinity  int            `json:"m_PreInfinity"`
	PostInfinity int            `json:"m_PostInfinity"`
	Keys         []jsonKeyframe `json:"keys"`
}

// Parse decodes a curve JSON document (§6 "Curve JSON") into a Curve.
func Parse(data []byte) (*Curve, error) {
	var doc jsonCurve
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("curve: invalid JSON: %w", err)
	}
	keys := make([]Keyframe, len(doc.Keys))
	for i, k := range doc.Keys {
		keys[i] = Keyframe{
			Time:         k.Time,
			Value:        k.Value,
			InTangent:    k.InSlope,
			OutTangent:   k.OutSlope,
			InWeight:     k.InWeight,
			OutWeight:    k.OutWeight,
			WeightedMode: k.WeightedMode,
		}
	}
	return New(keys, WrapMode(doc.PreInfinity), WrapMode(doc.PostInfinity)), nil
}
