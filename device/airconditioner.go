package device

import (
	"math"

	"github.com/ic10vm/simulator/curve"
	"github.com/ic10vm/simulator/gas"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/network"
)

// AirConditioner moves a proportional aliquot of gas from Input to Output,
// driving the input temperature toward Setting, and dumps the opposite-sign
// heat into Output2 (waste), per spec.md §4.9. The two efficiency curves
// are loaded once and shared by pointer identity across every
// AirConditioner instance of the same kind (see curve.Registry).
type AirConditioner struct {
	Input, Output, Output2 *network.Network

	setting float64 // goal temperature, K
	mode    float64 // 0 or 1

	temperatureDeltaEfficiency *curve.Curve
	inputAndWaste              *curve.Curve

	processedMolesLastTick float64

	prefabHash uint32
	nameHash   uint32

	registry *PropertyRegistry[AirConditioner]
}

// NewAirConditioner creates an AirConditioner wired to the given networks
// and efficiency curves.
func NewAirConditioner(input, output, output2 *network.Network, deltaEff, inputWaste *curve.Curve, prefabHash, nameHash uint32) *AirConditioner {
	ac := &AirConditioner{
		Input: input, Output: output, Output2: output2,
		setting:                    293.15,
		temperatureDeltaEfficiency: deltaEff,
		inputAndWaste:              inputWaste,
		prefabHash:                 prefabHash,
		nameHash:                   nameHash,
	}
	ac.registry = airConditionerRegistry()
	return ac
}

func airConditionerRegistry() *PropertyRegistry[AirConditioner] {
	return NewPropertyRegistry([]PropertyDescriptor[AirConditioner]{
		ReadWriteClamped(isa.LogicTypeSetting, 0, 1000,
			func(a *AirConditioner) float64 { return a.setting },
			func(a *AirConditioner, v float64) { a.setting = v }),
		ReadWriteBool(isa.LogicTypeMode,
			func(a *AirConditioner) float64 { return a.mode },
			func(a *AirConditioner, v float64) { a.mode = v }),
		ReadOnly(isa.LogicTypeTemperatureInput, func(a *AirConditioner) float64 {
			return a.Input.Mixture().Temperature()
		}),
		ReadOnly(isa.LogicTypeRatioOutput, func(a *AirConditioner) float64 {
			return a.processedMolesLastTick
		}),
	})
}

func (a *AirConditioner) ReadProperty(lt isa.LogicType) (float64, error) {
	return a.registry.Read(a, lt)
}
func (a *AirConditioner) WriteProperty(lt isa.LogicType, v float64) error {
	return a.registry.Write(a, lt, v)
}
func (a *AirConditioner) ReadSlotProperty(int, isa.LogicType) (float64, error) {
	return 0, errUnknownSlot
}
func (a *AirConditioner) WriteSlotProperty(int, isa.LogicType, float64) error {
	return errUnknownSlot
}
func (a *AirConditioner) ReadReagent(float64, float64) float64 { return 0 }
func (a *AirConditioner) PrefabHash() uint32                   { return a.prefabHash }
func (a *AirConditioner) NameHash() uint32                     { return a.nameHash }

// Update runs one tick of the unit. When Mode is 0, processedMolesLastTick
// resets to 0 and nothing else moves.
func (a *AirConditioner) Update() {
	if a.mode == 0 {
		a.processedMolesLastTick = 0
		return
	}

	inputTemp := a.Input.Mixture().Temperature()
	deltaT := a.setting - inputTemp

	efficiency := 1.0
	if a.temperatureDeltaEfficiency != nil {
		efficiency = a.temperatureDeltaEfficiency.Evaluate(deltaT)
	}
	if a.inputAndWaste != nil {
		efficiency *= a.inputAndWaste.Evaluate(inputTemp)
	}
	efficiency = clamp01(efficiency)

	pressure := a.Input.Mixture().Pressure()
	if pressure <= 0 {
		a.processedMolesLastTick = 0
		return
	}
	amount := efficiency * pressure / 1000
	a.processedMolesLastTick = amount

	aliquot := a.Input.Mixture().RemoveMoles(amount)
	a.Output.Mixture().MergeAliquot(aliquot)

	// Heat of the opposite sign of the temperature move is dumped into
	// the waste network so that heating Input does not fabricate energy.
	heat := math.Abs(deltaT) * efficiency * gas.SpecificHeat[gas.Oxygen]
	if deltaT < 0 {
		heat = -heat
	}
	a.Input.Mixture().AddEnergy(heat)
	a.Output2.Mixture().AddEnergy(-heat)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
