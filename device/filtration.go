package device

import (
	"github.com/ic10vm/simulator/gas"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/network"
)

// Filtration pulls a per-tick aliquot from Input, splits it species-wise
// between a filtered set that flows to Output and everything else that
// flows to Output2 (waste), per spec.md §4.9.
type Filtration struct {
	Input, Output, Output2 *network.Network

	filteredSpecies map[gas.Species]bool
	mode            float64 // 0 or 1, boolean-coded LogicType
	flowRate        float64 // moles/tick scaling factor

	prefabHash uint32
	nameHash   uint32

	registry *PropertyRegistry[Filtration]
}

// NewFiltration creates a Filtration device wired to the given networks,
// filtering the given set of species from Input into Output.
func NewFiltration(input, output, output2 *network.Network, filtered []gas.Species, prefabHash, nameHash uint32) *Filtration {
	set := make(map[gas.Species]bool, len(filtered))
	for _, s := range filtered {
		set[s] = true
	}
	f := &Filtration{
		Input: input, Output: output, Output2: output2,
		filteredSpecies: set,
		flowRate:        10, // default moles/tick scale
		prefabHash:      prefabHash,
		nameHash:        nameHash,
	}
	f.registry = filtrationRegistry()
	return f
}

func filtrationRegistry() *PropertyRegistry[Filtration] {
	return NewPropertyRegistry([]PropertyDescriptor[Filtration]{
		ReadWriteBool(isa.LogicTypeMode,
			func(f *Filtration) float64 { return f.mode },
			func(f *Filtration, v float64) { f.mode = v }),
		ReadWriteClamped(isa.LogicTypeFlowRate, 0, 1000,
			func(f *Filtration) float64 { return f.flowRate },
			func(f *Filtration, v float64) { f.flowRate = v }),
		ReadOnly(isa.LogicTypePressureInput, func(f *Filtration) float64 {
			return f.Input.Mixture().Pressure()
		}),
	})
}

func (f *Filtration) ReadProperty(lt isa.LogicType) (float64, error) {
	return f.registry.Read(f, lt)
}
func (f *Filtration) WriteProperty(lt isa.LogicType, v float64) error {
	return f.registry.Write(f, lt, v)
}
func (f *Filtration) ReadSlotProperty(int, isa.LogicType) (float64, error) {
	return 0, errUnknownSlot
}
func (f *Filtration) WriteSlotProperty(int, isa.LogicType, float64) error {
	return errUnknownSlot
}
func (f *Filtration) ReadReagent(float64, float64) float64 { return 0 }
func (f *Filtration) PrefabHash() uint32                   { return f.prefabHash }
func (f *Filtration) NameHash() uint32                     { return f.nameHash }

// Update runs one tick of filtration. When Mode is 0, it is a no-op.
func (f *Filtration) Update() {
	if f.mode == 0 {
		return
	}
	pressure := f.Input.Mixture().Pressure()
	if pressure <= 0 {
		return
	}
	amount := f.flowRate * pressure / 1000
	aliquot := f.Input.Mixture().RemoveMoles(amount)

	for _, s := range gas.AllSpecies() {
		m := aliquot.GetMole(s)
		if f.filteredSpecies[s] {
			f.Output.Mixture().AddMole(m)
		} else {
			f.Output2.Mixture().AddMole(m)
		}
	}
}

var errUnknownSlot = isaUnknownSlotError{}

type isaUnknownSlotError struct{}

func (isaUnknownSlotError) Error() string { return "device: no slot inventory" }
