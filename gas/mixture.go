package gas

import (
	"math"

	"github.com/ic10vm/simulator/chem"
)

// Mixture is a fixed-arity, nine-species gas container with a volume. All
// mutating operations saturate (clamp negative inputs to zero, floor the
// volume) rather than panic.
type Mixture struct {
	moles  [numSpecies]Mole
	volume float64
}

// NewMixture creates an empty mixture with the given volume in liters,
// floored at chem.MinimumGasVolume.
func NewMixture(volumeL float64) *Mixture {
	m := &Mixture{}
	for i := range m.moles {
		m.moles[i] = ZeroMole(Species(i))
	}
	m.SetVolume(volumeL)
	return m
}

// Volume in liters.
func (m *Mixture) Volume() float64 { return m.volume }

// SetVolume floors the given value at chem.MinimumGasVolume.
func (m *Mixture) SetVolume(v float64) {
	if v < chem.MinimumGasVolume {
		v = chem.MinimumGasVolume
	}
	m.volume = v
}

// GetMole returns a copy of the Mole record for species g.
func (m *Mixture) GetMole(g Species) Mole {
	return m.moles[g]
}

// GetMoles returns the quantity stored for species g.
func (m *Mixture) GetMoles(g Species) float64 {
	return m.moles[g].Quantity()
}

// AddGas adds n moles of species g at temperature t, then forces a global
// temperature equalization across every non-empty species.
func (m *Mixture) AddGas(g Species, n, t float64) {
	m.moles[g].Add(NewMole(g, n, t))
	m.equalizeInternalTemperature()
}

// AddMole merges other into the matching species slot, then forces a
// global temperature equalization.
func (m *Mixture) AddMole(other Mole) {
	m.moles[other.species].Add(other)
	m.equalizeInternalTemperature()
}

func (m *Mixture) equalizeInternalTemperature() {
	c := m.TotalHeatCapacity()
	if c <= 0 {
		return
	}
	t := m.TotalEnergy() / c
	for i := range m.moles {
		if !m.moles[i].IsEmpty() {
			m.moles[i].SetTemperature(t)
		}
	}
}

// RemoveGas removes n moles of species g and returns the split.
func (m *Mixture) RemoveGas(g Species, n float64) Mole {
	return m.moles[g].Remove(n)
}

// RemoveAllGas removes the entirety of species g and returns it.
func (m *Mixture) RemoveAllGas(g Species) Mole {
	return m.moles[g].Remove(m.moles[g].Quantity())
}

// TotalMoles sums the quantity across every species.
func (m *Mixture) TotalMoles() float64 {
	var total float64
	for _, mo := range m.moles {
		total += mo.Quantity()
	}
	return total
}

// TotalEnergy sums the stored energy across every species.
func (m *Mixture) TotalEnergy() float64 {
	var total float64
	for _, mo := range m.moles {
		total += mo.Energy()
	}
	return total
}

// TotalHeatCapacity sums n*cv across every species.
func (m *Mixture) TotalHeatCapacity() float64 {
	var total float64
	for _, mo := range m.moles {
		total += mo.HeatCapacity()
	}
	return total
}

// Temperature is TotalEnergy/TotalHeatCapacity, or 0 when the mixture
// carries no heat capacity.
func (m *Mixture) Temperature() float64 {
	c := m.TotalHeatCapacity()
	if c <= 0 {
		return 0
	}
	return m.TotalEnergy() / c
}

// Pressure is nRT/V over the whole mixture.
func (m *Mixture) Pressure() float64 {
	return chem.Pressure(m.TotalMoles(), m.Temperature(), m.volume)
}

// PartialPressure is the pressure species g alone would exert at the
// mixture's temperature and volume.
func (m *Mixture) PartialPressure(g Species) float64 {
	return chem.Pressure(m.GetMoles(g), m.Temperature(), m.volume)
}

// GasRatio is the mole fraction of species g, or 0 when the mixture is
// empty.
func (m *Mixture) GasRatio(g Species) float64 {
	total := m.TotalMoles()
	if total <= 0 {
		return 0
	}
	return m.GetMoles(g) / total
}

// AddEnergy distributes j joules across species proportional to their
// current heat-capacity share.
func (m *Mixture) AddEnergy(j float64) {
	c := m.TotalHeatCapacity()
	if c <= 0 {
		return
	}
	for i := range m.moles {
		share := m.moles[i].HeatCapacity() / c
		m.moles[i].AddEnergy(j * share)
	}
}

// RemoveEnergy removes up to j joules, proportional to each species' share
// of the total energy, and returns the total actually removed.
func (m *Mixture) RemoveEnergy(j float64) float64 {
	total := m.TotalEnergy()
	if total <= 0 || j <= 0 {
		return 0
	}
	if j > total {
		j = total
	}
	var removed float64
	for i := range m.moles {
		share := m.moles[i].Energy() / total
		removed += m.moles[i].RemoveEnergy(j * share)
	}
	return removed
}

// SetTemperature rewrites every species' stored energy to reflect t.
func (m *Mixture) SetTemperature(t float64) {
	for i := range m.moles {
		m.moles[i].SetTemperature(t)
	}
}

// TransferRatioTo removes ratio r (clamped to [0,1]) of each species from m
// and adds it into other, returning the total moles moved.
func (m *Mixture) TransferRatioTo(other *Mixture, r float64) float64 {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	var moved float64
	for i := range m.moles {
		split := m.moles[i].RemoveRatio(r)
		moved += split.Quantity()
		other.moles[i].Add(split)
	}
	return moved
}

// RemoveMoles builds a proportional split across every species and returns
// it as a volumeless Aliquot, a detached transport carrier.
func (m *Mixture) RemoveMoles(n float64) Aliquot {
	total := m.TotalMoles()
	ratio := 1.0
	if total > 0 {
		ratio = n / total
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	var out Aliquot
	for i := range m.moles {
		out.moles[i] = m.moles[i].RemoveRatio(ratio)
	}
	return out
}

// Merge adds other's species-wise into m without re-equalizing
// temperature; used for transport where both sides are already
// equilibrated.
func (m *Mixture) Merge(other *Mixture) {
	for i := range m.moles {
		m.moles[i].Add(other.moles[i])
	}
}

// MergeAliquot folds a detached Aliquot into m without re-equalizing.
func (m *Mixture) MergeAliquot(a Aliquot) {
	for i := range m.moles {
		m.moles[i].Add(a.moles[i])
	}
}

// EqualizeWith performs the two-step equalization described in the gas
// algebra: thermal equalization via combined heat capacity, then, unless
// the pressures are already within chem.PressureEqualizationEps,
// volume-proportional redistribution of the excess.
func (m *Mixture) EqualizeWith(other *Mixture) {
	cSelf, cOther := m.TotalHeatCapacity(), other.TotalHeatCapacity()
	combinedC := cSelf + cOther
	if combinedC > 0 {
		t := (m.TotalEnergy() + other.TotalEnergy()) / combinedC
		m.SetTemperature(t)
		other.SetTemperature(t)
	}

	pSelf, pOther := m.Pressure(), other.Pressure()
	if math.Abs(pSelf-pOther) < chem.PressureEqualizationEps {
		return
	}

	totalMoles := m.TotalMoles() + other.TotalMoles()
	totalVolume := m.volume + other.volume
	if totalVolume <= 0 {
		return
	}
	targetSelf := totalMoles * m.volume / totalVolume

	selfMoles := m.TotalMoles()
	if selfMoles > targetSelf {
		excess := selfMoles - targetSelf
		if selfMoles > 0 {
			m.TransferRatioTo(other, excess/selfMoles)
		}
		return
	}
	otherMoles := other.TotalMoles()
	targetOther := totalMoles - targetSelf
	if otherMoles > targetOther {
		excess := otherMoles - targetOther
		if otherMoles > 0 {
			other.TransferRatioTo(m, excess/otherMoles)
		}
	}
}

// Clear empties every species slot.
func (m *Mixture) Clear() {
	for i := range m.moles {
		m.moles[i].Clear()
	}
}

// IsEmpty reports whether the total moles fall below
// chem.MinimumQuantityMoles.
func (m *Mixture) IsEmpty() bool {
	return m.TotalMoles() < chem.MinimumQuantityMoles
}
