package gas

import "github.com/ic10vm/simulator/chem"

// Mole is a single species' quantity-and-energy record. Quantity and
// energy are always non-negative; temperature is derived, never stored.
type Mole struct {
	species  Species
	quantity float64
	energy   float64
}

// NewMole creates a Mole of the given species with n moles at temperature
// t kelvin.
func NewMole(g Species, n, t float64) Mole {
	m := Mole{species: g}
	if n < 0 {
		n = 0
	}
	m.quantity = n
	m.SetTemperature(t)
	return m
}

// ZeroMole creates an empty Mole of the given species.
func ZeroMole(g Species) Mole {
	return Mole{species: g}
}

// Species reports which gas this record tracks.
func (m Mole) Species() Species { return m.species }

// Quantity is the stored mole count.
func (m Mole) Quantity() float64 { return m.quantity }

// Energy is the stored thermal energy, in joules.
func (m Mole) Energy() float64 { return m.energy }

// HeatCapacity is n * cv, in J/K.
func (m Mole) HeatCapacity() float64 {
	return m.quantity * SpecificHeat[m.species]
}

// Temperature is energy / (quantity * cv), or 0 when the mole is empty.
func (m Mole) Temperature() float64 {
	c := m.HeatCapacity()
	if c <= 0 {
		return 0
	}
	return m.energy / c
}

// IsEmpty reports whether the quantity is below the minimum trackable
// amount.
func (m Mole) IsEmpty() bool {
	return m.quantity < chem.MinimumQuantityMoles
}

// Clear zeroes both quantity and energy.
func (m *Mole) Clear() {
	m.quantity = 0
	m.energy = 0
}

// Add merges other into m: quantities and energies sum, and temperature is
// recomputed from the combined totals.
func (m *Mole) Add(other Mole) {
	m.quantity += other.quantity
	m.energy += other.energy
	if m.quantity < 0 {
		m.quantity = 0
	}
	if m.energy < 0 {
		m.energy = 0
	}
}

// Remove splits n moles off m at the current temperature and returns the
// split as a new Mole; m retains the remainder. n is clamped to [0, m.quantity].
func (m *Mole) Remove(n float64) Mole {
	if n <= 0 {
		return ZeroMole(m.species)
	}
	if n > m.quantity {
		n = m.quantity
	}
	if m.quantity <= 0 {
		return ZeroMole(m.species)
	}
	ratio := n / m.quantity
	splitEnergy := m.energy * ratio
	m.quantity -= n
	m.energy -= splitEnergy
	if m.quantity < 0 {
		m.quantity = 0
	}
	if m.energy < 0 {
		m.energy = 0
	}
	out := Mole{species: m.species, quantity: n, energy: splitEnergy}
	return out
}

// RemoveRatio removes quantity*r moles, r clamped to [0,1].
func (m *Mole) RemoveRatio(r float64) Mole {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return m.Remove(m.quantity * r)
}

// SetTemperature rewrites the stored energy so that Temperature() reports t.
func (m *Mole) SetTemperature(t float64) {
	if t < 0 {
		t = 0
	}
	m.energy = m.quantity * SpecificHeat[m.species] * t
	if m.energy < 0 {
		m.energy = 0
	}
}

// AddEnergy adds J joules, clamped so energy never goes negative.
func (m *Mole) AddEnergy(j float64) {
	m.energy += j
	if m.energy < 0 {
		m.energy = 0
	}
}

// RemoveEnergy removes up to j joules and returns the amount actually
// removed (never more than the energy available).
func (m *Mole) RemoveEnergy(j float64) float64 {
	if j <= 0 {
		return 0
	}
	if j > m.energy {
		j = m.energy
	}
	m.energy -= j
	if m.energy < 0 {
		m.energy = 0
	}
	return j
}
