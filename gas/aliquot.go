package gas

// Aliquot is a detached, volumeless split of a Mixture produced by
// RemoveMoles. It exists purely for transport between two containers and
// deliberately does not expose Pressure or PartialPressure: those queries
// require a volume, and an Aliquot has none. Merge it into a destination
// Mixture with Mixture.MergeAliquot.
type Aliquot struct {
	moles [numSpecies]Mole
}

// GetMoles returns the quantity carried for species g.
func (a Aliquot) GetMoles(g Species) float64 {
	return a.moles[g].Quantity()
}

// GetMole returns a copy of the per-species Mole record carried by the
// aliquot, preserving the temperature it was split off at.
func (a Aliquot) GetMole(g Species) Mole {
	return a.moles[g]
}

// TotalMoles sums the quantity across every species in the aliquot.
func (a Aliquot) TotalMoles() float64 {
	var total float64
	for _, m := range a.moles {
		total += m.Quantity()
	}
	return total
}

// TotalEnergy sums the stored energy across every species in the aliquot.
func (a Aliquot) TotalEnergy() float64 {
	var total float64
	for _, m := range a.moles {
		total += m.Energy()
	}
	return total
}

// IsEmpty reports whether the aliquot carries no meaningful quantity.
func (a Aliquot) IsEmpty() bool {
	for _, m := range a.moles {
		if !m.IsEmpty() {
			return false
		}
	}
	return true
}
