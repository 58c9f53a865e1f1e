package prefab

import (
	"fmt"

	"github.com/ic10vm/simulator/gas"
)

// FilterSize is the closed set of filter item sizes, grounded on
// original_source/src/items/filter.rs's FilterSize enum.
type FilterSize int

const (
	FilterSmall FilterSize = iota
	FilterMedium
	FilterLarge
	FilterInfinite
)

func (s FilterSize) suffix() string {
	switch s {
	case FilterMedium:
		return "M"
	case FilterLarge:
		return "L"
	case FilterInfinite:
		return "Infinite"
	default:
		return ""
	}
}

func (s FilterSize) String() string {
	switch s {
	case FilterSmall:
		return "Small"
	case FilterMedium:
		return "Medium"
	case FilterLarge:
		return "Large"
	case FilterInfinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}

// filterGasName maps a gas.Species to the token the reference
// implementation's filter naming scheme uses. Every entry equals
// gas.Species.String(); Hydrogen has no entry.
var filterGasName = map[gas.Species]string{
	gas.Oxygen:        "Oxygen",
	gas.Nitrogen:      "Nitrogen",
	gas.CarbonDioxide:  "CarbonDioxide",
	gas.Volatiles:     "Volatiles",
	gas.Pollutant:     "Pollutant",
	gas.NitrousOxide:  "NitrousOxide",
	gas.Water:         "Water",
	gas.Steam:         "Steam",
}

// Filter is a gas-filtration consumable item: a gas-type target, a size
// class, and a quantity (0..MaxQuantity) consumed as the filter loads up.
type Filter struct {
	ID       int32
	GasType  gas.Species
	Size     FilterSize
	Quantity float64
}

// MaxFilterQuantity is the filter item's maximum quantity, fixed by the
// reference implementation at 100.
const MaxFilterQuantity = 100

// NewFilter creates a full-quantity filter for the given gas type and size.
func NewFilter(id int32, g gas.Species, size FilterSize) *Filter {
	return &Filter{ID: id, GasType: g, Size: size, Quantity: MaxFilterQuantity}
}

// SetQuantity sets the filter's remaining quantity, rejecting values above
// MaxFilterQuantity.
func (f *Filter) SetQuantity(q float64) bool {
	if q > MaxFilterQuantity {
		return false
	}
	f.Quantity = q
	return true
}

// PrefabHash returns this filter's prefab hash.
func (f *Filter) PrefabHash() uint32 {
	return FilterPrefabHash(f.GasType, f.Size)
}

// FilterPrefabHash computes the prefab hash for a gas-type/size
// combination, mirroring Filter::prefab_hash_for's "ItemGasFilter" + gas
// name + size-suffix naming scheme.
func FilterPrefabHash(g gas.Species, size FilterSize) uint32 {
	name, ok := filterGasName[g]
	if !ok {
		name = fmt.Sprintf("Species%d", int(g))
	}
	return Hash("ItemGasFilter" + name + size.suffix())
}
