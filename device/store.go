package device

import (
	"math"

	"github.com/ic10vm/simulator/isa"
)

// Device is the capability set the chip executor's device I/O family
// needs from any concrete device kind: read/write a LogicType, read/write
// a slotted LogicType (for devices with item inventories), answer reagent
// queries, and report the prefab hash used by batch device I/O.
type Device interface {
	ReadProperty(lt isa.LogicType) (float64, error)
	WriteProperty(lt isa.LogicType, v float64) error
	ReadSlotProperty(slot int, lt isa.LogicType) (float64, error)
	WriteSlotProperty(slot int, lt isa.LogicType, v float64) error
	ReadReagent(mode, reagentHash float64) float64
	PrefabHash() uint32
	NameHash() uint32
}

// Store is the world-provided lookup surface the chip executor's device
// instructions dispatch through. It resolves the three addressing modes
// the ISA supports: by pin (l/s/ls/ss/lr), by world-stable id (ld/sd),
// and by batch prefab-hash match (lb/sb/lbn/sbn/lbs/sbs/lbns).
type Store interface {
	// DeviceAt resolves a chip-local device pin (-1 is the onboard
	// device db, 0..5 are d0..d5) to the Device wired there.
	DeviceAt(pin int) (Device, bool)
	// DeviceByID resolves a world-stable device id.
	DeviceByID(id uint32) (Device, bool)
	// DevicesWithPrefabHash returns every device in the world whose
	// PrefabHash matches hash, for batch aggregation.
	DevicesWithPrefabHash(hash uint32) []Device
	// DevicesWithPrefabAndNameHash additionally filters by NameHash, for
	// the lbn/sbn/lbns family.
	DevicesWithPrefabAndNameHash(prefabHash, nameHash uint32) []Device
}

// Aggregate applies a isa.BatchMode reduction over the readable property
// lt across devices, per the empty-set policy documented in
// SPEC_FULL.md/DESIGN.md: Sum=0, Average=0, Minimum=+Inf, Maximum=-Inf.
func Aggregate(mode isa.BatchMode, devices []Device, lt isa.LogicType) float64 {
	switch mode {
	case isa.BatchModeSum:
		var sum float64
		for _, d := range devices {
			if v, err := d.ReadProperty(lt); err == nil {
				sum += v
			}
		}
		return sum
	case isa.BatchModeAverage:
		var sum float64
		var count int
		for _, d := range devices {
			if v, err := d.ReadProperty(lt); err == nil {
				sum += v
				count++
			}
		}
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	case isa.BatchModeMinimum:
		min := math.Inf(1)
		for _, d := range devices {
			if v, err := d.ReadProperty(lt); err == nil && v < min {
				min = v
			}
		}
		return min
	case isa.BatchModeMaximum:
		max := math.Inf(-1)
		for _, d := range devices {
			if v, err := d.ReadProperty(lt); err == nil && v > max {
				max = v
			}
		}
		return max
	default:
		return 0
	}
}
