package device

import (
	"github.com/ic10vm/simulator/chem"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/network"
)

// GasPipe is a single fixed-volume atmospheric network section that flags
// itself ruptured once its internal pressure exceeds
// chem.MaxPressureGasPipe.
type GasPipe struct {
	Network    *network.Network
	Ruptured   bool
	prefabHash uint32
	nameHash   uint32
	registry   *PropertyRegistry[GasPipe]
}

// NewGasPipe creates a gas pipe section with the standard PipeVolume.
func NewGasPipe(prefabHash, nameHash uint32) *GasPipe {
	p := &GasPipe{
		Network:    network.New(chem.PipeVolume),
		prefabHash: prefabHash,
		nameHash:   nameHash,
	}
	p.registry = NewPropertyRegistry([]PropertyDescriptor[GasPipe]{
		ReadOnly(isa.LogicTypePressureInput, func(p *GasPipe) float64 {
			return p.Network.Mixture().Pressure()
		}),
		ReadOnly(isa.LogicTypeError, func(p *GasPipe) float64 {
			if p.CheckRupture() {
				return 1
			}
			return 0
		}),
	})
	return p
}

// CheckRupture flags the pipe as ruptured once its internal pressure
// exceeds the section's rating; reported to the driver, repair is out of
// scope per spec.md §4.9.
func (p *GasPipe) CheckRupture() bool {
	if p.Network.Mixture().Pressure() > chem.MaxPressureGasPipe {
		p.Ruptured = true
	}
	return p.Ruptured
}

func (p *GasPipe) ReadProperty(lt isa.LogicType) (float64, error) {
	return p.registry.Read(p, lt)
}
func (p *GasPipe) WriteProperty(lt isa.LogicType, v float64) error {
	return p.registry.Write(p, lt, v)
}
func (p *GasPipe) ReadSlotProperty(int, isa.LogicType) (float64, error) { return 0, errUnknownSlot }
func (p *GasPipe) WriteSlotProperty(int, isa.LogicType, float64) error  { return errUnknownSlot }
func (p *GasPipe) ReadReagent(float64, float64) float64                { return 0 }
func (p *GasPipe) PrefabHash() uint32                                  { return p.prefabHash }
func (p *GasPipe) NameHash() uint32                                    { return p.nameHash }

// LiquidPipe is the liquid analog of GasPipe, using LiquidPipeVolume and
// MaxPressureLiquidPipe.
type LiquidPipe struct {
	Network    *network.Network
	Ruptured   bool
	prefabHash uint32
	nameHash   uint32
	registry   *PropertyRegistry[LiquidPipe]
}

// NewLiquidPipe creates a liquid pipe section with the standard
// LiquidPipeVolume.
func NewLiquidPipe(prefabHash, nameHash uint32) *LiquidPipe {
	p := &LiquidPipe{
		Network:    network.New(chem.LiquidPipeVolume),
		prefabHash: prefabHash,
		nameHash:   nameHash,
	}
	p.registry = NewPropertyRegistry([]PropertyDescriptor[LiquidPipe]{
		ReadOnly(isa.LogicTypePressureInput, func(p *LiquidPipe) float64 {
			return p.Network.Mixture().Pressure()
		}),
		ReadOnly(isa.LogicTypeError, func(p *LiquidPipe) float64 {
			if p.CheckRupture() {
				return 1
			}
			return 0
		}),
	})
	return p
}

// CheckRupture is the liquid-pipe analog of GasPipe.CheckRupture.
func (p *LiquidPipe) CheckRupture() bool {
	if p.Network.Mixture().Pressure() > chem.MaxPressureLiquidPipe {
		p.Ruptured = true
	}
	return p.Ruptured
}

func (p *LiquidPipe) ReadProperty(lt isa.LogicType) (float64, error) {
	return p.registry.Read(p, lt)
}
func (p *LiquidPipe) WriteProperty(lt isa.LogicType, v float64) error {
	return p.registry.Write(p, lt, v)
}
func (p *LiquidPipe) ReadSlotProperty(int, isa.LogicType) (float64, error) { return 0, errUnknownSlot }
func (p *LiquidPipe) WriteSlotProperty(int, isa.LogicType, float64) error  { return errUnknownSlot }
func (p *LiquidPipe) ReadReagent(float64, float64) float64                { return 0 }
func (p *LiquidPipe) PrefabHash() uint32                                  { return p.prefabHash }
func (p *LiquidPipe) NameHash() uint32                                    { return p.nameHash }
