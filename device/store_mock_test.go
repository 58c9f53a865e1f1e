package device

import (
	"testing"

	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
	"go.uber.org/mock/gomock"
)

// settingValueDevice is a minimal Device stub that reports one fixed
// value under LogicTypeSetting, used to give MockStore-returned slices
// something real for Aggregate to read through.
type settingValueDevice struct {
	value float64
}

func (d *settingValueDevice) ReadProperty(lt isa.LogicType) (float64, error) {
	if lt != isa.LogicTypeSetting {
		return 0, simerr.ErrUnknownProperty
	}
	return d.value, nil
}

func (d *settingValueDevice) WriteProperty(lt isa.LogicType, v float64) error {
	if lt != isa.LogicTypeSetting {
		return simerr.ErrUnknownProperty
	}
	d.value = v
	return nil
}

func (d *settingValueDevice) ReadSlotProperty(slot int, lt isa.LogicType) (float64, error) {
	return 0, simerr.ErrUnknownProperty
}

func (d *settingValueDevice) WriteSlotProperty(slot int, lt isa.LogicType, v float64) error {
	return simerr.ErrUnknownProperty
}

func (d *settingValueDevice) ReadReagent(mode, reagentHash float64) float64 { return 0 }
func (d *settingValueDevice) PrefabHash() uint32                           { return 7 }
func (d *settingValueDevice) NameHash() uint32                             { return 0 }

// TestAggregateOverMockedStoreDevices confirms Aggregate only depends on
// the Device interface, so a MockStore-sourced device slice feeds it
// exactly like a real world.Store's.
func TestAggregateOverMockedStoreDevices(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := &settingValueDevice{value: 10}
	b := &settingValueDevice{value: 30}

	store := NewMockStore(ctrl)
	store.EXPECT().DevicesWithPrefabHash(uint32(7)).Return([]Device{a, b})

	devices := store.DevicesWithPrefabHash(7)
	if got := Aggregate(isa.BatchModeSum, devices, isa.LogicTypeSetting); got != 40 {
		t.Errorf("Aggregate(Sum) = %v, want 40", got)
	}
	if got := Aggregate(isa.BatchModeAverage, devices, isa.LogicTypeSetting); got != 20 {
		t.Errorf("Aggregate(Average) = %v, want 20", got)
	}
}

// TestDeviceAtAndByIDMocks exercises the pin- and id-addressed lookup
// methods the chip executor's L/LD instruction family calls through
// device.Store.
func TestDeviceAtAndByIDMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := &settingValueDevice{value: 5}

	store := NewMockStore(ctrl)
	store.EXPECT().DeviceAt(0).Return(Device(d), true)
	store.EXPECT().DeviceByID(uint32(99)).Return(Device(nil), false)

	got, ok := store.DeviceAt(0)
	if !ok || got != Device(d) {
		t.Fatalf("DeviceAt(0) = (%v, %v), want (d, true)", got, ok)
	}
	if _, ok := store.DeviceByID(99); ok {
		t.Fatalf("DeviceByID(99) = ok, want not found")
	}
}
