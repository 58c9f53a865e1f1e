package world

import (
	"testing"

	"github.com/ic10vm/simulator/chip"
	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/gas"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/network"
)

// TestTickRunsChipThenDevice exercises the documented ordering: the chip's
// Mode=1 write must be visible to the Filtration device's Update() within
// the same tick.
func TestTickRunsChipThenDevice(t *testing.T) {
	input := network.New(1000)
	input.Mixture().AddGas(gas.Oxygen, 20, 300)
	output := network.New(1000)
	output2 := network.New(1000)

	f := device.NewFiltration(input, output, output2, []gas.Species{gas.Oxygen}, 1, 1)

	w := New()
	w.AddDevice(1, f)

	prog, err := isa.Parse("s d0 Mode 1\nyield\n")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	store := w.NewStore(map[int]DeviceId{0: 1})
	c := chip.New(prog, store, 1)
	w.AddChip(100, c)

	w.Tick()

	if output.Mixture().TotalMoles() <= 0 {
		t.Errorf("Output.TotalMoles() = %v, want > 0 after a tick enabling Mode", output.Mixture().TotalMoles())
	}
}

// TestCoupleEqualizesNetworksAfterDeviceUpdates confirms coupled networks
// equalize after the device-update phase of the same tick.
func TestCoupleEqualizesNetworksAfterDeviceUpdates(t *testing.T) {
	a := network.New(1000)
	a.Mixture().AddGas(gas.Oxygen, 100, 400)
	b := network.New(1000)
	b.Mixture().AddGas(gas.Oxygen, 10, 300)

	w := New()
	w.AddNetwork(1, a)
	w.AddNetwork(2, b)
	w.Couple(1, 2)

	w.Tick()

	pa, pb := a.Mixture().Pressure(), b.Mixture().Pressure()
	diff := pa - pb
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-2 {
		t.Errorf("pressures not equalized: %v vs %v", pa, pb)
	}
}

// TestDevicesWithPrefabHashIsDeterministic confirms batch lookups return
// devices in ascending DeviceId order regardless of registration order.
func TestDevicesWithPrefabHashIsDeterministic(t *testing.T) {
	w := New()
	p5, p2, p9 := device.NewGasPipe(42, 1), device.NewGasPipe(42, 1), device.NewGasPipe(42, 1)
	w.AddDevice(5, p5)
	w.AddDevice(2, p2)
	w.AddDevice(9, p9)

	store := w.NewStore(nil)
	devs := store.DevicesWithPrefabHash(42)
	if len(devs) != 3 {
		t.Fatalf("DevicesWithPrefabHash() returned %d devices, want 3", len(devs))
	}
	if devs[0] != device.Device(p2) || devs[1] != device.Device(p5) || devs[2] != device.Device(p9) {
		t.Errorf("DevicesWithPrefabHash() not in ascending DeviceId order (want ids 2, 5, 9)")
	}
}
