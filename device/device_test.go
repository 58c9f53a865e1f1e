package device

import (
	"testing"

	"github.com/ic10vm/simulator/gas"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/network"
)

// TestFiltrationModeZero is spec scenario 6's reset case: with Mode=0, the
// output network stays empty.
func TestFiltrationModeZero(t *testing.T) {
	input := network.New(1000)
	input.Mixture().AddGas(gas.Oxygen, 10, 300)
	output := network.New(1000)
	output2 := network.New(1000)

	f := NewFiltration(input, output, output2, []gas.Species{gas.Oxygen}, 1, 1)
	f.Update()

	if output.Mixture().TotalMoles() != 0 {
		t.Errorf("Output.TotalMoles() = %v, want 0 with Mode=0", output.Mixture().TotalMoles())
	}
}

// TestFiltrationModeOne is spec scenario 6's active case.
func TestFiltrationModeOne(t *testing.T) {
	input := network.New(1000)
	input.Mixture().AddGas(gas.Oxygen, 10, 300)
	output := network.New(1000)
	output2 := network.New(1000)

	f := NewFiltration(input, output, output2, []gas.Species{gas.Oxygen}, 1, 1)
	if err := f.WriteProperty(isa.LogicTypeMode, 1); err != nil {
		t.Fatalf("WriteProperty(Mode,1) returned error: %v", err)
	}
	f.Update()

	if output.Mixture().TotalMoles() <= 0 {
		t.Errorf("Output.TotalMoles() = %v, want > 0 with Mode=1", output.Mixture().TotalMoles())
	}
}

func TestFiltrationRoutesNonFilteredToWaste(t *testing.T) {
	input := network.New(1000)
	input.Mixture().AddGas(gas.Oxygen, 5, 300)
	input.Mixture().AddGas(gas.Nitrogen, 5, 300)
	output := network.New(1000)
	output2 := network.New(1000)

	f := NewFiltration(input, output, output2, []gas.Species{gas.Oxygen}, 1, 1)
	f.WriteProperty(isa.LogicTypeMode, 1)
	f.Update()

	if output.Mixture().GetMoles(gas.Nitrogen) != 0 {
		t.Errorf("Output should carry no Nitrogen, got %v", output.Mixture().GetMoles(gas.Nitrogen))
	}
	if output2.Mixture().GetMoles(gas.Nitrogen) <= 0 {
		t.Errorf("Output2 (waste) should carry the unfiltered Nitrogen")
	}
}

func TestPropertyRegistryPanicsOnDuplicateLogicType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate LogicType registration")
		}
	}()
	type fakeDevice struct{}
	NewPropertyRegistry([]PropertyDescriptor[fakeDevice]{
		{LogicType: isa.LogicTypeMode, Readable: true},
		{LogicType: isa.LogicTypeMode, Readable: true},
	})
}

func TestPropertyRegistryUnknownAndNotWritable(t *testing.T) {
	input := network.New(1000)
	output := network.New(1000)
	output2 := network.New(1000)
	f := NewFiltration(input, output, output2, nil, 1, 1)

	if _, err := f.ReadProperty(isa.LogicType(9999)); err == nil {
		t.Errorf("expected error reading unknown LogicType")
	}
	if err := f.WriteProperty(isa.LogicTypePressureInput, 5); err == nil {
		t.Errorf("expected error writing a read-only LogicType")
	}
}

func TestAirConditionerModeZeroResetsProcessed(t *testing.T) {
	input := network.New(1000)
	input.Mixture().AddGas(gas.Oxygen, 10, 310)
	output := network.New(1000)
	output2 := network.New(1000)

	ac := NewAirConditioner(input, output, output2, nil, nil, 2, 2)
	ac.Update()
	if got, _ := ac.ReadProperty(isa.LogicTypeRatioOutput); got != 0 {
		t.Errorf("processedMolesLastTick = %v, want 0 with Mode=0", got)
	}
}

func TestGasPipeRupturesOverMaxPressure(t *testing.T) {
	p := NewGasPipe(3, 3)
	p.Network.Mixture().AddGas(gas.Oxygen, 1_000_000, 400)
	if !p.CheckRupture() {
		t.Errorf("expected rupture at extreme pressure")
	}
}
