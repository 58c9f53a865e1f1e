package chip

import (
	"testing"

	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/isa"
)

// fakeStore is a minimal device.Store for executor tests; it wires at most
// one device per addressing mode, which is all the chip-level tests need.
type fakeStore struct {
	pins     map[int]device.Device
	byID     map[uint32]device.Device
	byPrefab map[uint32][]device.Device
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pins:     make(map[int]device.Device),
		byID:     make(map[uint32]device.Device),
		byPrefab: make(map[uint32][]device.Device),
	}
}

func (s *fakeStore) DeviceAt(pin int) (device.Device, bool) {
	d, ok := s.pins[pin]
	return d, ok
}
func (s *fakeStore) DeviceByID(id uint32) (device.Device, bool) {
	d, ok := s.byID[id]
	return d, ok
}
func (s *fakeStore) DevicesWithPrefabHash(hash uint32) []device.Device {
	return s.byPrefab[hash]
}
func (s *fakeStore) DevicesWithPrefabAndNameHash(prefabHash, nameHash uint32) []device.Device {
	return s.byPrefab[prefabHash]
}

func mustParse(t *testing.T, source string) *isa.Program {
	t.Helper()
	prog, err := isa.Parse(source)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	return prog
}

// TestExecutorArithmeticYield is scenario 4: move/add then yield leaves r0=3,
// state Yielded, pc at the yield line.
func TestExecutorArithmeticYield(t *testing.T) {
	prog := mustParse(t, "move r0 1\nadd r0 r0 2\nyield\n")
	c := New(prog, newFakeStore(), 1)

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick() returned error: %v", err)
	}
	if got := c.Register(0); got != 3 {
		t.Errorf("r0 = %v, want 3", got)
	}
	if c.State() != Yielded {
		t.Errorf("State() = %v, want Yielded", c.State())
	}
	if c.PC() != 3 {
		t.Errorf("PC() = %v, want 3", c.PC())
	}
}

// TestExecutorBranchAndLink is scenario 5: jal to line 3 sets ra to the
// line after the jal, runs move r0 42, then j back to line 2 (hcf).
func TestExecutorBranchAndLink(t *testing.T) {
	prog := mustParse(t, "jal 3\nhcf\nmove r0 42\nj 2\n")
	c := New(prog, newFakeStore(), 1)

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick() returned error: %v", err)
	}
	if got := c.Register(isa.ReturnAddressRegister); got != 2 {
		t.Errorf("ra = %v, want 2", got)
	}
	if got := c.Register(0); got != 42 {
		t.Errorf("r0 = %v, want 42", got)
	}
	if c.State() != HardHalt {
		t.Errorf("State() = %v, want HardHalt", c.State())
	}
}

// TestExecutorBudgetExceededHardHalts is the runaway-loop case: an
// unconditional backward jump that never yields must trip the per-tick
// instruction budget and hard-halt with a RuntimeError.
func TestExecutorBudgetExceededHardHalts(t *testing.T) {
	prog := mustParse(t, "move r0 1\nj 1\n")
	c := New(prog, newFakeStore(), 1)
	c.SetBudget(8)

	err := c.Tick()
	if err == nil {
		t.Fatalf("Tick() returned nil error, want budget-exceeded RuntimeError")
	}
	if c.State() != HardHalt {
		t.Errorf("State() = %v, want HardHalt", c.State())
	}
	if c.LastError() == nil {
		t.Errorf("LastError() = nil, want non-nil")
	}
}

// TestExecutorLabelResolvesToNextInstruction exercises branch-to-label
// resolution: the label must target the next real instruction line, not
// the literal next source line.
func TestExecutorLabelResolvesToNextInstruction(t *testing.T) {
	prog := mustParse(t, "j start\n# a comment\nstart:\nmove r0 7\nyield\n")
	c := New(prog, newFakeStore(), 1)

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick() returned error: %v", err)
	}
	if got := c.Register(0); got != 7 {
		t.Errorf("r0 = %v, want 7", got)
	}
}

// TestExecutorDeviceLoadStore wires a fake device on pin 0 and exercises
// l/s through the pin-addressed device path.
func TestExecutorDeviceLoadStore(t *testing.T) {
	store := newFakeStore()
	store.pins[0] = &fakePropertyDevice{}
	prog := mustParse(t, "s d0 Setting 5\nl r0 d0 Setting\nyield\n")
	c := New(prog, store, 1)

	if err := c.Tick(); err != nil {
		t.Fatalf("Tick() returned error: %v", err)
	}
	if got := c.Register(0); got != 5 {
		t.Errorf("r0 = %v, want 5", got)
	}
}

// TestExecutorSleepCountsDownTicks exercises sleep: the chip stays
// Sleeping across ticks until the duration elapses.
func TestExecutorSleepCountsDownTicks(t *testing.T) {
	prog := mustParse(t, "sleep 1\nmove r1 9\nyield\n")
	c := New(prog, newFakeStore(), 1)

	if err := c.Tick(); err != nil {
		t.Fatalf("first Tick() returned error: %v", err)
	}
	if c.State() != Sleeping {
		t.Errorf("State() after sleep = %v, want Sleeping", c.State())
	}
	if err := c.Tick(); err != nil {
		t.Fatalf("second Tick() returned error: %v", err)
	}
	if c.State() != Running && c.State() != Yielded {
		t.Errorf("State() after sleep elapses = %v, want Running or Yielded", c.State())
	}
}

// TestExecutorDeterministicRand confirms two chips seeded identically
// produce the same rand sequence.
func TestExecutorDeterministicRand(t *testing.T) {
	prog := mustParse(t, "rand r0\nyield\n")
	c1 := New(prog, newFakeStore(), 42)
	c2 := New(prog, newFakeStore(), 42)
	c1.Tick()
	c2.Tick()
	if c1.Register(0) != c2.Register(0) {
		t.Errorf("rand diverged across identically-seeded chips: %v != %v", c1.Register(0), c2.Register(0))
	}
}

// fakePropertyDevice is a minimal device.Device backed by a single
// read-write float, enough to exercise l/s/ls/ss dispatch.
type fakePropertyDevice struct {
	value float64
	slots map[int]float64
}

func (d *fakePropertyDevice) ReadProperty(lt isa.LogicType) (float64, error) {
	return d.value, nil
}
func (d *fakePropertyDevice) WriteProperty(lt isa.LogicType, v float64) error {
	d.value = v
	return nil
}
func (d *fakePropertyDevice) ReadSlotProperty(slot int, lt isa.LogicType) (float64, error) {
	if d.slots == nil {
		return 0, nil
	}
	return d.slots[slot], nil
}
func (d *fakePropertyDevice) WriteSlotProperty(slot int, lt isa.LogicType, v float64) error {
	if d.slots == nil {
		d.slots = make(map[int]float64)
	}
	d.slots[slot] = v
	return nil
}
func (d *fakePropertyDevice) ReadReagent(mode, reagentHash float64) float64 { return 0 }
func (d *fakePropertyDevice) PrefabHash() uint32                           { return 1 }
func (d *fakePropertyDevice) NameHash() uint32                             { return 1 }
