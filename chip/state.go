// Package chip implements the chip executor: registers, a fixed-capacity
// stack, device-pin dispatch, the per-tick instruction budget, and the
// big-switch instruction dispatcher (§4.7).
package chip

import (
	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
	"pgregory.net/rand"
)

// HaltState is the chip's coarse execution status, mirroring the
// Running/Stopped/Reverted status-byte pattern of the interpreter this
// module is modeled on.
type HaltState int

const (
	Running HaltState = iota
	Yielded
	Sleeping
	HardHalt
)

func (s HaltState) String() string {
	switch s {
	case Running:
		return "Running"
	case Yielded:
		return "Yielded"
	case Sleeping:
		return "Sleeping"
	case HardHalt:
		return "HardHalt"
	default:
		return "Unknown"
	}
}

// stackCapacity is the fixed f64 stack depth (source: 512).
const stackCapacity = 512

// DefaultBudget is the per-tick instruction budget (source: 128).
const DefaultBudget = 128

// Chip is one programmable microcontroller: registers, stack, program
// counter, alias/define tables, and the device pins it can see.
type Chip struct {
	registers [isa.NumRegisterSlots]float64
	stack     [stackCapacity]float64

	pc    int // 1-based source line of the next instruction to execute
	state HaltState

	sleepTicksRemaining int

	aliases map[string]isa.Operand
	defines map[string]float64

	program   *isa.Program
	lineIndex map[int]int // SourceLine -> index in program.Instructions

	budget           int
	executedThisTick int
	totalExecuted    int
	lastError        error
	lastErrorLine    int

	store device.Store
	prng  *rand.Rand
}

// New creates a Chip loaded with program, dispatching device I/O through
// store, with the default instruction budget and a PRNG seeded
// deterministically from seed.
func New(program *isa.Program, store device.Store, seed uint64) *Chip {
	c := &Chip{
		aliases: make(map[string]isa.Operand),
		defines: make(map[string]float64),
		program: program,
		budget:  DefaultBudget,
		store:   store,
		prng:    rand.New(rand.NewSource(seed)),
	}
	c.lineIndex = make(map[int]int, len(program.Instructions))
	for i, pi := range program.Instructions {
		c.lineIndex[pi.SourceLine] = i
	}
	if len(program.Instructions) > 0 {
		c.pc = program.Instructions[0].SourceLine
	}
	return c
}

// SetBudget overrides the per-tick instruction budget.
func (c *Chip) SetBudget(n int) { c.budget = n }

// State returns the chip's current HaltState.
func (c *Chip) State() HaltState { return c.state }

// PC returns the 1-based line the chip will execute next.
func (c *Chip) PC() int { return c.pc }

// Register reads register i (0..15 general, 16=sp, 17=ra).
func (c *Chip) Register(i int) float64 { return c.registers[i] }

// SetRegister writes register i.
func (c *Chip) SetRegister(i int, v float64) { c.registers[i] = v }

// StackPointer reads the sp register.
func (c *Chip) StackPointer() int { return int(c.registers[isa.StackPointerRegister]) }

// LastError returns the error that halted the chip, if any.
func (c *Chip) LastError() error { return c.lastError }

// TotalExecuted returns the cumulative instruction count across every
// Tick call so far, for reporting purposes.
func (c *Chip) TotalExecuted() int { return c.totalExecuted }
