package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/ic10vm/simulator/chip"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
	"github.com/ic10vm/simulator/world"
)

// RunCmd loads a single assembly program onto one chip with no wired
// devices and steps it for a fixed number of ticks, printing final
// register/stack state. Wiring a scene of networks and devices around the
// chip is left to callers embedding the world/device/network packages
// directly; this command is the CLI's documented *interface* surface
// (spec.md §1), not a scene-description format.
var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "run an assembly program on one chip for N ticks",
	ArgsUsage: "<program.ic10>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "ticks",
			Usage: "number of ticks to run",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "budget",
			Usage: "per-tick instruction budget",
			Value: chip.DefaultBudget,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the chip's random number generator",
			Value: 1,
		},
	},
}

func doRun(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return &simerr.ConfigError{Reason: "expected exactly one <program.ic10> argument"}
	}
	path := ctx.Args().First()

	source, err := os.ReadFile(path)
	if err != nil {
		return &simerr.ConfigError{Reason: fmt.Sprintf("reading %s: %v", path, err)}
	}

	prog, err := isa.Parse(string(source))
	if err != nil {
		return err
	}

	w := world.New()
	w.Logger = log.New(os.Stderr, "ic10vm: ", log.LstdFlags)
	store := w.NewStore(nil)
	c := chip.New(prog, store, ctx.Uint64("seed"))
	c.SetBudget(ctx.Int("budget"))
	w.AddChip(1, c)

	ticks := ctx.Int("ticks")
	for i := 0; i < ticks; i++ {
		w.Tick()
		if c.State() == chip.HardHalt && c.LastError() != nil {
			break
		}
	}

	printState(c)
	return c.LastError()
}

func printState(c *chip.Chip) {
	fmt.Printf("state=%s pc=%d\n", c.State(), c.PC())
	for i := 0; i < isa.NumGeneralRegisters; i++ {
		fmt.Printf("r%d=%v ", i, c.Register(i))
	}
	fmt.Println()
	fmt.Printf("sp=%v ra=%v\n", c.Register(isa.StackPointerRegister), c.Register(isa.ReturnAddressRegister))
	fmt.Printf("instructions executed: %s\n", unitconv.FormatPrefix(float64(c.TotalExecuted()), unitconv.SI, 1))
	if err := c.LastError(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// exitCodeFor maps an error returned from app.Run to the driver-level exit
// code documented in spec.md §6 (0 success, 1 parse, 2 runtime, 3 config).
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *isa.ParseError:
		return 1
	case *simerr.RuntimeError:
		return 2
	case *simerr.ConfigError:
		return 3
	default:
		return 1
	}
}
