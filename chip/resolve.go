package chip

import (
	"github.com/ic10vm/simulator/device"
	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
)

// resolveAlias looks an Alias operand up against the alias table first,
// then the defines table, then the program's labels. A name that is also
// a LogicType or BatchMode token never reaches it: the parser turns such
// tokens into Immediate operands, so they cannot be used as alias names.
func (c *Chip) resolveAlias(name string) (isa.Operand, error) {
	if op, ok := c.aliases[name]; ok {
		return op, nil
	}
	if v, ok := c.defines[name]; ok {
		return isa.Immediate(v), nil
	}
	if line, ok := c.program.Labels[name]; ok {
		return isa.Immediate(float64(line)), nil
	}
	return isa.Operand{}, simerr.ErrUnboundAlias
}

// readValue reads the current value denoted by an operand: a register
// read or a literal immediate. Alias operands are resolved recursively. A
// DevicePin operand has no value of its own and yields ErrBadDevicePin.
func (c *Chip) readValue(op isa.Operand) (float64, error) {
	switch op.Kind {
	case isa.KindRegister:
		return c.registers[op.Index], nil
	case isa.KindImmediate:
		return op.Value, nil
	case isa.KindAlias:
		resolved, err := c.resolveAlias(op.Name)
		if err != nil {
			return 0, err
		}
		return c.readValue(resolved)
	case isa.KindDevicePin:
		return 0, simerr.ErrBadDevicePin
	default:
		return 0, simerr.ErrBadDevicePin
	}
}

// writeValue writes v to the destination denoted by op, which must
// resolve (directly or via alias) to a register.
func (c *Chip) writeValue(op isa.Operand, v float64) error {
	switch op.Kind {
	case isa.KindRegister:
		c.registers[op.Index] = v
		return nil
	case isa.KindAlias:
		resolved, err := c.resolveAlias(op.Name)
		if err != nil {
			return err
		}
		return c.writeValue(resolved, v)
	default:
		return simerr.ErrUnboundAlias
	}
}

// resolveDevice resolves a DevicePin or Alias-to-device operand to the
// Device wired at that pin.
func (c *Chip) resolveDevice(op isa.Operand) (device.Device, error) {
	switch op.Kind {
	case isa.KindDevicePin:
		d, ok := c.store.DeviceAt(op.Index)
		if !ok {
			return nil, simerr.ErrBadDevicePin
		}
		return d, nil
	case isa.KindAlias:
		if op.Name == "db" {
			d, ok := c.store.DeviceAt(isa.OnboardDevicePin)
			if !ok {
				return nil, simerr.ErrBadDevicePin
			}
			return d, nil
		}
		resolved, err := c.resolveAlias(op.Name)
		if err != nil {
			return nil, err
		}
		return c.resolveDevice(resolved)
	default:
		return nil, simerr.ErrBadDevicePin
	}
}

// push writes v at sp and increments it.
func (c *Chip) push(v float64) error {
	sp := c.StackPointer()
	if sp < 0 || sp >= stackCapacity {
		return simerr.ErrStackOverflow
	}
	c.stack[sp] = v
	c.registers[isa.StackPointerRegister] = float64(sp + 1)
	return nil
}

// pop decrements sp then reads.
func (c *Chip) pop() (float64, error) {
	sp := c.StackPointer() - 1
	if sp < 0 {
		return 0, simerr.ErrStackUnderflow
	}
	c.registers[isa.StackPointerRegister] = float64(sp)
	return c.stack[sp], nil
}

// peek reads sp-1 without popping.
func (c *Chip) peek() (float64, error) {
	sp := c.StackPointer() - 1
	if sp < 0 || sp >= stackCapacity {
		return 0, simerr.ErrStackUnderflow
	}
	return c.stack[sp], nil
}

// poke overwrites stack[i].
func (c *Chip) poke(i int, v float64) error {
	if i < 0 || i >= stackCapacity {
		return simerr.ErrStackOverflow
	}
	c.stack[i] = v
	return nil
}
