package chip

import (
	"math"

	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
)

// Tick advances the chip by one simulated tick per the state machine of
// §4.7. A halted chip is a no-op; its device still answers reads.
func (c *Chip) Tick() error {
	switch c.state {
	case Sleeping:
		c.sleepTicksRemaining--
		if c.sleepTicksRemaining > 0 {
			return nil
		}
		c.state = Running
	case Yielded:
		c.state = Running
	case HardHalt:
		return nil
	}

	c.executedThisTick = 0
	for c.state == Running {
		if c.executedThisTick >= c.budget {
			err := &simerr.RuntimeError{Line: c.pc, Reason: simerr.ErrBudgetExceeded}
			c.fail(err)
			return err
		}
		if err := c.step(); err != nil {
			c.fail(err)
			return err
		}
		c.executedThisTick++
		c.totalExecuted++
	}
	return nil
}

func (c *Chip) fail(err error) {
	c.state = HardHalt
	c.lastError = err
	c.lastErrorLine = c.pc
}

// step decodes and executes the instruction at the current PC, then
// advances the PC by one line unless execute performed a control
// transfer. Falling off the end of the program wraps the PC back to the
// first instruction, the documented convention for a chip with no
// explicit halt at the end of its source.
func (c *Chip) step() error {
	idx, ok := c.lineIndex[c.pc]
	if !ok {
		if len(c.program.Instructions) == 0 {
			c.state = HardHalt
			return nil
		}
		c.pc = c.program.Instructions[0].SourceLine
		idx, ok = c.lineIndex[c.pc]
		if !ok {
			return &simerr.RuntimeError{Line: c.pc, Reason: simerr.ErrInvalidBranchTarget}
		}
	}
	ins := c.program.Instructions[idx].Instruction
	next, err := c.execute(ins)
	if err != nil {
		return &simerr.RuntimeError{Line: ins.SourceLine, Reason: err}
	}
	if next == 0 {
		c.pc = c.followingLine(idx)
	} else {
		c.pc = next
	}
	return nil
}

// followingLine returns the source line of the instruction immediately
// after the one at program index idx, or wraps to the first instruction
// if idx was the last.
func (c *Chip) followingLine(idx int) int {
	if idx+1 < len(c.program.Instructions) {
		return c.program.Instructions[idx+1].SourceLine
	}
	return c.program.Instructions[0].SourceLine
}

// execute runs one instruction and returns the next PC to use, or 0 to
// mean "advance to the following line as usual".
func (c *Chip) execute(ins isa.Instruction) (int, error) {
	switch ins.Op {
	case isa.MOVE:
		v, err := c.readValue(ins.Args[1])
		if err != nil {
			return 0, err
		}
		return 0, c.writeValue(ins.Args[0], v)

	case isa.ALIAS:
		c.aliases[ins.Args[0].Name] = ins.Args[1]
		return 0, nil

	case isa.DEFINE:
		v, err := c.readValue(ins.Args[1])
		if err != nil {
			return 0, err
		}
		c.defines[ins.Args[0].Name] = v
		return 0, nil

	case isa.ADD, isa.SUB, isa.MUL, isa.DIV, isa.MOD, isa.POW, isa.MAX, isa.MIN:
		return 0, c.execBinaryArith(ins)

	case isa.SQRT, isa.ABS, isa.EXP, isa.LOG, isa.CEIL, isa.FLOOR, isa.ROUND, isa.TRUNC,
		isa.SIN, isa.COS, isa.TAN, isa.ASIN, isa.ACOS, isa.ATAN:
		return 0, c.execUnaryMath(ins)

	case isa.ATAN2:
		return 0, c.execBinaryArith(ins)

	case isa.AND, isa.OR, isa.XOR, isa.NOR:
		return 0, c.execBinaryBitwise(ins)
	case isa.NOT:
		return 0, c.execUnaryBitwise(ins)
	case isa.SLL, isa.SLA, isa.SRL, isa.SRA:
		return 0, c.execShift(ins)
	case isa.EXT:
		return 0, c.execExt(ins)
	case isa.INS:
		return 0, c.execIns(ins)

	case isa.SLT, isa.SGT, isa.SLE, isa.SGE, isa.SEQ, isa.SNE:
		return 0, c.execCompareSet(ins)
	case isa.SLTZ, isa.SGTZ, isa.SLEZ, isa.SGEZ, isa.SEQZ, isa.SNEZ, isa.SNAN, isa.SNANZ:
		return 0, c.execCompareZeroSet(ins)

	case isa.SAP, isa.SNA:
		return 0, c.execApproxCompare(ins)
	case isa.SAPZ, isa.SNAZ:
		return 0, c.execApproxCompareZero(ins)

	case isa.SDSE, isa.SDNS:
		return 0, c.execDeviceStateDetect(ins)

	case isa.BEQ, isa.BNE, isa.BLT, isa.BGT, isa.BLE, isa.BGE:
		return c.execBranchAbsolute(ins)
	case isa.BEQZ, isa.BNEZ, isa.BLTZ, isa.BGTZ, isa.BLEZ, isa.BGEZ, isa.BNAN:
		return c.execBranchAbsoluteZero(ins)
	case isa.BAP, isa.BNA:
		return c.execBranchApprox(ins)
	case isa.BAPZ, isa.BNAZ:
		return c.execBranchApproxZero(ins)
	case isa.BDSE, isa.BDNS:
		return c.execBranchDeviceState(ins)

	case isa.BREQ, isa.BRNE, isa.BRLT, isa.BRGT, isa.BRLE, isa.BRGE:
		return c.execBranchRelative(ins)
	case isa.BREQZ, isa.BRNEZ, isa.BRLTZ, isa.BRGTZ, isa.BRLEZ, isa.BRGEZ:
		return c.execBranchRelativeZero(ins)

	case isa.BEQAL, isa.BNEAL, isa.BLTAL, isa.BGTAL:
		return c.execBranchAndLink(ins)
	case isa.BEQZAL, isa.BNEZAL:
		return c.execBranchAndLinkZero(ins)

	case isa.J:
		return c.resolveLineOperand(ins.Args[0])
	case isa.JR:
		v, err := c.readValue(ins.Args[0])
		if err != nil {
			return 0, err
		}
		target := c.pc + int(v)
		if _, ok := c.lineIndex[target]; !ok {
			return 0, simerr.ErrInvalidBranchTarget
		}
		return target, nil
	case isa.JAL:
		target, err := c.resolveLineOperand(ins.Args[0])
		if err != nil {
			return 0, err
		}
		c.registers[isa.ReturnAddressRegister] = float64(c.nextLineAfterCurrent())
		return target, nil

	case isa.PUSH:
		v, err := c.readValue(ins.Args[0])
		if err != nil {
			return 0, err
		}
		return 0, c.push(v)
	case isa.POP:
		v, err := c.pop()
		if err != nil {
			return 0, err
		}
		return 0, c.writeValue(ins.Args[0], v)
	case isa.PEEK:
		v, err := c.peek()
		if err != nil {
			return 0, err
		}
		return 0, c.writeValue(ins.Args[0], v)
	case isa.POKE:
		i, err := c.readValue(ins.Args[0])
		if err != nil {
			return 0, err
		}
		v, err := c.readValue(ins.Args[1])
		if err != nil {
			return 0, err
		}
		return 0, c.poke(int(i), v)

	case isa.L:
		return 0, c.execLoad(ins)
	case isa.S:
		return 0, c.execStore(ins)
	case isa.LS:
		return 0, c.execLoadSlot(ins)
	case isa.SS:
		return 0, c.execStoreSlot(ins)
	case isa.LR:
		return 0, c.execLoadReagent(ins)

	case isa.LD:
		return 0, c.execLoadByID(ins)
	case isa.SD:
		return 0, c.execStoreByID(ins)

	case isa.LB:
		return 0, c.execLoadBatch(ins)
	case isa.SB:
		return 0, c.execStoreBatch(ins)
	case isa.LBN:
		return 0, c.execLoadBatchNamed(ins)
	case isa.SBN:
		return 0, c.execStoreBatchNamed(ins)
	case isa.LBS:
		return 0, c.execLoadBatchSlot(ins)
	case isa.SBS:
		return 0, c.execStoreBatchSlot(ins)
	case isa.LBNS:
		return 0, c.execLoadBatchNamedSlot(ins)

	case isa.GET:
		return 0, c.execGet(ins)
	case isa.PUT:
		return 0, c.execPut(ins)
	case isa.GETD:
		return 0, c.execGetByID(ins)
	case isa.PUTD:
		return 0, c.execPutByID(ins)

	case isa.YIELD:
		c.state = Yielded
		return c.resumeLine(), nil
	case isa.SLEEP:
		d, err := c.readValue(ins.Args[0])
		if err != nil {
			return 0, err
		}
		c.sleepTicksRemaining = int(math.Ceil(d))
		c.state = Sleeping
		return c.resumeLine(), nil
	case isa.HCF:
		c.state = HardHalt
		return c.pc, nil

	case isa.SELECT:
		cond, err := c.readValue(ins.Args[1])
		if err != nil {
			return 0, err
		}
		var chosen isa.Operand
		if cond != 0 {
			chosen = ins.Args[2]
		} else {
			chosen = ins.Args[3]
		}
		v, err := c.readValue(chosen)
		if err != nil {
			return 0, err
		}
		return 0, c.writeValue(ins.Args[0], v)

	case isa.LERP:
		a, err := c.readValue(ins.Args[1])
		if err != nil {
			return 0, err
		}
		b, err := c.readValue(ins.Args[2])
		if err != nil {
			return 0, err
		}
		t, err := c.readValue(ins.Args[3])
		if err != nil {
			return 0, err
		}
		return 0, c.writeValue(ins.Args[0], a+(b-a)*t)

	case isa.RAND:
		return 0, c.writeValue(ins.Args[0], c.prng.Float64())

	case isa.CLR:
		return 0, c.execClear(ins)
	case isa.CLRD:
		return 0, c.execClearByID(ins)
	case isa.RMAP:
		return 0, c.execReadReagentMap(ins)
	}

	return 0, simerr.ErrUnboundAlias
}

// nextLineAfterCurrent returns the line that would run after the
// currently-executing instruction under normal fall-through.
func (c *Chip) nextLineAfterCurrent() int {
	idx := c.lineIndex[c.pc]
	return c.followingLine(idx)
}

// resumeLine returns the line a yielded or sleeping chip resumes at: the
// following instruction, or its own line if it is the program's last
// instruction. Unlike nextLineAfterCurrent/followingLine, it never wraps
// to the top of the program — a yield/sleep at the end of a source file
// parks the chip there instead of looping back to line 1.
func (c *Chip) resumeLine() int {
	idx := c.lineIndex[c.pc]
	if idx+1 < len(c.program.Instructions) {
		return c.program.Instructions[idx+1].SourceLine
	}
	return c.pc
}

// resolveLineOperand reads an absolute line-number operand and validates
// it resolves to an instruction in the program.
func (c *Chip) resolveLineOperand(op isa.Operand) (int, error) {
	v, err := c.readValue(op)
	if err != nil {
		return 0, err
	}
	line := int(v)
	if _, ok := c.lineIndex[line]; !ok {
		return 0, simerr.ErrInvalidBranchTarget
	}
	return line, nil
}
