package chip

import (
	"math"

	"github.com/ic10vm/simulator/isa"
	"github.com/ic10vm/simulator/simerr"
)

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// toInt64 rounds a float register value to its nearest integer
// representation, the convention the bitwise/integer family uses when
// reinterpreting an f64 register as an i64.
func toInt64(v float64) int64 {
	return int64(math.Round(v))
}

func (c *Chip) readArg(ins isa.Instruction, i int) (float64, error) {
	return c.readValue(ins.Args[i])
}

// execBinaryArith handles the two-operand-in/one-operand-out arithmetic
// family: dest, a, b.
func (c *Chip) execBinaryArith(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	b, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	var r float64
	switch ins.Op {
	case isa.ADD:
		r = a + b
	case isa.SUB:
		r = a - b
	case isa.MUL:
		r = a * b
	case isa.DIV:
		r = a / b
	case isa.MOD:
		r = math.Mod(math.Mod(a, b)+b, b)
	case isa.POW:
		r = math.Pow(a, b)
	case isa.MAX:
		r = math.Max(a, b)
	case isa.MIN:
		r = math.Min(a, b)
	case isa.ATAN2:
		r = math.Atan2(a, b)
	}
	return c.writeValue(ins.Args[0], r)
}

// execUnaryMath handles the one-operand-in/one-operand-out math family:
// dest, a.
func (c *Chip) execUnaryMath(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	var r float64
	switch ins.Op {
	case isa.SQRT:
		r = math.Sqrt(a)
	case isa.ABS:
		r = math.Abs(a)
	case isa.EXP:
		r = math.Exp(a)
	case isa.LOG:
		r = math.Log(a)
	case isa.CEIL:
		r = math.Ceil(a)
	case isa.FLOOR:
		r = math.Floor(a)
	case isa.ROUND:
		r = math.Round(a)
	case isa.TRUNC:
		r = math.Trunc(a)
	case isa.SIN:
		r = math.Sin(a)
	case isa.COS:
		r = math.Cos(a)
	case isa.TAN:
		r = math.Tan(a)
	case isa.ASIN:
		r = math.Asin(a)
	case isa.ACOS:
		r = math.Acos(a)
	case isa.ATAN:
		r = math.Atan(a)
	}
	return c.writeValue(ins.Args[0], r)
}

func (c *Chip) execBinaryBitwise(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	b, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	ia, ib := toInt64(a), toInt64(b)
	var r int64
	switch ins.Op {
	case isa.AND:
		r = ia & ib
	case isa.OR:
		r = ia | ib
	case isa.XOR:
		r = ia ^ ib
	case isa.NOR:
		r = ^(ia | ib)
	}
	return c.writeValue(ins.Args[0], float64(r))
}

func (c *Chip) execUnaryBitwise(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	return c.writeValue(ins.Args[0], float64(^toInt64(a)))
}

func (c *Chip) execShift(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	n, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	shift := uint(toInt64(n) & 63)
	ia := toInt64(a)
	var r int64
	switch ins.Op {
	case isa.SLL, isa.SLA:
		r = ia << shift
	case isa.SRL:
		r = int64(uint64(ia) >> shift)
	case isa.SRA:
		r = ia >> shift
	}
	return c.writeValue(ins.Args[0], float64(r))
}

// execExt extracts a bitfield: dest, value, start, length.
func (c *Chip) execExt(ins isa.Instruction) error {
	v, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	start, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	length, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	shift := uint(toInt64(start) & 63)
	mask := int64(1)<<uint(toInt64(length)) - 1
	r := (toInt64(v) >> shift) & mask
	return c.writeValue(ins.Args[0], float64(r))
}

// execIns inserts the low `length` bits of value into dest at bit
// position start, leaving the rest of dest's current bits untouched:
// dest, value, start, length.
func (c *Chip) execIns(ins isa.Instruction) error {
	cur, err := c.readValue(ins.Args[0])
	if err != nil {
		return err
	}
	v, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	start, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	length, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	shift := uint(toInt64(start) & 63)
	mask := (int64(1)<<uint(toInt64(length))-1) << shift
	r := (toInt64(cur) &^ mask) | ((toInt64(v) << shift) & mask)
	return c.writeValue(ins.Args[0], float64(r))
}

func (c *Chip) execCompareSet(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	b, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	var r bool
	switch ins.Op {
	case isa.SLT:
		r = a < b
	case isa.SGT:
		r = a > b
	case isa.SLE:
		r = a <= b
	case isa.SGE:
		r = a >= b
	case isa.SEQ:
		r = a == b
	case isa.SNE:
		r = a != b
	}
	return c.writeValue(ins.Args[0], boolToFloat(r))
}

func (c *Chip) execCompareZeroSet(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	var r bool
	switch ins.Op {
	case isa.SLTZ:
		r = a < 0
	case isa.SGTZ:
		r = a > 0
	case isa.SLEZ:
		r = a <= 0
	case isa.SGEZ:
		r = a >= 0
	case isa.SEQZ:
		r = a == 0
	case isa.SNEZ:
		r = a != 0
	case isa.SNAN, isa.SNANZ:
		r = math.IsNaN(a)
	}
	return c.writeValue(ins.Args[0], boolToFloat(r))
}

// approxWithin returns true when a and b agree to within tol scaled by
// the largest operand magnitude (never less than 1).
func approxWithin(a, b, tol float64) bool {
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
	return math.Abs(a-b) <= tol*scale
}

func (c *Chip) execApproxCompare(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	b, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	tol, err := c.readArg(ins, 3)
	if err != nil {
		return err
	}
	within := approxWithin(a, b, tol)
	if ins.Op == isa.SNA {
		within = !within
	}
	return c.writeValue(ins.Args[0], boolToFloat(within))
}

func (c *Chip) execApproxCompareZero(ins isa.Instruction) error {
	a, err := c.readArg(ins, 1)
	if err != nil {
		return err
	}
	tol, err := c.readArg(ins, 2)
	if err != nil {
		return err
	}
	within := approxWithin(a, 0, tol)
	if ins.Op == isa.SNAZ {
		within = !within
	}
	return c.writeValue(ins.Args[0], boolToFloat(within))
}

func (c *Chip) execDeviceStateDetect(ins isa.Instruction) error {
	_, err := c.resolveDevice(ins.Args[1])
	present := err == nil
	var r bool
	switch ins.Op {
	case isa.SDSE:
		r = present
	case isa.SDNS:
		r = !present
	}
	return c.writeValue(ins.Args[0], boolToFloat(r))
}

// --- Branch families ---

func compareTaken(op isa.OpCode, a, b float64) bool {
	switch op {
	case isa.BEQ, isa.BREQ:
		return a == b
	case isa.BNE, isa.BRNE:
		return a != b
	case isa.BLT, isa.BRLT:
		return a < b
	case isa.BGT, isa.BRGT:
		return a > b
	case isa.BLE, isa.BRLE:
		return a <= b
	case isa.BGE, isa.BRGE:
		return a >= b
	case isa.BEQAL:
		return a == b
	case isa.BNEAL:
		return a != b
	case isa.BLTAL:
		return a < b
	case isa.BGTAL:
		return a > b
	}
	return false
}

func compareZeroTaken(op isa.OpCode, a float64) bool {
	switch op {
	case isa.BEQZ, isa.BREQZ:
		return a == 0
	case isa.BNEZ, isa.BRNEZ:
		return a != 0
	case isa.BLTZ, isa.BRLTZ:
		return a < 0
	case isa.BGTZ, isa.BRGTZ:
		return a > 0
	case isa.BLEZ, isa.BRLEZ:
		return a <= 0
	case isa.BGEZ, isa.BRGEZ:
		return a >= 0
	case isa.BNAN:
		return math.IsNaN(a)
	case isa.BEQZAL:
		return a == 0
	case isa.BNEZAL:
		return a != 0
	}
	return false
}

func (c *Chip) execBranchAbsolute(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	b, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	if !compareTaken(ins.Op, a, b) {
		return 0, nil
	}
	return c.resolveLineOperand(ins.Args[2])
}

func (c *Chip) execBranchAbsoluteZero(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	if !compareZeroTaken(ins.Op, a) {
		return 0, nil
	}
	return c.resolveLineOperand(ins.Args[1])
}

func (c *Chip) execBranchApprox(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	b, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	tol, err := c.readArg(ins, 2)
	if err != nil {
		return 0, err
	}
	within := approxWithin(a, b, tol)
	taken := within
	if ins.Op == isa.BNA {
		taken = !within
	}
	if !taken {
		return 0, nil
	}
	return c.resolveLineOperand(ins.Args[3])
}

func (c *Chip) execBranchApproxZero(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	tol, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	within := approxWithin(a, 0, tol)
	taken := within
	if ins.Op == isa.BNAZ {
		taken = !within
	}
	if !taken {
		return 0, nil
	}
	return c.resolveLineOperand(ins.Args[2])
}

func (c *Chip) execBranchDeviceState(ins isa.Instruction) (int, error) {
	_, err := c.resolveDevice(ins.Args[0])
	present := err == nil
	taken := present
	if ins.Op == isa.BDNS {
		taken = !present
	}
	if !taken {
		return 0, nil
	}
	return c.resolveLineOperand(ins.Args[1])
}

func (c *Chip) execBranchRelative(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	b, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	if !compareTaken(ins.Op, a, b) {
		return 0, nil
	}
	off, err := c.readArg(ins, 2)
	if err != nil {
		return 0, err
	}
	target := c.pc + int(off)
	if _, ok := c.lineIndex[target]; !ok {
		return 0, simerr.ErrInvalidBranchTarget
	}
	return target, nil
}

func (c *Chip) execBranchRelativeZero(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	if !compareZeroTaken(ins.Op, a) {
		return 0, nil
	}
	off, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	target := c.pc + int(off)
	if _, ok := c.lineIndex[target]; !ok {
		return 0, simerr.ErrInvalidBranchTarget
	}
	return target, nil
}

func (c *Chip) execBranchAndLink(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	b, err := c.readArg(ins, 1)
	if err != nil {
		return 0, err
	}
	if !compareTaken(ins.Op, a, b) {
		return 0, nil
	}
	target, err := c.resolveLineOperand(ins.Args[2])
	if err != nil {
		return 0, err
	}
	c.registers[isa.ReturnAddressRegister] = float64(c.nextLineAfterCurrent())
	return target, nil
}

func (c *Chip) execBranchAndLinkZero(ins isa.Instruction) (int, error) {
	a, err := c.readArg(ins, 0)
	if err != nil {
		return 0, err
	}
	if !compareZeroTaken(ins.Op, a) {
		return 0, nil
	}
	target, err := c.resolveLineOperand(ins.Args[1])
	if err != nil {
		return 0, err
	}
	c.registers[isa.ReturnAddressRegister] = float64(c.nextLineAfterCurrent())
	return target, nil
}
