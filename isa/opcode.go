// Package isa defines the closed instruction set: the OpCode enum, the
// Operand sum type, the Instruction table, and the assembly tokenizer and
// parser.
package isa

// OpCode identifies one mnemonic in the closed instruction set. The
// numeric values are internal to this implementation; they are never
// serialized and carry no meaning outside one process.
type OpCode uint16

const (
	// Data movement / aliasing
	MOVE OpCode = iota
	ALIAS
	DEFINE

	// Arithmetic
	ADD
	SUB
	MUL
	DIV
	MOD
	SQRT
	ABS
	EXP
	LOG
	POW
	MAX
	MIN
	CEIL
	FLOOR
	ROUND
	TRUNC

	// Trigonometry
	SIN
	COS
	TAN
	ASIN
	ACOS
	ATAN
	ATAN2

	// Bitwise / integer-family
	AND
	OR
	XOR
	NOR
	NOT
	SLL
	SLA
	SRL
	SRA
	EXT
	INS

	// Comparison-set
	SLT
	SGT
	SLE
	SGE
	SEQ
	SNE
	SLTZ
	SGTZ
	SLEZ
	SGEZ
	SEQZ
	SNEZ
	SNAN
	SNANZ

	// Approximate compare
	SAP
	SAPZ
	SNA
	SNAZ

	// Device-state detection
	SDSE
	SDNS

	// Branch absolute
	BEQ
	BNE
	BLT
	BGT
	BLE
	BGE
	BEQZ
	BNEZ
	BLTZ
	BGTZ
	BLEZ
	BGEZ
	BNAN
	BAP
	BAPZ
	BNA
	BNAZ
	BDSE
	BDNS

	// Branch relative (same predicates, offset instead of absolute line)
	BREQ
	BRNE
	BRLT
	BRGT
	BRLE
	BRGE
	BREQZ
	BRNEZ
	BRLTZ
	BRGTZ
	BRLEZ
	BRGEZ

	// Branch-and-link (absolute, ra := next PC)
	BEQAL
	BNEAL
	BLTAL
	BGTAL
	BEQZAL
	BNEZAL

	// Jump
	J
	JR
	JAL

	// Stack
	PUSH
	POP
	PEEK
	POKE

	// Device I/O
	L
	S
	LS
	SS
	LR

	// Id-based device I/O
	LD
	SD

	// Batch device I/O
	LB
	SB
	LBN
	SBN
	LBS
	SBS
	LBNS

	// Memory (stack-index addressed)
	GET
	PUT
	GETD
	PUTD

	// Special
	YIELD
	SLEEP
	HCF
	SELECT
	LERP
	RAND
	CLR
	CLRD
	RMAP

	numOpCodes
)

// NumOpCodes is the number of distinct opcodes in the closed set.
const NumOpCodes = int(numOpCodes)

var mnemonics = [numOpCodes]string{
	MOVE: "move", ALIAS: "alias", DEFINE: "define",
	ADD: "add", SUB: "sub", MUL: "mul", DIV: "div", MOD: "mod",
	SQRT: "sqrt", ABS: "abs", EXP: "exp", LOG: "log", POW: "pow",
	MAX: "max", MIN: "min", CEIL: "ceil", FLOOR: "floor", ROUND: "round", TRUNC: "trunc",
	SIN: "sin", COS: "cos", TAN: "tan", ASIN: "asin", ACOS: "acos", ATAN: "atan", ATAN2: "atan2",
	AND: "and", OR: "or", XOR: "xor", NOR: "nor", NOT: "not",
	SLL: "sll", SLA: "sla", SRL: "srl", SRA: "sra", EXT: "ext", INS: "ins",
	SLT: "slt", SGT: "sgt", SLE: "sle", SGE: "sge", SEQ: "seq", SNE: "sne",
	SLTZ: "sltz", SGTZ: "sgtz", SLEZ: "slez", SGEZ: "sgez", SEQZ: "seqz", SNEZ: "snez",
	SNAN: "snan", SNANZ: "snanz",
	SAP: "sap", SAPZ: "sapz", SNA: "sna", SNAZ: "snaz",
	SDSE: "sdse", SDNS: "sdns",
	BEQ: "beq", BNE: "bne", BLT: "blt", BGT: "bgt", BLE: "ble", BGE: "bge",
	BEQZ: "beqz", BNEZ: "bnez", BLTZ: "bltz", BGTZ: "bgtz", BLEZ: "blez", BGEZ: "bgez",
	BNAN: "bnan", BAP: "bap", BAPZ: "bapz", BNA: "bna", BNAZ: "bnaz",
	BDSE: "bdse", BDNS: "bdns",
	BREQ: "breq", BRNE: "brne", BRLT: "brlt", BRGT: "brgt", BRLE: "brle", BRGE: "brge",
	BREQZ: "breqz", BRNEZ: "brnez", BRLTZ: "brltz", BRGTZ: "brgtz", BRLEZ: "brlez", BRGEZ: "brgez",
	BEQAL: "beqal", BNEAL: "bneal", BLTAL: "bltal", BGTAL: "bgtal", BEQZAL: "beqzal", BNEZAL: "bnezal",
	J: "j", JR: "jr", JAL: "jal",
	PUSH: "push", POP: "pop", PEEK: "peek", POKE: "poke",
	L: "l", S: "s", LS: "ls", SS: "ss", LR: "lr",
	LD: "ld", SD: "sd",
	LB: "lb", SB: "sb", LBN: "lbn", SBN: "sbn", LBS: "lbs", SBS: "sbs", LBNS: "lbns",
	GET: "get", PUT: "put", GETD: "getd", PUTD: "putd",
	YIELD: "yield", SLEEP: "sleep", HCF: "hcf", SELECT: "select",
	LERP: "lerp", RAND: "rand", CLR: "clr", CLRD: "clrd", RMAP: "rmap",
}

func (op OpCode) String() string {
	if int(op) < 0 || int(op) >= NumOpCodes {
		return "UNKNOWN"
	}
	return mnemonics[op]
}

var mnemonicToOpCode = func() map[string]OpCode {
	m := make(map[string]OpCode, NumOpCodes)
	for i := 0; i < NumOpCodes; i++ {
		m[mnemonics[i]] = OpCode(i)
	}
	return m
}()

// LookupMnemonic returns the opcode for a lowercase mnemonic string.
func LookupMnemonic(name string) (OpCode, bool) {
	op, ok := mnemonicToOpCode[name]
	return op, ok
}
