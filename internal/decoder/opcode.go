// Package decoder implements the pure, total byte-to-instruction mapping
// for the non-prefixed page of the Sharp LR35902 instruction set (§4.1).
//
// Decode is deliberately narrow: it only recognizes the 8-bit/16-bit load
// family and the 8-bit/16-bit ALU family, which is where nearly all of the
// decoder's bit-layout complexity lives. Control flow (JR/JP/CALL/RET/RST),
// the CB-prefix escape, NOP/STOP/HALT/DI/EI/SCF/CCF and the accumulator
// rotates belong to the CPU's execution engine, out of scope here (§1) —
// Decode reports them as Unknown, the same way it reports the eleven truly
// undocumented opcodes. A caller executing a full instruction set pairs
// this decoder with its own handling of that wider byte range.
package decoder

// Kind tags which instruction form an Opcode represents. The payload
// fields on Opcode that are meaningful vary by Kind; see the field
// comments on Opcode.
type Kind uint8

const (
	Unknown Kind = iota

	// 8-bit load family
	LdRR     // target, source
	LdRImm   // target
	LdRMem   // target, Mem16
	LdMemR   // Mem16, source
	LdMemImm // Pair (always HL)
	LdhRead  // target (always A), Mem8
	LdhWrite // Mem8, source (always A)

	// 16-bit load family
	Ld16RImm      // Pair
	Ld16MemSp     // (no payload: (a16) <- SP)
	Ld16SpHL      // (no payload: SP <- HL)
	Push          // Pair
	Pop           // Pair
	Ld16HLSPSigned // (no payload: HL <- SP+e8)

	// 8-bit ALU family
	AluR    // Alu, source
	AluImm  // Alu
	AluMem  // Alu (always against (HL))
	IncR    // target
	IncMem  // (no payload: INC (HL))
	DecR    // target
	DecMem  // (no payload: DEC (HL))
	Daa     // (no payload)
	Cpl     // (no payload)

	// 16-bit ALU family
	Add16HL       // Pair
	Add16SPSigned // (no payload: SP += e8)
	Inc16R        // Pair
	Dec16R        // Pair
)

// Opcode is the decoded form of a single non-prefixed opcode byte. It is a
// tagged union modeled as one small struct: Kind selects which of the
// following fields are meaningful, avoiding a class hierarchy for what is,
// at bottom, 26 instruction variants (plus Unknown) of a handful of operand
// shapes.
type Opcode struct {
	Kind   Kind
	Target Register
	Source Register
	Pair   RegisterPair
	Mem16  MemAddress16
	Mem8   MemAddress8
	Alu    Alu
}

// Decode maps a single opcode byte to its Opcode representation. It is a
// pure, total function: every byte in [0,255] returns without panicking or
// touching any shared state (§8 property 1, 3).
func Decode(op byte) Opcode {
	switch {
	case isLdRR(op):
		return Opcode{Kind: LdRR, Target: midReg(op), Source: lowReg(op)}

	case op == 0x06 || op == 0x0E || op == 0x16 || op == 0x1E || op == 0x26 || op == 0x2E || op == 0x3E:
		return Opcode{Kind: LdRImm, Target: midReg(op)}

	case isLdRMemHL(op):
		return Opcode{Kind: LdRMem, Target: midReg(op), Mem16: MemAddress16{Kind: Addr16Register, Pair: PairHL}}

	case op == 0x0A || op == 0x1A:
		return Opcode{Kind: LdRMem, Target: RegA, Mem16: MemAddress16{Kind: Addr16Register, Pair: pairFromBits(op)}}

	case op == 0x2A:
		return Opcode{Kind: LdRMem, Target: RegA, Mem16: MemAddress16{Kind: Addr16RegisterIncrease, Pair: PairHL}}
	case op == 0x3A:
		return Opcode{Kind: LdRMem, Target: RegA, Mem16: MemAddress16{Kind: Addr16RegisterDecrease, Pair: PairHL}}
	case op == 0xFA:
		return Opcode{Kind: LdRMem, Target: RegA, Mem16: MemAddress16{Kind: Addr16Immediate}}

	case op >= 0x70 && op <= 0x77 && op != 0x76:
		return Opcode{Kind: LdMemR, Mem16: MemAddress16{Kind: Addr16Register, Pair: PairHL}, Source: lowReg(op)}

	case op == 0x02 || op == 0x12:
		return Opcode{Kind: LdMemR, Mem16: MemAddress16{Kind: Addr16Register, Pair: pairFromBits(op)}, Source: RegA}
	case op == 0x22:
		return Opcode{Kind: LdMemR, Mem16: MemAddress16{Kind: Addr16RegisterIncrease, Pair: PairHL}, Source: RegA}
	case op == 0x32:
		return Opcode{Kind: LdMemR, Mem16: MemAddress16{Kind: Addr16RegisterDecrease, Pair: PairHL}, Source: RegA}
	case op == 0xEA:
		return Opcode{Kind: LdMemR, Mem16: MemAddress16{Kind: Addr16Immediate}, Source: RegA}

	case op == 0x36:
		return Opcode{Kind: LdMemImm, Pair: PairHL}

	case op == 0xF2:
		return Opcode{Kind: LdhRead, Target: RegA, Mem8: MemAddress8{Kind: Addr8Register}}
	case op == 0xF0:
		return Opcode{Kind: LdhRead, Target: RegA, Mem8: MemAddress8{Kind: Addr8Immediate}}
	case op == 0xE2:
		return Opcode{Kind: LdhWrite, Source: RegA, Mem8: MemAddress8{Kind: Addr8Register}}
	case op == 0xE0:
		return Opcode{Kind: LdhWrite, Source: RegA, Mem8: MemAddress8{Kind: Addr8Immediate}}

	case op == 0x01 || op == 0x11 || op == 0x21 || op == 0x31:
		return Opcode{Kind: Ld16RImm, Pair: pairFromBits(op)}
	case op == 0x08:
		return Opcode{Kind: Ld16MemSp}
	case op == 0xF9:
		return Opcode{Kind: Ld16SpHL}

	case op == 0xC5 || op == 0xD5 || op == 0xE5 || op == 0xF5:
		return Opcode{Kind: Push, Pair: pushPopPair(op)}
	case op == 0xC1 || op == 0xD1 || op == 0xE1 || op == 0xF1:
		return Opcode{Kind: Pop, Pair: pushPopPair(op)}

	case isAluR(op):
		return Opcode{Kind: AluR, Alu: aluFromBits(op), Source: lowReg(op)}
	case isAluImm(op):
		return Opcode{Kind: AluImm, Alu: aluFromBits(op)}
	case isAluMem(op):
		return Opcode{Kind: AluMem, Alu: aluFromBits(op)}

	case isIncR(op):
		return Opcode{Kind: IncR, Target: midReg(op)}
	case op == 0x34:
		return Opcode{Kind: IncMem}
	case isDecR(op):
		return Opcode{Kind: DecR, Target: midReg(op)}
	case op == 0x35:
		return Opcode{Kind: DecMem}

	case op == 0x27:
		return Opcode{Kind: Daa}
	case op == 0x2F:
		return Opcode{Kind: Cpl}

	case op == 0x09 || op == 0x19 || op == 0x29 || op == 0x39:
		return Opcode{Kind: Add16HL, Pair: pairFromBits(op)}
	case op == 0xE8:
		return Opcode{Kind: Add16SPSigned}
	case op == 0x03 || op == 0x13 || op == 0x23 || op == 0x33:
		return Opcode{Kind: Inc16R, Pair: pairFromBits(op)}
	case op == 0x0B || op == 0x1B || op == 0x2B || op == 0x3B:
		return Opcode{Kind: Dec16R, Pair: pairFromBits(op)}
	case op == 0xF8:
		return Opcode{Kind: Ld16HLSPSigned}

	default:
		return Opcode{Kind: Unknown}
	}
}

// Cycles returns the M-cycle cost (4 dot-clocks each) of the given decoded
// instruction, per the table in §4.1. The cost depends only on the
// variant and, for a handful of variants, on the addressing sub-kind.
func Cycles(op Opcode) uint8 {
	switch op.Kind {
	case Unknown, LdRR, AluR, IncR, DecR, Daa, Cpl:
		return 1
	case LdRImm, AluImm, AluMem, Ld16SpHL, Add16HL, Inc16R, Dec16R:
		return 2
	case LdRMem:
		if op.Mem16.Kind == Addr16Immediate {
			return 4
		}
		return 2
	case LdMemR:
		if op.Mem16.Kind == Addr16Immediate {
			return 4
		}
		return 2
	case LdhRead, LdhWrite:
		if op.Mem8.Kind == Addr8Immediate {
			return 3
		}
		return 2
	case LdMemImm, Ld16RImm, Pop, IncMem, DecMem:
		return 3
	case Push, Add16SPSigned, Ld16HLSPSigned:
		return 4
	case Ld16MemSp:
		return 5
	default:
		return 1
	}
}

// midReg extracts the yyy field (bits 5..3) as a Register.
func midReg(op byte) Register { return registerFromBits((op & 0x38) >> 3) }

// lowReg extracts the zzz field (bits 2..0) as a Register.
func lowReg(op byte) Register { return registerFromBits(op & 0x07) }

// pushPopPair substitutes AF for the slot that would otherwise decode to SP,
// which is how Push/Pop borrow the pp field's third slot (§4.1).
func pushPopPair(op byte) RegisterPair {
	if p := pairFromBits(op); p == PairSP {
		return PairAF
	} else {
		return p
	}
}

func isLdRR(op byte) bool {
	if op < 0x40 || op > 0x7F {
		return false
	}
	if op == 0x76 {
		return false // HALT, not a load
	}
	if op >= 0x70 && op <= 0x77 {
		return false // the (HL) memory row: yyy == 6, decoded as LdMemR
	}
	// excludes the (HL) memory column: zzz == 6
	return op&0x07 != 6
}

func isLdRMemHL(op byte) bool {
	switch op {
	case 0x46, 0x4E, 0x56, 0x5E, 0x66, 0x6E, 0x7E:
		return true
	default:
		return false
	}
}

func isAluR(op byte) bool {
	if op < 0x80 || op > 0xBF {
		return false
	}
	return op&0x07 != 6
}

func isAluImm(op byte) bool {
	switch op {
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE:
		return true
	default:
		return false
	}
}

func isAluMem(op byte) bool {
	switch op {
	case 0x86, 0x8E, 0x96, 0x9E, 0xA6, 0xAE, 0xB6, 0xBE:
		return true
	default:
		return false
	}
}

func isIncR(op byte) bool {
	switch op {
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x3C:
		return true
	default:
		return false
	}
}

func isDecR(op byte) bool {
	switch op {
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x3D:
		return true
	default:
		return false
	}
}
