package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble renders the loaded rom as assembly lines keyed
// by address. Words that match no instruction come out as "???".
func (ch *Chip8) Disassemble() map[uint16]string {
	lines := make(map[uint16]string, len(ch.rom)/2)
	for off := 0; off+1 < len(ch.rom); off += 2 {
		addr := romAddr + uint16(off)
		w := uint16(ch.rom[off])<<8 | uint16(ch.rom[off+1])
		lines[addr] = fmt.Sprintf("$%04X: %s", addr, formatWord(w))
	}
	return lines
}

func formatWord(w uint16) string {
	instr := lookupInstruction(w)
	if instr == nil {
		return "???"
	}
	params := formatParams(instr.Name, decode(w))
	if params == "" {
		return instr.Name
	}
	return instr.Name + " " + params
}

func lookupInstruction(w uint16) *chip8.Instruction {
	for _, op := range chip8.Opcodes[w>>12] {
		if op.Info.Mask&w == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

func formatParams(name string, op opcode) string {
	switch name {
	case chip8.Jp.Name:
		if op.group == 0xB {
			return fmt.Sprintf("V0, $%03X", op.nnn)
		}
		return fmt.Sprintf("$%03X", op.nnn)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", op.nnn)
	case chip8.Se.Name, chip8.Sne.Name:
		if op.group == 0x3 || op.group == 0x4 {
			return fmt.Sprintf("V%X, $%02X", op.x, op.kk)
		}
		return fmt.Sprintf("V%X, V%X", op.x, op.y)
	case chip8.Ld.Name:
		return formatLoadParams(op)
	case chip8.Add.Name:
		switch op.group {
		case 0x7:
			return fmt.Sprintf("V%X, $%02X", op.x, op.kk)
		case 0x8:
			return fmt.Sprintf("V%X, V%X", op.x, op.y)
		}
		return fmt.Sprintf("I, V%X", op.x)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", op.x, op.y)
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", op.x)
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", op.x, op.kk)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", op.x, op.y, op.n)
	}
	return ""
}

func formatLoadParams(op opcode) string {
	switch op.group {
	case 0x6:
		return fmt.Sprintf("V%X, $%02X", op.x, op.kk)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", op.x, op.y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", op.nnn)
	}
	switch op.kk {
	case 0x07:
		return fmt.Sprintf("V%X, DT", op.x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", op.x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", op.x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", op.x)
	case 0x29:
		return fmt.Sprintf("F, V%X", op.x)
	case 0x33:
		return fmt.Sprintf("B, V%X", op.x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", op.x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", op.x)
	}
	return ""
}
