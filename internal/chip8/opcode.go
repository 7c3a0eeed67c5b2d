package chip8

// opcode is a decoded instruction word.
type opcode struct {
	word uint16

	group uint8  // bits 15-12
	x     uint8  // bits 11-8
	y     uint8  // bits 7-4
	n     uint8  // bits 3-0
	kk    uint8  // bits 7-0
	nnn   uint16 // bits 11-0
}

func decode(word uint16) opcode {
	return opcode{
		word:  word,
		group: uint8(word >> 12),
		x:     uint8(word >> 8 & 0xF),
		y:     uint8(word >> 4 & 0xF),
		n:     uint8(word & 0xF),
		kk:    uint8(word & 0xFF),
		nnn:   word & 0xFFF,
	}
}
