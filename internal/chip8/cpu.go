package chip8

import (
	"math/rand"
	"time"
)

// CPU executes the instruction stream. Memory, registers,
// display and keypad are wired in by the machine; the cpu
// itself only carries the rng and the key wait latch.
type CPU struct {
	mem  ReadWriter
	regs *Registers
	disp *Display
	keys *Keypad

	rng *rand.Rand

	waiting  bool
	waitReg  uint8
	waitKeys [numKeys]bool
}

func NewCPU(mem ReadWriter, regs *Registers, disp *Display, keys *Keypad) *CPU {
	return &CPU{
		mem:  mem,
		regs: regs,
		disp: disp,
		keys: keys,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Step runs a single instruction. While the cpu waits for a
// key press it only polls the keypad and returns.
func (c *CPU) Step() error {
	if c.waiting {
		c.checkWaitKey()
		return nil
	}
	return c.execute(decode(c.fetch()))
}

func (c *CPU) fetch() uint16 {
	hi := c.mem.Read8(c.regs.pc)
	lo := c.mem.Read8(c.regs.pc + 1)
	c.regs.pc += 2
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) execute(op opcode) error {
	switch op.group {
	case 0x0:
		switch op.kk {
		case 0xE0:
			c.cls()
		case 0xEE:
			return c.ret()
		default:
			return c.unknown(op)
		}
	case 0x1:
		c.jp(op)
	case 0x2:
		return c.call(op)
	case 0x3:
		c.seVxKK(op)
	case 0x4:
		c.sneVxKK(op)
	case 0x5:
		if op.n != 0x0 {
			return c.unknown(op)
		}
		c.seVxVy(op)
	case 0x6:
		c.ldVxKK(op)
	case 0x7:
		c.addVxKK(op)
	case 0x8:
		return c.executeALU(op)
	case 0x9:
		if op.n != 0x0 {
			return c.unknown(op)
		}
		c.sneVxVy(op)
	case 0xA:
		c.ldI(op)
	case 0xB:
		c.jpV0(op)
	case 0xC:
		c.rnd(op)
	case 0xD:
		return c.drw(op)
	case 0xE:
		switch op.kk {
		case 0x9E:
			return c.skp(op)
		case 0xA1:
			return c.sknp(op)
		default:
			return c.unknown(op)
		}
	case 0xF:
		return c.executeMisc(op)
	}
	return nil
}

func (c *CPU) executeALU(op opcode) error {
	switch op.n {
	case 0x0:
		c.ldVxVy(op)
	case 0x1:
		c.or(op)
	case 0x2:
		c.and(op)
	case 0x3:
		c.xor(op)
	case 0x4:
		c.addVxVy(op)
	case 0x5:
		c.sub(op)
	case 0x6:
		c.shr(op)
	case 0x7:
		c.subn(op)
	case 0xE:
		c.shl(op)
	default:
		return c.unknown(op)
	}
	return nil
}

func (c *CPU) executeMisc(op opcode) error {
	switch op.kk {
	case 0x07:
		c.ldVxDT(op)
	case 0x0A:
		c.ldVxK(op)
	case 0x15:
		c.ldDTVx(op)
	case 0x18:
		c.ldSTVx(op)
	case 0x1E:
		c.addIVx(op)
	case 0x29:
		c.ldFVx(op)
	case 0x33:
		c.ldBVx(op)
	case 0x55:
		c.ldMemVx(op)
	case 0x65:
		c.ldVxMem(op)
	default:
		return c.unknown(op)
	}
	return nil
}

func (c *CPU) unknown(op opcode) error {
	// pc has already advanced past the word.
	return &UnknownOpcodeError{Opcode: op.word, Addr: c.regs.pc - 2}
}

func (c *CPU) skipNext() {
	c.regs.pc += 2
}

// setVF writes the flag register. Arithmetic handlers call it
// after storing the result, so the flag wins when x is F.
func (c *CPU) setVF(flag bool) {
	c.regs.v[0xF] = 0
	if flag {
		c.regs.v[0xF] = 1
	}
}

// checkWaitKey resumes execution on a fresh key press: a key
// that is down now but was up the last time the cpu looked.
func (c *CPU) checkWaitKey() {
	current := c.keys.state()
	for code := range current {
		if current[code] && !c.waitKeys[code] {
			c.regs.v[c.waitReg] = uint8(code)
			c.waiting = false
			return
		}
	}
	c.waitKeys = current
}

func (c *CPU) reset() {
	c.waiting = false
	c.waitReg = 0
	c.waitKeys = [numKeys]bool{}
}

func (c *CPU) cls() {
	c.disp.Clear()
}

func (c *CPU) ret() error {
	addr, err := c.regs.Pop()
	if err != nil {
		return err
	}
	c.regs.pc = addr
	return nil
}

func (c *CPU) jp(op opcode) {
	c.regs.pc = op.nnn
}

func (c *CPU) call(op opcode) error {
	if err := c.regs.Push(c.regs.pc); err != nil {
		return err
	}
	c.regs.pc = op.nnn
	return nil
}

func (c *CPU) seVxKK(op opcode) {
	if c.regs.v[op.x] == op.kk {
		c.skipNext()
	}
}

func (c *CPU) sneVxKK(op opcode) {
	if c.regs.v[op.x] != op.kk {
		c.skipNext()
	}
}

func (c *CPU) seVxVy(op opcode) {
	if c.regs.v[op.x] == c.regs.v[op.y] {
		c.skipNext()
	}
}

func (c *CPU) sneVxVy(op opcode) {
	if c.regs.v[op.x] != c.regs.v[op.y] {
		c.skipNext()
	}
}

func (c *CPU) ldVxKK(op opcode) {
	c.regs.v[op.x] = op.kk
}

func (c *CPU) addVxKK(op opcode) {
	c.regs.v[op.x] += op.kk
}

func (c *CPU) ldVxVy(op opcode) {
	c.regs.v[op.x] = c.regs.v[op.y]
}

func (c *CPU) or(op opcode) {
	c.regs.v[op.x] |= c.regs.v[op.y]
}

func (c *CPU) and(op opcode) {
	c.regs.v[op.x] &= c.regs.v[op.y]
}

func (c *CPU) xor(op opcode) {
	c.regs.v[op.x] ^= c.regs.v[op.y]
}

func (c *CPU) addVxVy(op opcode) {
	sum := uint16(c.regs.v[op.x]) + uint16(c.regs.v[op.y])
	c.regs.v[op.x] = uint8(sum)
	c.setVF(sum > 0xFF)
}

func (c *CPU) sub(op opcode) {
	noBorrow := c.regs.v[op.x] > c.regs.v[op.y]
	c.regs.v[op.x] -= c.regs.v[op.y]
	c.setVF(noBorrow)
}

func (c *CPU) shr(op opcode) {
	bit := c.regs.v[op.x] & 0x1
	c.regs.v[op.x] >>= 1
	c.setVF(bit > 0)
}

func (c *CPU) subn(op opcode) {
	noBorrow := c.regs.v[op.y] > c.regs.v[op.x]
	c.regs.v[op.x] = c.regs.v[op.y] - c.regs.v[op.x]
	c.setVF(noBorrow)
}

func (c *CPU) shl(op opcode) {
	bit := c.regs.v[op.x] & 0x80
	c.regs.v[op.x] <<= 1
	c.setVF(bit > 0)
}

func (c *CPU) ldI(op opcode) {
	c.regs.i = op.nnn
}

func (c *CPU) jpV0(op opcode) {
	c.regs.pc = op.nnn + uint16(c.regs.v[0x0])
}

func (c *CPU) rnd(op opcode) {
	c.regs.v[op.x] = uint8(c.rng.Intn(0x100)) & op.kk
}

func (c *CPU) drw(op opcode) error {
	rows := make([]uint8, op.n)
	for k := range rows {
		rows[k] = c.mem.Read8(c.regs.i + uint16(k))
	}
	collision := c.disp.DrawSprite(c.regs.v[op.x], c.regs.v[op.y], rows)
	c.setVF(collision)
	return nil
}

func (c *CPU) skp(op opcode) error {
	pressed, err := c.keys.IsPressed(c.regs.v[op.x])
	if err != nil {
		return err
	}
	if pressed {
		c.skipNext()
	}
	return nil
}

func (c *CPU) sknp(op opcode) error {
	pressed, err := c.keys.IsPressed(c.regs.v[op.x])
	if err != nil {
		return err
	}
	if !pressed {
		c.skipNext()
	}
	return nil
}

func (c *CPU) ldVxDT(op opcode) {
	c.regs.v[op.x] = c.regs.dt
}

// ldVxK latches the wait state. The keypad snapshot makes the
// cpu resume only on a key that goes down after this point.
func (c *CPU) ldVxK(op opcode) {
	c.waiting = true
	c.waitReg = op.x
	c.waitKeys = c.keys.state()
}

func (c *CPU) ldDTVx(op opcode) {
	c.regs.dt = c.regs.v[op.x]
}

func (c *CPU) ldSTVx(op opcode) {
	c.regs.st = c.regs.v[op.x]
}

func (c *CPU) addIVx(op opcode) {
	c.regs.i += uint16(c.regs.v[op.x])
}

func (c *CPU) ldFVx(op opcode) {
	c.regs.i = fontAddr + uint16(c.regs.v[op.x]&0xF)*glyphSizeBytes
}

func (c *CPU) ldBVx(op opcode) {
	v := c.regs.v[op.x]
	c.mem.Write8(c.regs.i, v/100)
	c.mem.Write8(c.regs.i+1, v/10%10)
	c.mem.Write8(c.regs.i+2, v%10)
}

func (c *CPU) ldMemVx(op opcode) {
	for idx := uint8(0); idx <= op.x; idx++ {
		c.mem.Write8(c.regs.i+uint16(idx), c.regs.v[idx])
	}
}

func (c *CPU) ldVxMem(op opcode) {
	for idx := uint8(0); idx <= op.x; idx++ {
		c.regs.v[idx] = c.mem.Read8(c.regs.i + uint16(idx))
	}
}
