package chip8

import "math/rand"

// Chip8 wires memory, registers, display, keypad and cpu
// into a whole machine.
type Chip8 struct {
	mem  *Memory
	regs *Registers
	disp *Display
	keys *Keypad
	cpu  *CPU

	rom []byte
}

type Option func(*Chip8) error

// WithSeed makes the rnd instruction deterministic.
func WithSeed(seed int64) Option {
	return func(ch *Chip8) error {
		ch.cpu.rng = rand.New(rand.NewSource(seed))
		return nil
	}
}

func New(opts ...Option) (*Chip8, error) {
	mem := NewMemory()
	regs := NewRegisters()
	disp := NewDisplay()
	keys := NewKeypad()

	ch := &Chip8{
		mem:  mem,
		regs: regs,
		disp: disp,
		keys: keys,
		cpu:  NewCPU(mem, regs, disp, keys),
	}
	for _, opt := range opts {
		if err := opt(ch); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

// LoadROM powers the machine on and loads the rom into the
// program area. A rom that does not fit leaves the machine
// powered on with nothing loaded.
func (ch *Chip8) LoadROM(rom []byte) error {
	ch.powerOn()
	if err := ch.mem.LoadROM(rom); err != nil {
		ch.rom = nil
		return err
	}
	ch.rom = append(ch.rom[:0], rom...)
	return nil
}

// Reset restores the power-on state and reloads the current rom.
func (ch *Chip8) Reset() {
	ch.powerOn()
	if len(ch.rom) > 0 {
		// the rom fit the last time, so the reload cannot fail.
		_ = ch.mem.LoadROM(ch.rom)
	}
}

func (ch *Chip8) powerOn() {
	ch.mem.clear()
	ch.regs.reset()
	ch.disp.Clear()
	ch.keys.reset()
	ch.cpu.reset()
}

// Step executes a single instruction.
func (ch *Chip8) Step() error {
	return ch.cpu.Step()
}

// Tick advances the delay and sound timers one step toward
// zero. Call it at 60 Hz.
func (ch *Chip8) Tick() {
	if ch.regs.dt > 0 {
		ch.regs.dt--
	}
	if ch.regs.st > 0 {
		ch.regs.st--
	}
}

// SetKey sets the pressed state of a keypad key.
func (ch *Chip8) SetKey(code uint8, pressed bool) error {
	return ch.keys.SetKey(code, pressed)
}

// IsPressed reports whether a keypad key is held down.
func (ch *Chip8) IsPressed(code uint8) (bool, error) {
	return ch.keys.IsPressed(code)
}

// IsOn reports whether the display pixel at x, y is lit.
func (ch *Chip8) IsOn(x, y int) bool {
	return ch.disp.IsOn(x, y)
}

func (ch *Chip8) DelayTimer() uint8 {
	return ch.regs.dt
}

func (ch *Chip8) SoundTimer() uint8 {
	return ch.regs.st
}

// DebugInfo is a register snapshot for the debug overlay.
type DebugInfo struct {
	PC uint16
	I  uint16
	SP uint8
	DT uint8
	ST uint8
	V  [numRegs]uint8

	Waiting bool
}

func (ch *Chip8) DebugInfo() DebugInfo {
	return DebugInfo{
		PC:      ch.regs.pc,
		I:       ch.regs.i,
		SP:      ch.regs.sp,
		DT:      ch.regs.dt,
		ST:      ch.regs.st,
		V:       ch.regs.v,
		Waiting: ch.cpu.waiting,
	}
}
