package chip8

const (
	memSizeBytes = 0x1000

	romAddr  = uint16(0x200)
	addrMask = uint16(0x0FFF)
)

// ReadWriter is a byte-addressable memory.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Memory layout:
//
//	0x000-0x1FF: reserved for the interpreter
//	0x050-0x09F: built-in hex glyphs
//	0x200-0xFFF: program area
type Memory struct {
	mem [memSizeBytes]uint8
}

func NewMemory() *Memory {
	m := &Memory{}
	m.loadGlyphs()
	return m
}

// LoadROM copies the rom into the program area.
// The memory is not modified if the rom does not fit.
func (m *Memory) LoadROM(rom []byte) error {
	maxSize := memSizeBytes - int(romAddr)
	if len(rom) > maxSize {
		return &RomTooLargeError{Size: len(rom), Max: maxSize}
	}
	copy(m.mem[romAddr:], rom)
	return nil
}

// Read8 reads a byte. Addresses are masked to 12 bits,
// so out-of-range accesses wrap instead of failing.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.mem[addr&addrMask]
}

// Write8 writes a byte. Addresses are masked to 12 bits.
func (m *Memory) Write8(addr uint16, data uint8) {
	m.mem[addr&addrMask] = data
}

func (m *Memory) loadGlyphs() {
	copy(m.mem[fontAddr:], fontset[:])
}

func (m *Memory) clear() {
	m.mem = [memSizeBytes]uint8{}
	m.loadGlyphs()
}
