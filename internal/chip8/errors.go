package chip8

import "fmt"

// RomTooLargeError is returned when a rom does not fit
// into the program area of the memory.
type RomTooLargeError struct {
	Size int
	Max  int
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("rom is %d bytes, max is %d", e.Size, e.Max)
}

// UnknownOpcodeError is returned when the cpu fetches a word
// that does not decode to any instruction.
// Addr is the address the word was fetched from.
type UnknownOpcodeError struct {
	Opcode uint16
	Addr   uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X. PC: %04X", e.Opcode, e.Addr)
}

type StackOverflowError struct{}

func (e *StackOverflowError) Error() string {
	return "stack overflow"
}

type StackUnderflowError struct{}

func (e *StackUnderflowError) Error() string {
	return "stack underflow"
}

// InvalidRegisterError is returned on access to a register
// outside V0-VF.
type InvalidRegisterError struct {
	Index uint8
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("invalid register %d", e.Index)
}

// InvalidKeyError is returned on access to a key
// outside the 16-key pad.
type InvalidKeyError struct {
	Key uint8
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %02X", e.Key)
}
