package chip8

const (
	numRegs    = 16
	stackDepth = 16
)

// Registers holds the cpu register file: sixteen 8-bit
// general registers V0-VF, the index register I, the program
// counter, the call stack and the two timers.
type Registers struct {
	v  [numRegs]uint8
	i  uint16
	pc uint16

	stack [stackDepth]uint16
	sp    uint8

	dt uint8
	st uint8
}

func NewRegisters() *Registers {
	return &Registers{
		pc: romAddr,
	}
}

// V returns the value of Vidx.
func (r *Registers) V(idx uint8) (uint8, error) {
	if idx >= numRegs {
		return 0, &InvalidRegisterError{Index: idx}
	}
	return r.v[idx], nil
}

// SetV sets Vidx to data.
func (r *Registers) SetV(idx uint8, data uint8) error {
	if idx >= numRegs {
		return &InvalidRegisterError{Index: idx}
	}
	r.v[idx] = data
	return nil
}

// Push saves addr on the call stack.
func (r *Registers) Push(addr uint16) error {
	if r.sp >= stackDepth {
		return &StackOverflowError{}
	}
	r.stack[r.sp] = addr
	r.sp++
	return nil
}

// Pop removes and returns the top of the call stack.
func (r *Registers) Pop() (uint16, error) {
	if r.sp == 0 {
		return 0, &StackUnderflowError{}
	}
	r.sp--
	return r.stack[r.sp], nil
}

func (r *Registers) reset() {
	*r = Registers{pc: romAddr}
}
