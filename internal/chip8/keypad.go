package chip8

const numKeys = 16

// Keypad is the 16-key hex input pad.
type Keypad struct {
	keys [numKeys]bool
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

// SetKey sets the pressed state of a key.
func (k *Keypad) SetKey(code uint8, pressed bool) error {
	if code >= numKeys {
		return &InvalidKeyError{Key: code}
	}
	k.keys[code] = pressed
	return nil
}

// IsPressed reports whether a key is held down.
func (k *Keypad) IsPressed(code uint8) (bool, error) {
	if code >= numKeys {
		return false, &InvalidKeyError{Key: code}
	}
	return k.keys[code], nil
}

func (k *Keypad) state() [numKeys]bool {
	return k.keys
}

func (k *Keypad) reset() {
	k.keys = [numKeys]bool{}
}
