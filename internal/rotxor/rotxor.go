package rotxor

import (
	"errors"
	"fmt"
)

// InitialState is the state every fold starts from unless told otherwise.
const InitialState byte = 0xAA

// ErrInvalidInput is returned when a value does not fit in a byte.
var ErrInvalidInput = errors.New("invalid input")

// RotateLeft1 rotates b left by one bit. Bit 7 wraps into bit 0.
func RotateLeft1(b byte) byte {
	return b<<1 | b>>7
}

// Step mixes n into the state s and returns the new state.
func Step(s, n byte) byte {
	return RotateLeft1(s ^ n)
}

// Fold applies Step to every byte of seq in order, starting from initial.
func Fold(initial byte, seq []byte) byte {
	state := initial
	for _, n := range seq {
		state = Step(state, n)
	}
	return state
}

// Bytes narrows values to bytes, failing on the first value outside [0, 255].
func Bytes(values []int64) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFF {
			return nil, fmt.Errorf("%w: value %d at index %d is outside [0, 255]", ErrInvalidInput, v, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}
