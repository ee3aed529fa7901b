package brd

import (
	gobug "go.bug.st/serial"
)

type Parity gobug.Parity

func (pa Parity) Get() gobug.Parity {
	return gobug.Parity(pa)
}

const (
	// ParityNone represents no parity bit
	ParityNone = Parity(gobug.NoParity)
	// ParityOdd represents odd parity bit
	ParityOdd = Parity(gobug.OddParity)
	// ParityEven represents even parity bit
	ParityEven = Parity(gobug.EvenParity)
	// ParityMark represents mark parity bit (always 1)
	ParityMark = Parity(gobug.MarkParity)
	// ParitySpace represents space parity bit (always 0)
	ParitySpace = Parity(gobug.SpaceParity)
)

// lcrh maps the parity mode onto the PEN, EPS and SPS bits. Stick parity
// transmits the inverse of EPS, so mark leaves EPS clear.
func (pa Parity) lcrh() (uint32, error) {
	switch pa {
	case ParityNone:
		return 0, nil
	case ParityOdd:
		return lcrhPEN, nil
	case ParityEven:
		return lcrhPEN | lcrhEPS, nil
	case ParityMark:
		return lcrhPEN | lcrhSPS, nil
	case ParitySpace:
		return lcrhPEN | lcrhEPS | lcrhSPS, nil
	default:
		return 0, ErrInvalidParity
	}
}
