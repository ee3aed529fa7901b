package brd

import (
	"fmt"
	"math"
)

const (
	// oversample is the PL011 receive oversampling factor.
	oversample = 16.0
	// fracSteps is the FBRD resolution: 6 bits, in 1/64 units.
	fracSteps = 64.0

	// MaxIBRD and MaxFBRD are the widths of the UARTIBRD and UARTFBRD registers.
	MaxIBRD = 0xFFFF
	MaxFBRD = 0x3F
)

// Row is one line of the divisor table.
type Row struct {
	Clock    Clock
	Desired  BaudRate
	IBRD     int
	FBRD     int
	Achieved float64
}

// Compute derives the IBRD/FBRD pair for baud at the given clock and the
// baud rate the rounded pair actually produces. The pair is not clamped to
// the register widths; use CheckRegisters for that.
func Compute(clock Clock, baud BaudRate) (Row, error) {
	if clock <= 0 {
		return Row{}, fmt.Errorf("%w: %d", ErrInvalidClock, clock)
	}
	if baud <= 0 {
		return Row{}, fmt.Errorf("%w: %d", ErrInvalidBaudRate, baud)
	}

	div := float64(clock) / oversample / float64(baud)
	ibrd := int(math.Floor(div))
	fbrd := int(math.Floor((div-float64(ibrd))*fracSteps + 0.5))

	rounded := float64(ibrd) + float64(fbrd)/fracSteps
	if rounded == 0 {
		return Row{}, fmt.Errorf("%w: clock=%d baud=%d", ErrDivisorZero, clock, baud)
	}

	return Row{
		Clock:    clock,
		Desired:  baud,
		IBRD:     ibrd,
		FBRD:     fbrd,
		Achieved: float64(clock) / oversample / rounded,
	}, nil
}

// Deviation is the relative error of the achieved rate against the desired one.
func (r Row) Deviation() float64 {
	return math.Abs(r.Achieved-float64(r.Desired)) / float64(r.Desired)
}

// CheckRegisters reports whether the pair can be written to UARTIBRD and
// UARTFBRD as is. FBRD reaches 64 when the fraction rounds up, which the
// 6-bit register cannot hold.
func (r Row) CheckRegisters() error {
	if r.IBRD < 1 || r.IBRD > MaxIBRD {
		return fmt.Errorf("%w: IBRD=%d baud=%d", ErrIBRDOutOfRange, r.IBRD, r.Desired)
	}
	if r.FBRD < 0 || r.FBRD > MaxFBRD {
		return fmt.Errorf("%w: FBRD=%d baud=%d", ErrFBRDOutOfRange, r.FBRD, r.Desired)
	}
	if r.IBRD == MaxIBRD && r.FBRD != 0 {
		return fmt.Errorf("%w: FBRD must be 0 when IBRD=%d", ErrFBRDOutOfRange, MaxIBRD)
	}
	return nil
}
