package brd

import (
	"fmt"

	gobug "go.bug.st/serial"
)

// UARTLCR_H bit layout.
const (
	lcrhPEN       uint32 = 1 << 1
	lcrhEPS       uint32 = 1 << 2
	lcrhSTP2      uint32 = 1 << 3
	lcrhFEN       uint32 = 1 << 4
	lcrhWLENShift        = 5
	lcrhSPS       uint32 = 1 << 7
)

// Frame is the character format programmed next to the divisors.
type Frame struct {
	DataBits DataBits
	Parity   Parity
	StopBits StopBits
	FIFO     bool
}

// DefaultFrame is 8N1 with FIFOs enabled.
func DefaultFrame() Frame {
	return Frame{
		DataBits: DataBits8,
		Parity:   ParityNone,
		StopBits: StopBits1,
		FIFO:     true,
	}
}

// LCRH returns the UARTLCR_H value for the frame.
func (f Frame) LCRH() (uint32, error) {
	wlen, err := f.DataBits.wlen()
	if err != nil {
		return 0, fmt.Errorf("%w: %d", err, f.DataBits)
	}
	par, err := f.Parity.lcrh()
	if err != nil {
		return 0, fmt.Errorf("%w: %d", err, f.Parity)
	}
	stop, err := f.StopBits.lcrh()
	if err != nil {
		return 0, fmt.Errorf("%w: %d", err, f.StopBits)
	}

	v := wlen | par | stop
	if f.FIFO {
		v |= lcrhFEN
	}
	return v, nil
}

// HostMode returns the go.bug.st/serial mode the host end of the link
// should open with to talk to a UART programmed from this frame.
func (f Frame) HostMode(baud BaudRate) *gobug.Mode {
	return &gobug.Mode{
		BaudRate: baud.Int(),
		DataBits: f.DataBits.Int(),
		Parity:   f.Parity.Get(),
		StopBits: f.StopBits.Get(),
	}
}
