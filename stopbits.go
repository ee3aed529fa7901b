package brd

import gobug "go.bug.st/serial"

type StopBits gobug.StopBits

func (sb StopBits) Get() gobug.StopBits {
	return gobug.StopBits(sb)
}

const (
	// StopBits1 represents 1 stop bit
	StopBits1 = StopBits(gobug.OneStopBit)
	// StopBits1Half represents 1.5 stop bits, which the PL011 cannot generate
	StopBits1Half = StopBits(gobug.OnePointFiveStopBits)
	// StopBits2 represents 2 stop bits
	StopBits2 = StopBits(gobug.TwoStopBits)
)

func (sb StopBits) lcrh() (uint32, error) {
	switch sb {
	case StopBits1:
		return 0, nil
	case StopBits2:
		return lcrhSTP2, nil
	default:
		return 0, ErrInvalidStopBits
	}
}
