package brd

import "errors"

var (
	ErrNotInitialized  = errors.New("brd: service not initialized")
	ErrInvalidClock    = errors.New("brd: clock must be positive")
	ErrInvalidBaudRate = errors.New("brd: baud rate must be positive")
	ErrDivisorZero     = errors.New("brd: baud rate too high for clock, divisor rounds to zero")
	ErrIBRDOutOfRange  = errors.New("brd: IBRD out of register range")
	ErrFBRDOutOfRange  = errors.New("brd: FBRD out of register range")
	ErrInvalidDataBits = errors.New("brd: data bits must be 5-8")
	ErrInvalidParity   = errors.New("brd: unsupported parity")
	ErrInvalidStopBits = errors.New("brd: stop bits must be 1 or 2")
)
