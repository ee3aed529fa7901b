package brd

type BaudRate int

func (b BaudRate) Int() int {
	return int(b)
}

const (
	Baud1200   BaudRate = 1200
	Baud2400   BaudRate = 2400
	Baud4800   BaudRate = 4800
	Baud9600   BaudRate = 9600
	Baud14400  BaudRate = 14400
	Baud19200  BaudRate = 19200
	Baud38400  BaudRate = 38400
	Baud57600  BaudRate = 57600
	Baud115200 BaudRate = 115200
	Baud230400 BaudRate = 230400
	Baud460800 BaudRate = 460800
	Baud921600 BaudRate = 921600
)

// DefaultBaudRates is the table order printed by brdtable.
var DefaultBaudRates = []BaudRate{
	Baud9600,
	Baud14400,
	Baud19200,
	Baud38400,
	Baud115200,
}

// Clock is a UART reference clock frequency in Hz.
type Clock int64

// DefaultClock is the 24 MHz UARTCLK the table is computed for.
const DefaultClock Clock = 24000000

// MHz returns the clock in whole megahertz.
func (c Clock) MHz() int64 {
	return int64(c) / 1000000
}
