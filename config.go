package brd

// Config holds the inputs of a divisor table.
type Config struct {
	// Clock is the UARTCLK frequency in Hz.
	Clock Clock

	// BaudRates are computed and printed in this order.
	BaudRates []BaudRate

	// Frame is used for the UARTLCR_H value reported alongside the table.
	Frame Frame

	// CheckRegisters logs a warning for rows that do not fit UARTIBRD/UARTFBRD.
	CheckRegisters bool
}

// DefaultConfig is the 24 MHz, five-rate table.
func DefaultConfig() *Config {
	rates := make([]BaudRate, len(DefaultBaudRates))
	copy(rates, DefaultBaudRates)
	return &Config{
		Clock:          DefaultClock,
		BaudRates:      rates,
		Frame:          DefaultFrame(),
		CheckRegisters: true,
	}
}
