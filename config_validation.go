package brd

import (
	"errors"
	"fmt"
)

// ValidateConfig validates the table configuration parameters
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}

	// Validate clock
	if cfg.Clock <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClock, cfg.Clock)
	}

	// Validate baud rates
	if len(cfg.BaudRates) == 0 {
		return fmt.Errorf("baud rate list cannot be empty")
	}
	var errs []error
	for i, b := range cfg.BaudRates {
		if b <= 0 {
			errs = append(errs, fmt.Errorf("baud rate #%d: %w: %d", i, ErrInvalidBaudRate, b))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Validate frame
	if _, err := cfg.Frame.LCRH(); err != nil {
		return fmt.Errorf("invalid frame: %w", err)
	}

	return nil
}
