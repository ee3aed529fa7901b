package brd

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const ServiceName = "brd"

type Service struct {
	Logger      zerolog.Logger
	Config      *Config
	initialized atomic.Bool
	metrics     *Metrics

	// Config synchronization - protects Config pointer
	configMu sync.RWMutex

	// Initialization synchronization - ensures Initialize() is called only once
	initOnce sync.Once
	initErr  error
}

// NewService returns a service for cfg. A nil cfg selects DefaultConfig.
func NewService(cfg *Config, logger zerolog.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{Config: cfg, Logger: logger}
}

func (s *Service) Initialize() error {
	s.initOnce.Do(func() {
		s.initErr = s.doInitialize()
	})
	return s.initErr
}

func (s *Service) doInitialize() (err error) {
	s.metrics = &Metrics{}

	defer func() {
		if err != nil {
			s.metrics.ConfigurationErrors.Add(1)
			return
		}
		s.initialized.Store(true)
	}()

	if s.isConfigNil() {
		return errors.New("table config has not been set")
	}

	err = s.withConfigLock(func(cfg *Config) error {
		if err := ValidateConfig(cfg); err != nil {
			return fmt.Errorf("invalid table configuration: %w", err)
		}
		s.Logger.Debug().
			Int64("clock_hz", int64(cfg.Clock)).
			Int("rates", len(cfg.BaudRates)).
			Msg("table configuration accepted")
		return nil
	})
	return err
}

// Table computes the divisor table for the configured clock and baud rates.
// Rows that do not fit the divisor registers are logged but kept.
func (s *Service) Table() (Table, error) {
	if !s.initialized.Load() {
		return Table{}, ErrNotInitialized
	}

	var (
		clock Clock
		rates []BaudRate
		check bool
	)
	_ = s.withConfigLock(func(cfg *Config) error {
		clock = cfg.Clock
		rates = append(rates, cfg.BaudRates...)
		check = cfg.CheckRegisters
		return nil
	})

	t, err := Generate(clock, rates)
	if err != nil {
		s.metrics.ComputeErrors.Add(1)
		return Table{}, err
	}

	for _, r := range t.Rows {
		s.Logger.Debug().
			Int("baud", r.Desired.Int()).
			Int("ibrd", r.IBRD).
			Int("fbrd", r.FBRD).
			Float64("achieved", r.Achieved).
			Msg("divisor computed")
		if !check {
			continue
		}
		if err := r.CheckRegisters(); err != nil {
			s.metrics.RegisterViolations.Add(1)
			s.Logger.Warn().Err(err).Int("baud", r.Desired.Int()).Msg("divisor does not fit PL011 registers")
		}
	}

	s.metrics.TablesGenerated.Add(1)
	s.metrics.RowsComputed.Add(int64(len(t.Rows)))
	return t, nil
}

// Render computes the table and writes it to w.
func (s *Service) Render(w io.Writer) error {
	t, err := s.Table()
	if err != nil {
		return err
	}
	if _, err = t.WriteTo(w); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

// LCRH returns the UARTLCR_H value for the configured frame.
func (s *Service) LCRH() (uint32, error) {
	if !s.initialized.Load() {
		return 0, ErrNotInitialized
	}
	var f Frame
	_ = s.withConfigLock(func(cfg *Config) error {
		f = cfg.Frame
		return nil
	})
	return f.LCRH()
}

// GetMetricsSnapshot returns the current counters, or nil before Initialize.
func (s *Service) GetMetricsSnapshot() *MetricsSnapshot {
	if s.metrics == nil {
		return nil
	}
	snap := s.metrics.Snapshot()
	return &snap
}

// isConfigNil safely checks if config is nil without copying
func (s *Service) isConfigNil() bool {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.Config == nil
}

// withConfigLock executes a function with read-only access to the config
func (s *Service) withConfigLock(fn func(*Config) error) error {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	if s.Config == nil {
		return errors.New("table config has not been set")
	}
	return fn(s.Config)
}
