package brd

import (
	"go.uber.org/atomic"
)

// Metrics tracks what a Service has produced
type Metrics struct {
	TablesGenerated     atomic.Int64 // Successful Table calls
	RowsComputed        atomic.Int64 // Rows across all tables
	RegisterViolations  atomic.Int64 // Rows failing CheckRegisters
	ConfigurationErrors atomic.Int64 // Rejected configurations
	ComputeErrors       atomic.Int64 // Table calls that failed on a row
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	TablesGenerated     int64
	RowsComputed        int64
	RegisterViolations  int64
	ConfigurationErrors int64
	ComputeErrors       int64
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		TablesGenerated:     m.TablesGenerated.Load(),
		RowsComputed:        m.RowsComputed.Load(),
		RegisterViolations:  m.RegisterViolations.Load(),
		ConfigurationErrors: m.ConfigurationErrors.Load(),
		ComputeErrors:       m.ComputeErrors.Load(),
	}
}

// Reset zeroes all counters (useful for testing)
func (m *Metrics) Reset() {
	m.TablesGenerated.Store(0)
	m.RowsComputed.Store(0)
	m.RegisterViolations.Store(0)
	m.ConfigurationErrors.Store(0)
	m.ComputeErrors.Store(0)
}
