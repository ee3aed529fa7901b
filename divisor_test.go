package brd

import (
	"errors"
	"math"
	"testing"
)

func TestCompute_9600At24MHz(t *testing.T) {
	row, err := Compute(DefaultClock, Baud9600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	div := 24000000 / 16.0 / 9600
	wantFBRD := int(math.Floor((div-156)*64 + 0.5))

	if row.IBRD != 156 {
		t.Fatalf("IBRD: want 156, got %d", row.IBRD)
	}
	if row.FBRD != wantFBRD || row.FBRD != 16 {
		t.Fatalf("FBRD: want %d (16), got %d", wantFBRD, row.FBRD)
	}
	if row.Achieved != 9600 {
		t.Fatalf("achieved: want 9600, got %v", row.Achieved)
	}
}

func TestCompute_DefaultRates(t *testing.T) {
	tests := []struct {
		baud     BaudRate
		ibrd     int
		fbrd     int
		achieved float64
	}{
		{Baud9600, 156, 16, 9600},
		{Baud14400, 104, 11, 14399.28},
		{Baud19200, 78, 8, 19200},
		{Baud38400, 39, 4, 38400},
		{Baud115200, 13, 1, 115246.10},
	}

	for _, tt := range tests {
		row, err := Compute(DefaultClock, tt.baud)
		if err != nil {
			t.Fatalf("baud=%d: unexpected error: %v", tt.baud, err)
		}
		if row.IBRD != tt.ibrd || row.FBRD != tt.fbrd {
			t.Fatalf("baud=%d: want %d/%d, got %d/%d", tt.baud, tt.ibrd, tt.fbrd, row.IBRD, row.FBRD)
		}
		if math.Abs(row.Achieved-tt.achieved) > 0.005 {
			t.Fatalf("baud=%d: achieved want %.2f, got %.4f", tt.baud, tt.achieved, row.Achieved)
		}
		if row.Clock != DefaultClock || row.Desired != tt.baud {
			t.Fatalf("baud=%d: inputs not carried into row: %+v", tt.baud, row)
		}
	}
}

func TestCompute_AchievedCloseAndNonNegative(t *testing.T) {
	for _, b := range DefaultBaudRates {
		row, err := Compute(DefaultClock, b)
		if err != nil {
			t.Fatalf("baud=%d: unexpected error: %v", b, err)
		}
		if row.IBRD < 0 || row.FBRD < 0 {
			t.Fatalf("baud=%d: negative divisor %d/%d", b, row.IBRD, row.FBRD)
		}
		if d := row.Deviation(); d >= 0.05 {
			t.Fatalf("baud=%d: deviation %.4f not under 5%%", b, d)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	for _, b := range DefaultBaudRates {
		first, err := Compute(DefaultClock, b)
		if err != nil {
			t.Fatalf("baud=%d: unexpected error: %v", b, err)
		}
		for i := 0; i < 10; i++ {
			again, _ := Compute(DefaultClock, b)
			if again.IBRD != first.IBRD || again.FBRD != first.FBRD ||
				math.Float64bits(again.Achieved) != math.Float64bits(first.Achieved) {
				t.Fatalf("baud=%d: run %d differs: %+v vs %+v", b, i, again, first)
			}
		}
	}
}

func TestCompute_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		clock Clock
		baud  BaudRate
		want  error
	}{
		{"zero baud", DefaultClock, 0, ErrInvalidBaudRate},
		{"negative baud", DefaultClock, -9600, ErrInvalidBaudRate},
		{"zero clock", 0, Baud9600, ErrInvalidClock},
		{"negative clock", -1, Baud9600, ErrInvalidClock},
		{"divisor rounds to zero", 16, 1000, ErrDivisorZero},
	}

	for _, tt := range tests {
		row, err := Compute(tt.clock, tt.baud)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: want %v, got %v", tt.name, tt.want, err)
		}
		if row != (Row{}) {
			t.Fatalf("%s: want zero row, got %+v", tt.name, row)
		}
	}
}

func TestCheckRegisters(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want error
	}{
		{"fits", Row{Desired: Baud9600, IBRD: 156, FBRD: 16}, nil},
		{"max ibrd zero fraction", Row{Desired: 23, IBRD: MaxIBRD, FBRD: 0}, nil},
		{"ibrd zero", Row{Desired: 2000000, IBRD: 0, FBRD: 48}, ErrIBRDOutOfRange},
		{"ibrd too wide", Row{Desired: 20, IBRD: 75000}, ErrIBRDOutOfRange},
		{"fbrd rounds to 64", Row{Desired: 150075, IBRD: 9, FBRD: 64}, ErrFBRDOutOfRange},
		{"max ibrd with fraction", Row{Desired: 23, IBRD: MaxIBRD, FBRD: 1}, ErrFBRDOutOfRange},
	}

	for _, tt := range tests {
		err := tt.row.CheckRegisters()
		if tt.want == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: want %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestCompute_FBRDIsNotClamped(t *testing.T) {
	row, err := Compute(DefaultClock, 150075)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.IBRD != 9 || row.FBRD != 64 {
		t.Fatalf("want 9/64, got %d/%d", row.IBRD, row.FBRD)
	}
	if !errors.Is(row.CheckRegisters(), ErrFBRDOutOfRange) {
		t.Fatalf("expected FBRD range error")
	}
}
