package brd_test

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Station-Manager/brd"
)

func Example() {
	svc := brd.NewService(brd.DefaultConfig(), zerolog.Nop())
	if err := svc.Initialize(); err != nil {
		fmt.Println("initialize error:", err)
		return
	}

	if err := svc.Render(os.Stdout); err != nil {
		fmt.Println("render error:", err)
	}
	// Output:
	// Clock   Desired   IBRD  FBRD    Real
	//  MHz   baud rate              baud rate
	//   24      9600   156   16     9600.00
	//   24     14400   104   11    14399.28
	//   24     19200    78    8    19200.00
	//   24     38400    39    4    38400.00
	//   24    115200    13    1   115246.10
}

func ExampleCompute() {
	row, err := brd.Compute(48000000, brd.Baud115200)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("IBRD=%d FBRD=%d achieved=%.2f\n", row.IBRD, row.FBRD, row.Achieved)
	// Output: IBRD=26 FBRD=3 achieved=115176.96
}
