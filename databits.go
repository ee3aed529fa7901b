package brd

type DataBits int

func (d DataBits) Int() int {
	return int(d)
}

const (
	DataBits5 DataBits = 5
	DataBits6 DataBits = 6
	DataBits7 DataBits = 7
	DataBits8 DataBits = 8
)

// wlen returns the UARTLCR_H WLEN field for d.
func (d DataBits) wlen() (uint32, error) {
	if d < DataBits5 || d > DataBits8 {
		return 0, ErrInvalidDataBits
	}
	return uint32(d-DataBits5) << lcrhWLENShift, nil
}
