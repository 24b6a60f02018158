package transport

import "strconv"

// Baud is a serial line rate in bits per second.
type Baud int

// Rates both VT100-era hardware and modern USB adapters can clock.
const (
	Baud300    Baud = 300
	Baud1200   Baud = 1200
	Baud2400   Baud = 2400
	Baud4800   Baud = 4800
	Baud9600   Baud = 9600
	Baud19200  Baud = 19200
	Baud38400  Baud = 38400
	Baud57600  Baud = 57600
	Baud115200 Baud = 115200
)

// SupportedBauds lists the valid rates in ascending order.
func SupportedBauds() []Baud {
	return []Baud{
		Baud300, Baud1200, Baud2400, Baud4800, Baud9600,
		Baud19200, Baud38400, Baud57600, Baud115200,
	}
}

// Valid reports whether b is a rate OpenSerial accepts.
func (b Baud) Valid() bool {
	for _, s := range SupportedBauds() {
		if b == s {
			return true
		}
	}
	return false
}

func (b Baud) String() string {
	return strconv.Itoa(int(b))
}

// SerialOptions configures a serial line beyond the device path.
type SerialOptions struct {
	// Baud is the line rate.
	Baud Baud

	// FlowControl enables in-band XON/XOFF pacing. Slow terminals
	// drop output during scrolling at higher rates without it.
	FlowControl bool
}
