package opt300x

// baseAddress is the 7-bit bus address with both ADDR selection bits low.
const baseAddress byte = 0b1000100

// SlaveAddr selects one of the four bus addresses reachable through the
// two ADDR pin straps. The zero value is the default address (both pins
// tied to GND).
type SlaveAddr struct {
	a1, a0 bool
}

// DefaultAddress returns the address with both selection pins low.
func DefaultAddress() SlaveAddr {
	return SlaveAddr{}
}

// AlternativeAddress returns the address selected by the a1 and a0 pin
// strap levels.
func AlternativeAddress(a1, a0 bool) SlaveAddr {
	return SlaveAddr{a1: a1, a0: a0}
}

func (a SlaveAddr) addr() byte {
	addr := baseAddress
	if a.a1 {
		addr |= 0b10
	}
	if a.a0 {
		addr |= 0b01
	}
	return addr
}
