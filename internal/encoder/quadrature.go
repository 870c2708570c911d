package encoder

// DefaultDivisor is the number of quadrature transitions per detent on common
// mechanical encoders.
const DefaultDivisor = 4

// transitions is indexed by prior<<2 | next, where a state is A<<1 | B.
// Non-Gray-code jumps count as no movement.
var transitions = [16]int8{
	0,  // 00 -> 00
	-1, // 00 -> 01
	+1, // 00 -> 10
	0,  // 00 -> 11
	+1, // 01 -> 00
	0,  // 01 -> 01
	0,  // 01 -> 10
	-1, // 01 -> 11
	-1, // 10 -> 00
	0,  // 10 -> 01
	0,  // 10 -> 10
	+1, // 10 -> 11
	0,  // 11 -> 00
	+1, // 11 -> 01
	-1, // 11 -> 10
	0,  // 11 -> 11
}

// Decoder turns a stream of A/B samples into a detent count.
type Decoder struct {
	Divisor  int
	Inverted bool

	state    uint8
	subCount int
	position int64
}

func NewDecoder(divisor int, inverted bool) *Decoder {
	if divisor <= 0 {
		divisor = DefaultDivisor
	}
	return &Decoder{Divisor: divisor, Inverted: inverted}
}

// Reset sets the reference pin state without moving the count.
func (d *Decoder) Reset(a, b bool) {
	d.state = d.encode(a, b)
	d.subCount = 0
}

// Update feeds one sample and returns the detent step it produced: -1, 0 or +1.
func (d *Decoder) Update(a, b bool) int {
	next := d.encode(a, b)
	if next == d.state {
		return 0
	}
	idx := d.state<<2 | next
	d.state = next

	d.subCount += int(transitions[idx])
	switch {
	case d.subCount >= d.Divisor:
		d.subCount = 0
		d.position++
		return 1
	case d.subCount <= -d.Divisor:
		d.subCount = 0
		d.position--
		return -1
	}
	return 0
}

func (d *Decoder) Position() int64 {
	return d.position
}

func (d *Decoder) encode(a, b bool) uint8 {
	if d.Inverted {
		a, b = b, a
	}
	var s uint8
	if a {
		s |= 2
	}
	if b {
		s |= 1
	}
	return s
}
