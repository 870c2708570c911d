package model

// Positions holds one encoder count per channel, indexed by Red, Green and Blue.
type Positions [ChannelCount]int64

// Sub returns the per-channel difference p - last.
func (p Positions) Sub(last Positions) Positions {
	var d Positions
	for i := range p {
		d[i] = p[i] - last[i]
	}
	return d
}

func (p Positions) IsZero() bool {
	return p == Positions{}
}

func (p Positions) Slice() []int64 {
	return []int64{p[Red], p[Green], p[Blue]}
}
