package animation

// Extrapolate controls how Interpolate treats inputs outside the input range.
type Extrapolate int

const (
	// ExtrapolateClamp pins out-of-range inputs to the nearest output endpoint.
	ExtrapolateClamp Extrapolate = iota
	// ExtrapolateExtend continues the edge segment's line beyond the range.
	ExtrapolateExtend
)

// Interpolate maps input through a piecewise-linear function defined by
// parallel breakpoint sequences. inputRange must be monotonically
// non-decreasing and the two ranges must have equal length of at least
// two; degenerate ranges return input unchanged rather than failing.
//
//	Interpolate(0.5, []float64{0, 1}, []float64{0, 120}, ExtrapolateClamp) // 60
func Interpolate(input float64, inputRange, outputRange []float64, mode Extrapolate) float64 {
	if len(inputRange) < 2 || len(inputRange) != len(outputRange) {
		return input
	}

	last := len(inputRange) - 1
	if input <= inputRange[0] {
		if mode == ExtrapolateClamp {
			return outputRange[0]
		}
		return extendSegment(input, inputRange[0], inputRange[1], outputRange[0], outputRange[1])
	}
	if input >= inputRange[last] {
		if mode == ExtrapolateClamp {
			return outputRange[last]
		}
		return extendSegment(input, inputRange[last-1], inputRange[last], outputRange[last-1], outputRange[last])
	}

	// Find the segment containing input.
	segment := last - 1
	for i := 1; i <= last; i++ {
		if input < inputRange[i] {
			segment = i - 1
			break
		}
	}
	return extendSegment(input, inputRange[segment], inputRange[segment+1], outputRange[segment], outputRange[segment+1])
}

func extendSegment(input, in0, in1, out0, out1 float64) float64 {
	if in1 == in0 {
		// Zero-width segment: resolve to the segment's end value.
		return out1
	}
	t := (input - in0) / (in1 - in0)
	return out0 + (out1-out0)*t
}
