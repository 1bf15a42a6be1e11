package grid

// Encode returns the EEA Reference Grid number of the EPSG:3035 coordinate x, y.
//
// The millions digits come from the signed quotient x/1e6 and y/1e6. Every lower
// digit is taken from the absolute value and multiplied by the sign of its axis,
// which is exact for non-negative input. See the package documentation for the
// behavior of negative coordinates.
//
// Example:
//
//	grid.Encode(5078600, 2871400) // 23090257455218688
func Encode(x, y int64) int64 {
	ax, ay := abs(x), abs(y)
	sx, sy := sign(x), sign(y)

	g := (x / 1_000_000) * p13
	g += (y / 1_000_000) * p12
	g += ((ax / 100_000) % 10) * p11 * sx
	g += ((ay / 100_000) % 10) * p10 * sy
	g += ((ax / 10_000) % 10) * p9 * sx
	g += ((ay / 10_000) % 10) * p8 * sy
	g += ((ax / 1_000) % 10) * p7 * sx
	g += ((ay / 1_000) % 10) * p6 * sy
	g += ((ax / 100) % 10) * p5 * sx
	g += ((ay / 100) % 10) * p4 * sy
	g += ((ax / 10) % 10) * p3 * sx
	g += ((ay / 10) % 10) * p2 * sy
	g += (ax % 10) * p1 * sx
	g += (ay % 10) * p0 * sy

	return g
}

// EncodeSlice encodes xs[i], ys[i] into dst[i] for every i and returns dst.
// dst is grown when it is shorter than xs. It panics if xs and ys differ in length.
func EncodeSlice(dst, xs, ys []int64) []int64 {
	if len(xs) != len(ys) {
		panic("grid: EncodeSlice called with mismatched coordinate lengths")
	}

	if cap(dst) < len(xs) {
		dst = make([]int64, len(xs))
	}
	dst = dst[:len(xs)]

	for i := range xs {
		dst[i] = Encode(xs[i], ys[i])
	}

	return dst
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// abs follows two's complement, so abs(math.MinInt64) is math.MinInt64.
func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
