package bounce

// Source supplies uniform random numbers in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float32() float32
}

// RandomColor draws R, G and B independently and uniformly from [0, 1).
func RandomColor(src Source) Color {
	r := src.Float32()
	g := src.Float32()
	b := src.Float32()
	return Color{R: r, G: g, B: b}
}

// uniform returns a value in [lo, hi].
func uniform(src Source, lo, hi float32) float32 {
	return lo + src.Float32()*(hi-lo)
}

// randomSign returns +1 or -1 with equal probability.
func randomSign(src Source) float32 {
	if src.Float32() < 0.5 {
		return 1
	}
	return -1
}
