package common

// Vec3 is a point or offset in scene coordinates (x right, y up).
type Vec3 struct {
	X, Y, Z float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
