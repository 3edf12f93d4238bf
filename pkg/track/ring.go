package track

// RingIndex maps any integer, negative included, onto [0, n).
// Every circular access into a Track goes through here.
func RingIndex(i, n int) int {
	if n <= 0 {
		panic("track: ring of non-positive size")
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
