package engine

// SmallestPrimeFactor returns the smallest factor of n that is at least 2,
// found by trial division. A prime n returns itself; n < 2 returns n.
func SmallestPrimeFactor(n int) int {
	if n < 2 {
		return n
	}
	for f := 2; f*f <= n; f++ {
		if n%f == 0 {
			return f
		}
	}
	return n
}

// GridShape splits n tubes into rows x columns using the smallest prime
// factor as the row count. A prime count degrades to a single row.
func GridShape(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	factor := SmallestPrimeFactor(n)
	if factor == n {
		return 1, n
	}
	return factor, n / factor
}
