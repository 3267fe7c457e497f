package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous bands of nearly equal
// size, in top-to-bottom order. Bands never overlap and cover every row.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range bands {
		h := base
		if i < extra {
			h++
		}
		bands[i] = Band{Y0: y, Y1: y + h}
		y += h
	}
	return bands
}
