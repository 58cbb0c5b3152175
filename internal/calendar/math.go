package calendar

// floorDiv returns x/y rounded toward negative infinity.
func floorDiv(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// floorMod returns the modulus of x/y with the sign of y.
func floorMod(x, y int) int {
	return x - floorDiv(x, y)*y
}
