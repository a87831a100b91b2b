package truth

// Size returns the number of rows of a table over count variables. A table without
// variables still has one row.
func Size(count int) int {
	return 1 << uint(count)
}

// Column returns the truth vector of the variable discovered i-th among count variables.
// The vector is a block of size/2^i rows, the first half 0 and the second half 1, repeated
// 2^i times, so the first variable is the most significant bit of the row index.
func Column(i, count int) Vector {
	size := Size(count)
	n := 1 << uint(i)
	period := size / n

	v := newVector(size)
	for rep := 0; rep < n; rep++ {
		for j := 0; j < period; j++ {
			if j*n*2/size == 1 {
				v.set(rep*period + j)
			}
		}
	}
	return v
}

// Enumerate returns the columns of all count variables in discovery order.
func Enumerate(count int) []Vector {
	cols := make([]Vector, count)
	for i := range cols {
		cols[i] = Column(i, count)
	}
	return cols
}
