package services

// seqRand returns the queued values in order (modulo n), repeating the last one
type seqRand struct {
	values []int
}

func (r *seqRand) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v % n
}
