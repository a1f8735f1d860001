package internal

// Adaptive orientation. This is the entry point most callers want.
//
// The floating point filter settles the overwhelming majority of inputs.
// Only when its error bound cannot rule out a wrong sign does the call
// escalate, once, to the exact expansion computation on the same inputs.
// The result always equals Exact(p, q, r).
func Orient(p, q, r Point) Orientation {
	if o, ok := filter(p, q, r); ok {
		return o
	}
	return Exact(p, q, r)
}
