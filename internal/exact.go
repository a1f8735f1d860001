package internal

// Exact orientation without a filter. The determinant is expanded into six
// coordinate products,
//
//	det = p.x*q.y - p.x*r.y + q.x*r.y - q.x*p.y + r.x*p.y - r.x*q.y
//
// each of which is exactly a two component expansion. The products are
// paired into three exact four component differences and those are summed
// exactly, so the final expansion equals the true determinant.
func Exact(p, q, r Point) Orientation {
	pxqy1, pxqy0 := twoProduct(p.X, q.Y)
	pxry1, pxry0 := twoProduct(p.X, r.Y)
	pTerms := twoTwoDiff(pxqy1, pxqy0, pxry1, pxry0)

	qxry1, qxry0 := twoProduct(q.X, r.Y)
	qxpy1, qxpy0 := twoProduct(q.X, p.Y)
	qTerms := twoTwoDiff(qxry1, qxry0, qxpy1, qxpy0)

	rxpy1, rxpy0 := twoProduct(r.X, p.Y)
	rxqy1, rxqy0 := twoProduct(r.X, q.Y)
	rTerms := twoTwoDiff(rxpy1, rxpy0, rxqy1, rxqy0)

	var vBuf [8]float64
	var wBuf [12]float64
	v := sumZeroElim(pTerms[:], qTerms[:], vBuf[:])
	w := sumZeroElim(v, rTerms[:], wBuf[:])
	return expansionSign(w)
}

// Exact orientation computed the long way: the differences are formed
// exactly first, then multiplied and subtracted as expansions. Slower than
// Exact, kept as an independent exact path for comparison.
func Slow(p, q, r Point) Orientation {
	ux1, ux0 := twoDiff(q.X, p.X)
	uy1, uy0 := twoDiff(q.Y, p.Y)
	vx1, vx0 := twoDiff(r.X, p.X)
	vy1, vy0 := twoDiff(r.Y, p.Y)

	var leftBuf, rightBuf [8]float64
	left := twoTwoProduct(ux1, ux0, vy1, vy0, leftBuf[:])
	right := twoTwoProduct(uy1, uy0, vx1, vx0, rightBuf[:])

	var detBuf [16]float64
	det := sumZeroElim(left, negate(right), detBuf[:])
	return expansionSign(det)
}

// (a1+a0)*(b1+b0) as an expansion. h needs room for eight components.
func twoTwoProduct(a1, a0, b1, b0 float64, h []float64) []float64 {
	a := [2]float64{a0, a1}
	var loBuf, hiBuf [4]float64
	lo := scaleZeroElim(a[:], b0, loBuf[:])
	hi := scaleZeroElim(a[:], b1, hiBuf[:])
	return sumZeroElim(lo, hi, h)
}
