package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EstimateAffine computes the least-squares affine transform mapping src
// points onto dst points. At least 3 correspondences are required; with
// exactly 3 non-collinear points the solution is exact. The viewport tests
// use this as an independent geometric reference when checking view
// recompositions such as zoom-to-selection.
func EstimateAffine(src, dst []Point2D) (AffineTransform, error) {
	n := len(src)
	if n != len(dst) {
		return AffineTransform{}, fmt.Errorf("point count mismatch: %d vs %d", n, len(dst))
	}
	if n < 3 {
		return AffineTransform{}, fmt.Errorf("need at least 3 points, got %d", n)
	}

	// Build the (possibly overdetermined) system row pairs:
	//   x' = A*x + B*y + TX
	//   y' = C*x + D*y + TY
	lhs := mat.NewDense(n*2, 6, nil)
	rhs := mat.NewVecDense(n*2, nil)

	for i := 0; i < n; i++ {
		x, y := src[i].X, src[i].Y
		xp, yp := dst[i].X, dst[i].Y

		lhs.Set(i*2, 0, x)
		lhs.Set(i*2, 1, y)
		lhs.Set(i*2, 2, 1)
		rhs.SetVec(i*2, xp)

		lhs.Set(i*2+1, 3, x)
		lhs.Set(i*2+1, 4, y)
		lhs.Set(i*2+1, 5, 1)
		rhs.SetVec(i*2+1, yp)
	}

	var qr mat.QR
	qr.Factorize(lhs)

	var params mat.VecDense
	if err := qr.SolveVecTo(&params, false, rhs); err != nil {
		return AffineTransform{}, fmt.Errorf("solving affine system: %w", err)
	}

	return AffineTransform{
		A:  params.AtVec(0),
		B:  params.AtVec(1),
		TX: params.AtVec(2),
		C:  params.AtVec(3),
		D:  params.AtVec(4),
		TY: params.AtVec(5),
	}, nil
}
