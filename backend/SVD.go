package backend

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVD computes the thin (economy-sized) singular value decomposition
// a = u · diag(s) · vt. For an (r × c) input, u is (r × min(r, c)) and
// vt is (min(r, c) × c), so exactly one of u and vt has the input's
// shape whenever r != c.
func SVD(a *mat.Dense) (u *mat.Dense, s []float64, vt *mat.Dense, err error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, fmt.Errorf("svd: factorization failed")
	}

	u = &mat.Dense{}
	svd.UTo(u)
	s = svd.Values(nil)

	var v mat.Dense
	svd.VTo(&v)
	vt = &mat.Dense{}
	vt.CloneFrom(v.T())

	return u, s, vt, nil
}
