// Package bound - Jacobi eigenvalue sweep for dense symmetric matrices.
//
// Only eigenvalues are needed for the Hoffman bound, so no eigenvector
// accumulation is carried. The input matrix is consumed (rotated in
// place); callers pass a scratch copy.
package bound

import (
	"errors"
	"math"
)

// ErrEigenFailed is returned if Jacobi does not converge within the
// rotation budget.
var ErrEigenFailed = errors.New("bound: eigen decomposition did not converge")

// eigenTol is the convergence threshold on the largest off-diagonal
// magnitude. Tight enough that the Hoffman ratio is exact to well
// below the 1e-9 stabilization grid.
const eigenTol = 1e-12

// maxSweeps bounds the number of full pivot sweeps (n² rotations each).
// Jacobi on bounded 0/1 matrices converges in a handful of sweeps.
const maxSweeps = 100

// jacobiEigenvalues rotates the symmetric matrix a until off-diagonal
// mass vanishes, then returns the diagonal (the eigenvalues, unsorted).
//
// Contract: a must be square and symmetric; both hold by construction
// for adjacency matrices. Complexity: O(n³) per sweep.
func jacobiEigenvalues(a [][]float64) ([]float64, error) {
	var (
		n         = len(a)
		rotations = maxSweeps * n * n
		r         int
	)

	for r = 0; r <= rotations; r++ {
		// Stage 1: locate the dominant off-diagonal element |a[p][q]|.
		var (
			p, q   int
			maxOff float64
			i, j   int
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < eigenTol {
			// Converged: diagonal holds the spectrum.
			eig := make([]float64, n)
			for i = 0; i < n; i++ {
				eig[i] = a[i][i]
			}

			return eig, nil
		}

		// Stage 2: compute the rotation annihilating a[p][q].
		var (
			apq   = a[p][q]
			app   = a[p][p]
			aqq   = a[q][q]
			theta = (aqq - app) / (2 * apq)
			t     = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
			c     = 1 / math.Sqrt(t*t+1)
			s     = t * c
		)

		// Stage 3: apply the rotation symmetrically.
		var aip, aiq float64
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a[i][p], a[i][q]
			a[i][p], a[p][i] = c*aip-s*aiq, c*aip-s*aiq
			a[i][q], a[q][i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a[p][p] = app - t*apq
		a[q][q] = aqq + t*apq
		a[p][q], a[q][p] = 0, 0
	}

	return nil, ErrEigenFailed
}
