package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrEigenDecomposition is returned when the symmetric eigen solver does not converge
var ErrEigenDecomposition = errors.New("eigen decomposition did not converge")

// Matrix3 is a row-major 3x3 matrix
type Matrix3 [3][3]float64

// Matrix2 is a row-major 2x2 matrix
type Matrix2 [2][2]float64

// Eigensolve3x3 decomposes a symmetric matrix. Eigenvalues are returned in
// descending order with the matching unit eigenvectors at the same index.
// Only the upper triangle of m is read.
func Eigensolve3x3(m Matrix3) ([3]float64, [3]Vector3, error) {
	var values [3]float64
	var vectors [3]Vector3

	vals, vecs, err := eigenSym(3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[0][1], m[1][1], m[1][2],
		m[0][2], m[1][2], m[2][2],
	})
	if err != nil {
		return values, vectors, err
	}

	// gonum reports ascending order
	for i := 0; i < 3; i++ {
		col := 2 - i
		values[i] = vals[col]
		vectors[i] = NewVector3(vecs.At(0, col), vecs.At(1, col), vecs.At(2, col)).Normalize()
	}
	return values, vectors, nil
}

// Eigensolve2x2 is the planar counterpart of Eigensolve3x3
func Eigensolve2x2(m Matrix2) ([2]float64, [2]Point2, error) {
	var values [2]float64
	var vectors [2]Point2

	vals, vecs, err := eigenSym(2, []float64{
		m[0][0], m[0][1],
		m[0][1], m[1][1],
	})
	if err != nil {
		return values, vectors, err
	}

	for i := 0; i < 2; i++ {
		col := 1 - i
		values[i] = vals[col]
		vectors[i] = Point2{X: vecs.At(0, col), Y: vecs.At(1, col)}
	}
	return values, vectors, nil
}

func eigenSym(n int, data []float64) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, data), true) {
		return nil, nil, fmt.Errorf("%dx%d symmetric matrix: %w", n, n, ErrEigenDecomposition)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return es.Values(nil), &vecs, nil
}

// Covariance returns the covariance matrix of a point cloud.
// Fewer than two points yield the zero matrix.
func Covariance(points []Vector3) Matrix3 {
	var m Matrix3
	if len(points) < 2 {
		return m
	}

	data := make([]float64, 0, 3*len(points))
	for _, p := range points {
		data = append(data, p.X, p.Y, p.Z)
	}
	cov := mat.NewSymDense(3, nil)
	stat.CovarianceMatrix(cov, mat.NewDense(len(points), 3, data), nil)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = cov.At(i, j)
		}
	}
	return m
}

// Covariance2 returns the covariance matrix of a planar point cloud
func Covariance2(points []Point2) Matrix2 {
	var m Matrix2
	if len(points) < 2 {
		return m
	}

	data := make([]float64, 0, 2*len(points))
	for _, p := range points {
		data = append(data, p.X, p.Y)
	}
	cov := mat.NewSymDense(2, nil)
	stat.CovarianceMatrix(cov, mat.NewDense(len(points), 2, data), nil)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = cov.At(i, j)
		}
	}
	return m
}
