package balance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"minichem/internal/ptable"
	"minichem/internal/substance"
)

// lambdaThreshold bounds the combination search when the nullspace
// has more than one dimension.
const lambdaThreshold = 4

// UnbalanceableError reports a scheme that admits no positive integer
// coefficient vector.
type UnbalanceableError struct {
	Reagents []string
	Products []string
	Reason   string
}

func (e *UnbalanceableError) Error() string {
	return fmt.Sprintf("balance: cannot balance %v -> %v: %s", e.Reagents, e.Products, e.Reason)
}

// IsUnbalanceable reports whether err is an UnbalanceableError.
func IsUnbalanceable(err error) bool {
	var ue *UnbalanceableError
	return errors.As(err, &ue)
}

// Coefficients returns the minimal positive integer coefficients for
// the scheme, ordered as reagents then products. Both mass and charge
// are conserved, so ionic schemes balance too.
func Coefficients(reagents, products []substance.Particle) ([]int, error) {
	if len(reagents) == 0 || len(products) == 0 {
		return nil, unbalanceable(reagents, products, "a scheme needs reagents and products")
	}

	a := conservationMatrix(reagents, products)
	basis := nullspaceBasis(a)
	if len(basis) == 0 {
		return nil, unbalanceable(reagents, products, "the conservation matrix has no nullspace")
	}

	// Integerize every basis vector; drop those that fail exact
	// verification against the integer matrix.
	var intBasis [][]int
	for _, v := range basis {
		iv, ok := integerize(v)
		if ok && exactNull(a, iv) {
			intBasis = append(intBasis, iv)
		}
	}
	if len(intBasis) == 0 {
		return nil, unbalanceable(reagents, products, "no rational nullspace vector found")
	}

	if coeffs, ok := positiveReduced(intBasis[0]); ok && len(intBasis) == 1 {
		return coeffs, nil
	}

	// Several independent solutions (or a mixed-sign single one):
	// search small positive combinations of the basis vectors.
	if coeffs, ok := searchCombination(a, intBasis); ok {
		return coeffs, nil
	}
	return nil, unbalanceable(reagents, products, "no positive integer combination of nullspace vectors")
}

func unbalanceable(reagents, products []substance.Particle, reason string) *UnbalanceableError {
	return &UnbalanceableError{
		Reagents: formulas(reagents),
		Products: formulas(products),
		Reason:   reason,
	}
}

func formulas(ps []substance.Particle) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Formula()
	}
	return out
}

// conservationMatrix builds the integer matrix: element rows plus one
// charge row, reagent columns positive, product columns negative.
func conservationMatrix(reagents, products []substance.Particle) [][]int {
	all := append(append([]substance.Particle{}, reagents...), products...)

	var elements []ptable.Element
	seen := make(map[ptable.Element]struct{})
	for _, p := range all {
		for _, ec := range orderedElements(p) {
			if _, ok := seen[ec]; !ok {
				seen[ec] = struct{}{}
				elements = append(elements, ec)
			}
		}
	}

	rows := make([][]int, 0, len(elements)+1)
	for _, el := range elements {
		row := make([]int, len(all))
		for j, p := range all {
			count := p.Composition()[el]
			if j >= len(reagents) {
				count = -count
			}
			row[j] = count
		}
		rows = append(rows, row)
	}

	charge := make([]int, len(all))
	for j, p := range all {
		c := p.Charge()
		if j >= len(reagents) {
			c = -c
		}
		charge[j] = c
	}
	return append(rows, charge)
}

// orderedElements returns a particle's elements in a deterministic
// order, by atomic number.
func orderedElements(p substance.Particle) []ptable.Element {
	els := substance.Elements(p)
	for i := 1; i < len(els); i++ {
		for j := i; j > 0 && els[j].AtomicNumber < els[j-1].AtomicNumber; j-- {
			els[j], els[j-1] = els[j-1], els[j]
		}
	}
	return els
}

// nullspaceBasis computes an orthonormal basis of the nullspace via
// the right singular vectors belonging to vanishing singular values.
func nullspaceBasis(a [][]int) [][]float64 {
	m, n := len(a), len(a[0])
	dense := mat.NewDense(m, n, nil)
	for i, row := range a {
		for j, v := range row {
			dense.Set(i, j, float64(v))
		}
	}

	var svd mat.SVD
	if !svd.Factorize(dense, mat.SVDFullV) {
		return nil
	}
	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	tol := 1e-10
	if len(values) > 0 {
		tol = float64(max(m, n)) * values[0] * 1e-12
		if tol < 1e-10 {
			tol = 1e-10
		}
	}

	var basis [][]float64
	for j := 0; j < n; j++ {
		small := j >= len(values) || values[j] <= tol
		if !small {
			continue
		}
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = v.At(i, j)
		}
		basis = append(basis, col)
	}
	return basis
}

// integerize scales a float vector to integers: normalize by the
// smallest nonzero magnitude, reconstruct each entry as a bounded
// fraction, and clear denominators.
func integerize(v []float64) ([]int, bool) {
	smallest := 0.0
	for _, x := range v {
		ax := math.Abs(x)
		if ax > 1e-9 && (smallest == 0 || ax < smallest) {
			smallest = ax
		}
	}
	if smallest == 0 {
		return nil, false
	}

	nums := make([]int64, len(v))
	dens := make([]int64, len(v))
	for i, x := range v {
		n, d, ok := rationalize(x/smallest, 4096)
		if !ok {
			return nil, false
		}
		nums[i], dens[i] = n, d
	}

	scale := int64(1)
	for _, d := range dens {
		scale = lcm64(scale, d)
		if scale > 1<<40 {
			return nil, false
		}
	}

	out := make([]int, len(v))
	for i := range v {
		out[i] = int(nums[i] * (scale / dens[i]))
	}

	// Prefer a vector whose first nonzero entry is positive.
	for _, x := range out {
		if x != 0 {
			if x < 0 {
				for i := range out {
					out[i] = -out[i]
				}
			}
			break
		}
	}
	return out, true
}

// rationalize reconstructs x as a fraction with bounded denominator
// using continued fractions.
func rationalize(x float64, maxDen int64) (int64, int64, bool) {
	if math.Abs(x) < 1e-9 {
		return 0, 1, true
	}
	neg := x < 0
	if neg {
		x = -x
	}

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	rem := x
	for iter := 0; iter < 64; iter++ {
		a := int64(math.Floor(rem))
		p0, p1 = p1, a*p1+p0
		q0, q1 = q1, a*q1+q0
		if q1 > maxDen {
			return 0, 0, false
		}
		approx := float64(p1) / float64(q1)
		if math.Abs(approx-x) < 1e-9*math.Max(1, x) {
			if neg {
				p1 = -p1
			}
			return p1, q1, true
		}
		frac := rem - math.Floor(rem)
		if frac < 1e-12 {
			break
		}
		rem = 1 / frac
	}
	return 0, 0, false
}

// exactNull verifies A·v = 0 in integer arithmetic.
func exactNull(a [][]int, v []int) bool {
	for _, row := range a {
		sum := 0
		for j, c := range row {
			sum += c * v[j]
		}
		if sum != 0 {
			return false
		}
	}
	return true
}

// positiveReduced checks that every entry is positive and divides the
// vector by its gcd.
func positiveReduced(v []int) ([]int, bool) {
	g := 0
	for _, x := range v {
		if x <= 0 {
			return nil, false
		}
		g = gcd(g, x)
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = x / g
	}
	return out, true
}

// searchCombination tries small positive integer combinations of the
// basis vectors, including sign flips, and returns the first all
// positive exact solution.
func searchCombination(a [][]int, basis [][]int) ([]int, bool) {
	n := len(basis[0])
	lambdas := make([]int, len(basis))
	for i := range lambdas {
		lambdas[i] = -lambdaThreshold
	}

	for {
		w := make([]int, n)
		skip := true
		for i, l := range lambdas {
			if l != 0 {
				skip = false
			}
			for j := range w {
				w[j] += l * basis[i][j]
			}
		}
		if !skip {
			if coeffs, ok := positiveReduced(w); ok && exactNull(a, coeffs) {
				return coeffs, true
			}
		}

		// Advance the odometer.
		i := 0
		for ; i < len(lambdas); i++ {
			lambdas[i]++
			if lambdas[i] <= lambdaThreshold {
				break
			}
			lambdas[i] = -lambdaThreshold
		}
		if i == len(lambdas) {
			return nil, false
		}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm64(a, b int64) int64 {
	g := a
	x := b
	for x != 0 {
		g, x = x, g%x
	}
	return a / g * b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
