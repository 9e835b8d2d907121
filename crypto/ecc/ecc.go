// Package ecc implements affine short Weierstrass elliptic curve arithmetic
// over a prime field, together with the two named parameter sets used by
// the licensing key formats. Points are immutable values; no operation
// modifies its input points.
package ecc

import (
	"math/big"
)

// Pre-computed constants for better performance
var (
	bigInt2 = big.NewInt(2)
	bigInt3 = big.NewInt(3)
)

// Point represents an affine point on a curve, or the distinguished
// point at infinity. The zero value is not a valid point; use NewPoint
// or Infinity.
type Point struct {
	X, Y *big.Int
	inf  bool
}

// NewPoint creates an affine point from the given coordinates.
// The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity, the group's neutral element.
func Infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int), inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether p and q denote the same point.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Curve represents a short Weierstrass curve y² = x³ + ax + b over the
// prime field of p, with a generator G, a public key K = priv·G and the
// order n of the generated subgroup. The two instances used by the key
// formats are SPK() and LKP(); they are never mixed within one operation.
type Curve struct {
	Name string // Human-readable parameter set name

	P *big.Int // Prime modulus of the field
	A *big.Int // Curve coefficient a
	B *big.Int // Curve coefficient b

	Gx, Gy *big.Int // Generator point coordinates
	Kx, Ky *big.Int // Public key point coordinates

	N    *big.Int // Order of the generator
	Priv *big.Int // Private scalar, K = Priv·G
}

// G returns the curve's generator point.
func (c *Curve) G() Point {
	return NewPoint(c.Gx, c.Gy)
}

// K returns the curve's public key point.
func (c *Curve) K() Point {
	return NewPoint(c.Kx, c.Ky)
}

// IsOnCurve reports whether p satisfies the curve equation.
// The point at infinity is considered on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	// y² mod p
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, c.P)
	// x³ + ax + b mod p
	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	ax := new(big.Int).Mul(c.A, p.X)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)
	return lhs.Cmp(rhs) == 0
}

// Add returns p + q under the affine addition law. Adding a point to
// its inverse yields the point at infinity. A zero slope denominator
// outside that case is reported as an InverseError.
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}

	var num, den *big.Int
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 {
			// Points are inverses of each other
			return Infinity(), nil
		}
		// Doubling: s = (3x₁² + a) / (2y₁)
		num = new(big.Int).Mul(p.X, p.X)
		num.Mul(num, bigInt3)
		num.Add(num, c.A)
		den = new(big.Int).Mul(p.Y, bigInt2)
	} else {
		// Chord: s = (y₂ − y₁) / (x₂ − x₁)
		num = new(big.Int).Sub(q.Y, p.Y)
		den = new(big.Int).Sub(q.X, p.X)
	}

	den.Mod(den, c.P)
	inv := new(big.Int).ModInverse(den, c.P)
	if inv == nil {
		return Point{}, InverseError{}
	}
	s := num.Mul(num, inv)
	s.Mod(s, c.P)

	// x₃ = s² − x₁ − x₂, y₃ = s(x₁ − x₃) − y₁
	x3 := new(big.Int).Mul(s, s)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, s)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return Point{X: x3, Y: y3}, nil
}

// ScalarMult returns k·p using right-to-left binary double-and-add.
// The scalar zero yields the point at infinity; negative scalars are
// rejected with a NegativeScalarError.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		return Point{}, NegativeScalarError{}
	}

	result := Infinity()
	addend := p
	var err error
	for i, bits := 0, k.BitLen(); i < bits; i++ {
		if k.Bit(i) == 1 {
			if result, err = c.Add(result, addend); err != nil {
				return Point{}, err
			}
		}
		if i+1 < bits {
			if addend, err = c.Add(addend, addend); err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}
