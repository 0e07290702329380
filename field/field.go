// Package field implements arithmetic over the Goldilocks prime field
// GF(p), p = 2^64 - 2^32 + 1. Every element is represented as a plain
// uint64: the "canonical" representative is a value strictly less than p,
// but intermediate values may be "non-canonical" (any uint64, understood
// modulo p) as long as they are canonicalized before being compared or
// serialized.
//
// The free functions (Add, Sub, Mul, ...) operate directly on raw uint64s
// and are what the NTT, Poseidon and Merkle kernels use on their hot paths,
// since those kernels work over flat []uint64 buffers (the wire format
// described for the pipeline's external interface). Element is a thin,
// chainable wrapper around the same functions for call sites that read more
// naturally in the gnark-crypto fr.Element style (e.g. `z.Mul(&x,
// &y).Add(z, &w)`).
package field

import "math/bits"

// Modulus is the Goldilocks prime p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// Epsilon is 2^32 - 1. Since 2^64 = p + Epsilon, folding a carry out of a
// 64-bit add/sub/mul only ever costs one multiple of Epsilon.
const Epsilon uint64 = 0xFFFFFFFF

// Generator is a fixed multiplicative generator of GF(p)*.
const Generator uint64 = 7

// CosetGenerator is the domain constant used to shift a subgroup into its
// coset for the low-degree extension (§4.D). It happens to coincide with
// Generator in this field, but is named separately because the two play
// distinct roles in the pipeline.
const CosetGenerator uint64 = 7

// Canonical reduces any uint64 to its canonical representative in [0, p).
// Because 2^64 - p = Epsilon < p, a single conditional subtraction always
// suffices, regardless of how non-canonical x is.
func Canonical(x uint64) uint64 {
	if x >= Modulus {
		x -= Modulus
	}
	return x
}

// Equal reports whether a and b represent the same residue mod p.
func Equal(a, b uint64) bool {
	return Canonical(a) == Canonical(b)
}

// IsZero reports whether a is congruent to 0 mod p.
func IsZero(a uint64) bool {
	return Canonical(a) == 0
}

// Add returns a+b mod p. At most two conditional additions of Epsilon are
// needed to fold the carries out of the 64-bit add.
func Add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		var carry2 uint64
		sum, carry2 = bits.Add64(sum, Epsilon, 0)
		if carry2 != 0 {
			// Only possible when both a and b already exceeded p.
			if a <= Modulus || b <= Modulus {
				panic("field: unreachable double carry in Add")
			}
			sum += Epsilon
		}
	}
	return sum
}

// Sub returns a-b mod p.
func Sub(a, b uint64) uint64 {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		var borrow2 uint64
		diff, borrow2 = bits.Sub64(diff, Epsilon, 0)
		if borrow2 != 0 {
			if !(a < Epsilon-1 && b > Modulus) {
				panic("field: unreachable double borrow in Sub")
			}
			diff -= Epsilon
		}
	}
	return diff
}

// reduce128 folds a 128-bit value hi*2^64+lo down to a uint64 equivalent to
// it mod p, landing in [0, 2p).
func reduce128(hi, lo uint64) uint64 {
	hiHi := hi >> 32
	hiLo := hi & Epsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t0 -= Epsilon
	}

	t1 := hiLo * Epsilon

	res, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		res += Epsilon
	}
	return res
}

// Mul returns a*b mod p.
func Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return reduce128(hi, lo)
}

// Square returns a*a mod p.
func Square(a uint64) uint64 {
	return Mul(a, a)
}

// Neg returns -a mod p.
func Neg(a uint64) uint64 {
	a = Canonical(a)
	if a == 0 {
		return 0
	}
	return Modulus - a
}

// FromNoncanonicalU96 promotes a 96-bit value (lo64 | hi32<<64) to its
// canonical-or-near-canonical residue mod p.
func FromNoncanonicalU96(lo64 uint64, hi32 uint32) uint64 {
	return reduce128(uint64(hi32), lo64)
}

// ExpU64 returns a^e mod p via square-and-multiply.
func ExpU64(a, e uint64) uint64 {
	result := uint64(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return result
}

// Inverse returns the unique y in [0, p) with a*y == 1 mod p. Panics if a is
// congruent to zero: division by zero is a programmer error in this
// pipeline, never a runtime condition to recover from (§4.A).
//
// Computed via Fermat's little theorem (a^(p-2)) rather than the reference's
// extended-binary-GCD variant: both compute the unique field inverse, and
// square-and-multiply is the form that is straightforward to get right
// without the source's safe/unsafe iteration split to cross-check against.
func Inverse(a uint64) uint64 {
	if IsZero(a) {
		panic("field: inverse of zero")
	}
	return ExpU64(a, Modulus-2)
}

// InverseTwoExp returns 2^-k mod p.
func InverseTwoExp(k uint) uint64 {
	if k <= 32 {
		return Modulus - ((Modulus - 1) >> k)
	}
	base := Modulus - ((Modulus - 1) >> 32) // 2^-32
	q := uint64(k / 32)
	r := uint(k % 32)
	result := ExpU64(base, q)
	if r > 0 {
		result = Mul(result, Modulus-((Modulus-1)>>r))
	}
	return result
}

// PrimitiveRootOfUnity returns a generator of the multiplicative subgroup of
// order 2^logN. p-1 = 2^32 * 3 * 5 * 17 * 257 * 65537, i.e. Goldilocks
// admits a 2-adic subgroup of order up to 2^32, which covers every NTT size
// used in this pipeline (logN <= 32).
func PrimitiveRootOfUnity(logN uint) uint64 {
	if logN > 32 {
		panic("field: no subgroup of the requested order (max 2-adicity is 32)")
	}
	// Generator is a generator of the full multiplicative group of order p-1.
	// Raising it to (p-1)/2^logN yields a generator of the order-2^logN subgroup.
	exp := (Modulus - 1) >> logN
	return ExpU64(Generator, exp)
}

// Element is a chainable wrapper around the free functions above, in the
// gnark-crypto fr.Element idiom: methods mutate the receiver and return it,
// so calls can be chained without intermediate temporaries.
type Element uint64

// SetUint64 sets z to v and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	*z = Element(v)
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	*z = 0
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	*z = 1
	return z
}

// IsZero reports whether z is congruent to 0.
func (z *Element) IsZero() bool {
	return IsZero(uint64(*z))
}

// Canonical returns z's canonical uint64 representative, leaving z unchanged.
func (z Element) Canonical() uint64 {
	return Canonical(uint64(z))
}

// Equal reports whether z and x represent the same residue.
func (z *Element) Equal(x *Element) bool {
	return Equal(uint64(*z), uint64(*x))
}

// Add sets z = x+y and returns z.
func (z *Element) Add(x, y *Element) *Element {
	*z = Element(Add(uint64(*x), uint64(*y)))
	return z
}

// Sub sets z = x-y and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	*z = Element(Sub(uint64(*x), uint64(*y)))
	return z
}

// Mul sets z = x*y and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	*z = Element(Mul(uint64(*x), uint64(*y)))
	return z
}

// Square sets z = x*x and returns z.
func (z *Element) Square(x *Element) *Element {
	*z = Element(Square(uint64(*x)))
	return z
}

// Neg sets z = -x and returns z.
func (z *Element) Neg(x *Element) *Element {
	*z = Element(Neg(uint64(*x)))
	return z
}

// Inverse sets z = x^-1 and returns z. Panics if x is zero.
func (z *Element) Inverse(x *Element) *Element {
	*z = Element(Inverse(uint64(*x)))
	return z
}

// Exp sets z = x^e and returns z.
func (z *Element) Exp(x *Element, e uint64) *Element {
	*z = Element(ExpU64(uint64(*x), e))
	return z
}

// String renders z's canonical decimal representation.
func (z Element) String() string {
	return uintToString(z.Canonical())
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
