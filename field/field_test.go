package field

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// S1: literal field scenarios from the spec.
func TestS1LiteralScenarios(t *testing.T) {
	require.Equal(t, uint64(0), Canonical(Add(Modulus-1, 1)))
	require.Equal(t, Modulus-1, Sub(0, 1))

	var half uint64 = (Modulus + 1) / 2
	require.Equal(t, uint64(1), Canonical(Mul(2, half)))

	require.Equal(t, uint64(1), Canonical(Mul(Inverse(7), 7)))

	require.Equal(t, Square(Epsilon)%Modulus, reduce128(Epsilon, 0))
}

func TestCanonicalIdempotence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x := r.Uint64()
		c1 := Canonical(x)
		require.Less(t, c1, Modulus)
		require.Equal(t, c1, Canonical(c1))
	}
}

func randCanonical(r *rand.Rand) uint64 {
	return r.Uint64() % Modulus
}

func TestRingLaws(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a := randCanonical(r)
		b := randCanonical(r)
		c := randCanonical(r)

		require.True(t, Equal(Add(a, b), Add(b, a)), "commutativity of +")
		require.True(t, Equal(Add(Add(a, b), c), Add(a, Add(b, c))), "associativity of +")
		require.True(t, Equal(Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c))), "distributivity")
		require.True(t, IsZero(Sub(a, a)), "a-a == 0")

		if !IsZero(a) {
			require.Equal(t, uint64(1), Canonical(Mul(a, Inverse(a))), "a * inv(a) == 1")
		}
	}
}

func TestInverseTwoExp(t *testing.T) {
	for k := uint(0); k <= 40; k++ {
		var two Element
		two.SetUint64(2)
		var pow Element
		pow.Exp(&two, uint64(k))

		inv := InverseTwoExp(k)
		require.Equal(t, uint64(1), Canonical(Mul(uint64(pow), inv)))
	}
}

func TestExpU64(t *testing.T) {
	require.Equal(t, uint64(1), ExpU64(5, 0))
	require.Equal(t, uint64(25), Canonical(ExpU64(5, 2)))
}

func TestElementChaining(t *testing.T) {
	var a, b, z Element
	a.SetUint64(3)
	b.SetUint64(4)
	z.Mul(&a, &b).Add(&z, &a)
	require.Equal(t, uint64(15), z.Canonical())
}

func TestPrimitiveRootOfUnity(t *testing.T) {
	for logN := uint(1); logN <= 16; logN++ {
		w := PrimitiveRootOfUnity(logN)
		n := uint64(1) << logN
		require.Equal(t, uint64(1), Canonical(ExpU64(w, n)), "w^n == 1")
		require.NotEqual(t, uint64(1), Canonical(ExpU64(w, n/2)), "w^(n/2) != 1")
	}
}

func TestFromNoncanonicalU96(t *testing.T) {
	got := FromNoncanonicalU96(0, 0)
	require.True(t, IsZero(got))
}
