package exifwalk

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

// ratComparer lets cmp.Diff compare Rat[uint32] values by their exported
// Num/Den accessors, mirroring bep/imagemeta's use of cmp.Comparer for its
// own Rat type in imagemeta_test.go.
var ratComparer = cmp.Comparer(func(x, y Rat[uint32]) bool {
	return x.Num() == y.Num() && x.Den() == y.Den()
})

func TestNewRatReducesToLowestTerms(t *testing.T) {
	c := qt.New(t)

	c.Run("unsigned", func(c *qt.C) {
		r, err := NewRat[uint32](2, 4)
		c.Assert(err, qt.IsNil)
		c.Assert(r.Num(), qt.Equals, uint32(1))
		c.Assert(r.Den(), qt.Equals, uint32(2))
	})

	c.Run("zero denominator", func(c *qt.C) {
		_, err := NewRat[int32](1, 0)
		c.Assert(err, qt.ErrorMatches, "denominator must be non-zero")
	})

	c.Run("negative denominator normalizes sign", func(c *qt.C) {
		r, err := NewRat[int32](1, -2)
		c.Assert(err, qt.IsNil)
		c.Assert(r.Num(), qt.Equals, int32(-1))
		c.Assert(r.Den(), qt.Equals, int32(2))
	})
}

func TestRawRationalReduce(t *testing.T) {
	c := qt.New(t)

	raw := RawRational{Num: 6, Den: 3, Signed: false}
	reduced, err := raw.Reduce()
	c.Assert(err, qt.IsNil)
	rat, ok := reduced.(Rat[uint32])
	c.Assert(ok, qt.IsTrue)
	c.Assert(rat.Num(), qt.Equals, uint32(2))
	c.Assert(rat.Den(), qt.Equals, uint32(1))

	c.Assert(raw.String(), qt.Equals, "6/3") // unreduced representation is preserved
}

func TestRawRationalReduceMatchesDirectlyConstructedRat(t *testing.T) {
	c := qt.New(t)

	raw := RawRational{Num: 4, Den: 8, Signed: false}
	reduced, err := raw.Reduce()
	c.Assert(err, qt.IsNil)

	want, err := NewRat[uint32](1, 2)
	c.Assert(err, qt.IsNil)

	if diff := cmp.Diff(want, reduced.(Rat[uint32]), ratComparer); diff != "" {
		t.Errorf("reduced rational mismatch (-want +got):\n%s", diff)
	}
}

func TestRawRationalReduceZeroDenominatorFails(t *testing.T) {
	c := qt.New(t)

	raw := RawRational{Num: 5, Den: 0, Signed: true}
	_, err := raw.Reduce()
	c.Assert(err, qt.ErrorMatches, "denominator must be non-zero")
}
