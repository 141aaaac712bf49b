// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Rat is a reduced, validated rational number, useful for presentation.
// It is distinct from the RawRational stored in a Directory: a RawRational
// is never reduced or validated, carrying the TIFF bytes exactly as read;
// Rat is an opt-in conversion for callers that want the normalized view.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var (
	_ encoding.TextUnmarshaler = (*rat[int32])(nil)
	_ encoding.TextMarshaler   = rat[int32]{}
)

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

func (r rat[T]) Num() T { return r.num }
func (r rat[T]) Den() T { return r.den }

func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r rat[T]) Format(w fmt.State, v rune) {
	switch v {
	case 'f':
		fmt.Fprintf(w, "%f", r.Float64())
	default:
		fmt.Fprintf(w, "%s", r.String())
	}
}

func (r *rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.Contains(s, "/") {
		num, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		r.num = T(num)
		r.den = 1
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &r.num, &r.den); err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return nil
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// NewRat returns a new Rat with the given numerator and denominator,
// reduced to lowest terms with a positive denominator.
func NewRat[T int32 | uint32](num, den T) (Rat[T], error) {
	if den == 0 {
		return nil, fmt.Errorf("denominator must be non-zero")
	}

	gcd := func(a, b T) T {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	d := gcd(num, den)
	if d != 1 {
		num, den = num/d, den/d
	}

	if den < 0 {
		num, den = -num, -den
	}

	return &rat[T]{num: num, den: den}, nil
}

// RawRational is a TIFF rational exactly as it was read from the byte
// region: a pair of 32-bit integers, never reduced, never validated for a
// zero denominator. Signed reports whether Num/Den should be
// interpreted as SRATIONAL (signed) rather than RATIONAL (unsigned).
type RawRational struct {
	Num    int64
	Den    int64
	Signed bool
}

// Reduce converts the raw pair into a normalized Rat, reducing and
// validating it. It fails if Den is zero, which is legal (if useless) raw
// TIFF data.
func (r RawRational) Reduce() (any, error) {
	if r.Signed {
		return NewRat(int32(r.Num), int32(r.Den))
	}
	return NewRat(uint32(r.Num), uint32(r.Den))
}

func (r RawRational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
