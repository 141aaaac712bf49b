package exifwalk

import "fmt"

// ValueKind identifies which field of a Value is populated. Design note
// as a tagged union: the per-format decoder produces one of eleven value shapes,
// encoded here as a single sum type rather than overloaded setters, so the
// directory's storage type is total and exhaustive.
type ValueKind uint8

const (
	KindInt ValueKind = iota + 1
	KindIntArray
	KindLong
	KindRational
	KindRationalArray
	KindFloat
	KindFloatArray
	KindDouble
	KindDoubleArray
	KindString
	KindBytes
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindIntArray:
		return "IntArray"
	case KindLong:
		return "Long"
	case KindRational:
		return "Rational"
	case KindRationalArray:
		return "RationalArray"
	case KindFloat:
		return "Float"
	case KindFloatArray:
		return "FloatArray"
	case KindDouble:
		return "Double"
	case KindDoubleArray:
		return "DoubleArray"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// Value is a single tagged-union value as stored in a Directory. Exactly
// one set of fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind

	intVal   int32
	ints     []int32
	longVal  int64
	rat      RawRational
	rats     []RawRational
	floatVal float32
	floats   []float32
	dblVal   float64
	dbls     []float64
	str      string
	bytes    []byte
}

func NewIntValue(v int32) Value            { return Value{Kind: KindInt, intVal: v} }
func NewIntArrayValue(v []int32) Value     { return Value{Kind: KindIntArray, ints: v} }
func NewLongValue(v int64) Value           { return Value{Kind: KindLong, longVal: v} }
func NewRationalValue(v RawRational) Value { return Value{Kind: KindRational, rat: v} }
func NewRationalArrayValue(v []RawRational) Value {
	return Value{Kind: KindRationalArray, rats: v}
}
func NewFloatValue(v float32) Value         { return Value{Kind: KindFloat, floatVal: v} }
func NewFloatArrayValue(v []float32) Value  { return Value{Kind: KindFloatArray, floats: v} }
func NewDoubleValue(v float64) Value        { return Value{Kind: KindDouble, dblVal: v} }
func NewDoubleArrayValue(v []float64) Value { return Value{Kind: KindDoubleArray, dbls: v} }
func NewStringValue(v string) Value         { return Value{Kind: KindString, str: v} }
func NewBytesValue(v []byte) Value          { return Value{Kind: KindBytes, bytes: v} }

// Int returns the scalar int value and whether Kind == KindInt.
func (v Value) Int() (int32, bool) { return v.intVal, v.Kind == KindInt }

// IntArray returns the int array and whether Kind == KindIntArray.
func (v Value) IntArray() ([]int32, bool) { return v.ints, v.Kind == KindIntArray }

// Long returns the scalar long value and whether Kind == KindLong.
func (v Value) Long() (int64, bool) { return v.longVal, v.Kind == KindLong }

// Rational returns the scalar rational and whether Kind == KindRational.
func (v Value) Rational() (RawRational, bool) { return v.rat, v.Kind == KindRational }

// RationalArray returns the rational array and whether Kind == KindRationalArray.
func (v Value) RationalArray() ([]RawRational, bool) { return v.rats, v.Kind == KindRationalArray }

// Float returns the scalar float value and whether Kind == KindFloat.
func (v Value) Float() (float32, bool) { return v.floatVal, v.Kind == KindFloat }

// FloatArray returns the float array and whether Kind == KindFloatArray.
func (v Value) FloatArray() ([]float32, bool) { return v.floats, v.Kind == KindFloatArray }

// Double returns the scalar double value and whether Kind == KindDouble.
func (v Value) Double() (float64, bool) { return v.dblVal, v.Kind == KindDouble }

// DoubleArray returns the double array and whether Kind == KindDoubleArray.
func (v Value) DoubleArray() ([]float64, bool) { return v.dbls, v.Kind == KindDoubleArray }

// String returns the scalar string value and whether Kind == KindString.
func (v Value) String() (string, bool) { return v.str, v.Kind == KindString }

// Bytes returns the raw byte slice and whether Kind == KindBytes.
func (v Value) Bytes() ([]byte, bool) { return v.bytes, v.Kind == KindBytes }

// GoString renders the value for debugging/logging.
func (v Value) GoString() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.intVal)
	case KindIntArray:
		return fmt.Sprintf("IntArray(%v)", v.ints)
	case KindLong:
		return fmt.Sprintf("Long(%d)", v.longVal)
	case KindRational:
		return fmt.Sprintf("Rational(%s)", v.rat)
	case KindRationalArray:
		return fmt.Sprintf("RationalArray(%v)", v.rats)
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.floatVal)
	case KindFloatArray:
		return fmt.Sprintf("FloatArray(%v)", v.floats)
	case KindDouble:
		return fmt.Sprintf("Double(%v)", v.dblVal)
	case KindDoubleArray:
		return fmt.Sprintf("DoubleArray(%v)", v.dbls)
	case KindString:
		return fmt.Sprintf("String(%q)", v.str)
	case KindBytes:
		return fmt.Sprintf("Bytes(%d bytes)", len(v.bytes))
	default:
		return "Value(invalid)"
	}
}
