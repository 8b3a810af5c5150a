package numtext

import (
	"math"
	"math/big"
	"strconv"
)

// Number is the result of Parse and the input of Render: an exact integer
// of any size, or a float64.
//
// The zero value is the integer 0.
type Number struct {
	i     *big.Int // nil means 0 when float is false
	f     float64
	float bool
}

// Int returns the integer Number n.
func Int(n int64) Number {
	return Number{i: big.NewInt(n)}
}

// BigInt returns the integer Number n. The value is copied.
func BigInt(n *big.Int) Number {
	if n == nil {
		return Number{}
	}
	return Number{i: new(big.Int).Set(n)}
}

// Float returns the floating-point Number f.
func Float(f float64) Number {
	return Number{f: f, float: true}
}

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool { return !n.float }

// BigInt returns a copy of the integer value. For floats it returns the
// value truncated toward zero, or nil for NaN and infinities.
func (n Number) BigInt() *big.Int {
	if n.float {
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil
		}
		i, _ := big.NewFloat(n.f).Int(nil)
		return i
	}
	return new(big.Int).Set(n.bigInt())
}

// Int64 returns the integer value and whether it is an integer that fits
// in an int64.
func (n Number) Int64() (int64, bool) {
	if n.float {
		return 0, false
	}
	i := n.bigInt()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Float64 returns the value as a float64, rounding large integers to the
// nearest representable value.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.bigInt()).Float64()
	return f
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	if n.float {
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	}
	return n.bigInt().Sign()
}

// String returns the decimal form: digits for integers, the shortest
// round-trip form without exponent for floats ("0.25", "2023049.2369").
func (n Number) String() string {
	if n.float {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}
	return n.bigInt().String()
}

// Equal reports whether n and m have the same kind and value.
func (n Number) Equal(m Number) bool {
	if n.float != m.float {
		return false
	}
	if n.float {
		return n.f == m.f
	}
	return n.bigInt().Cmp(m.bigInt()) == 0
}

var bigZero = new(big.Int)

// bigInt returns the integer value without copying. Callers must not
// modify the result.
func (n Number) bigInt() *big.Int {
	if n.i == nil {
		return bigZero
	}
	return n.i
}

// Arithmetic follows one rule: integer op integer stays an integer, any
// float operand makes the result a float.

func (n Number) add(m Number) Number {
	if n.float || m.float {
		return Float(n.Float64() + m.Float64())
	}
	return Number{i: new(big.Int).Add(n.bigInt(), m.bigInt())}
}

func (n Number) mul(m Number) Number {
	if n.float || m.float {
		return Float(n.Float64() * m.Float64())
	}
	return Number{i: new(big.Int).Mul(n.bigInt(), m.bigInt())}
}

// reciprocal returns 1/n as a float. The caller checks for zero.
func (n Number) reciprocal() Number {
	return Float(1 / n.Float64())
}

// neg returns -n. Zero stays zero, so "negative zero" is 0.
func (n Number) neg() Number {
	if n.isZero() {
		return n
	}
	if n.float {
		return Float(-n.f)
	}
	return Number{i: new(big.Int).Neg(n.bigInt())}
}

func (n Number) isZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.bigInt().Sign() == 0
}

// order returns the base-10 order of magnitude of a non-negative value:
// 0 for 0..9, 2 for 100..999, -1 for 0.05, -2 for 0.01.
// Values below one truncate toward zero (0.5 has order 0).
func (n Number) order() int {
	if !n.float {
		if n.isZero() {
			return 0
		}
		return len(new(big.Int).Abs(n.bigInt()).String()) - 1
	}
	f := math.Abs(n.f)
	switch {
	case f == 0 || math.IsNaN(f):
		return 0
	case math.IsInf(f, 0):
		return math.MaxInt32
	case f >= 1:
		i, _ := big.NewFloat(f).Int(nil)
		return len(i.String()) - 1
	default:
		return int(math.Log10(f))
	}
}
