package numtext

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberAccessors(t *testing.T) {
	t.Parallel()

	huge := pow10(30)

	tests := []struct {
		name    string
		n       Number
		isInt   bool
		int64   int64
		fits    bool
		sign    int
		str     string
		float64 float64
	}{
		{"zero value", Number{}, true, 0, true, 0, "0", 0},
		{"int", Int(5), true, 5, true, 1, "5", 5},
		{"negative int", Int(-42), true, -42, true, -1, "-42", -42},
		{"big int", BigInt(huge), true, 0, false, 1, huge.String(), 1e30},
		{"float", Float(2.5), false, 0, false, 1, "2.5", 2.5},
		{"negative float", Float(-0.25), false, 0, false, -1, "-0.25", -0.25},
		{"large float", Float(1e21), false, 0, false, 1, "1000000000000000000000", 1e21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isInt, tt.n.IsInt())
			got, ok := tt.n.Int64()
			assert.Equal(t, tt.fits, ok)
			assert.Equal(t, tt.int64, got)
			assert.Equal(t, tt.sign, tt.n.Sign())
			assert.Equal(t, tt.str, tt.n.String())
			assert.Equal(t, tt.float64, tt.n.Float64())
		})
	}
}

func TestNumberBigInt(t *testing.T) {
	t.Parallel()

	src := big.NewInt(7)
	n := BigInt(src)
	src.SetInt64(8)
	assert.Equal(t, "7", n.String(), "BigInt must copy its argument")

	out := n.BigInt()
	out.SetInt64(9)
	assert.Equal(t, "7", n.String(), "BigInt() must return a copy")

	assert.True(t, BigInt(nil).Equal(Number{}))
	assert.Equal(t, "2", Float(2.9).BigInt().String())
	assert.Equal(t, "-2", Float(-2.9).BigInt().String())
	assert.Nil(t, Float(math.NaN()).BigInt())
	assert.Nil(t, Float(math.Inf(1)).BigInt())
}

func TestNumberEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(3).Equal(BigInt(big.NewInt(3))))
	assert.True(t, Number{}.Equal(Int(0)))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.True(t, Float(0.5).Equal(Float(0.5)))
	assert.False(t, Float(0.5).Equal(Float(0.25)))
}

func TestNumberArithmetic(t *testing.T) {
	t.Parallel()

	sum := Int(2).add(Int(3))
	assert.True(t, sum.IsInt())
	assert.Equal(t, "5", sum.String())

	mixed := Int(2).add(Float(0.5))
	assert.False(t, mixed.IsInt())
	assert.Equal(t, 2.5, mixed.Float64())

	prod := BigInt(pow10(20)).mul(Int(3))
	assert.True(t, prod.IsInt())
	assert.Equal(t, "300000000000000000000", prod.String())

	assert.Equal(t, 0.25, Int(4).reciprocal().Float64())
	assert.False(t, Int(4).reciprocal().IsInt())

	assert.True(t, Int(0).neg().Equal(Int(0)))
	assert.True(t, Float(0).neg().Equal(Float(0)))
	assert.False(t, math.Signbit(Float(0).neg().Float64()))
	assert.Equal(t, "-7", Int(7).neg().String())
	assert.Equal(t, 0.5, Float(-0.5).neg().Float64())
}

func TestNumberOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    Number
		want int
	}{
		{Int(0), 0},
		{Int(9), 0},
		{Int(10), 1},
		{Int(999), 2},
		{BigInt(pow10(33)), 33},
		{Int(-100), 2},
		{Float(0), 0},
		{Float(0.5), 0},
		{Float(0.05), -1},
		{Float(0.002), -2},
		{Float(250.7), 2},
		{Float(math.NaN()), 0},
	}

	for _, tt := range tests {
		if got := tt.n.order(); got != tt.want {
			t.Errorf("order(%s) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
