// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package funcwrap

import (
	"github.com/shopspring/decimal"
)

// Decimal represents arbitrary precision decimal values and implements Object
// interface.
type Decimal decimal.Decimal

func (Decimal) Type() ObjectType {
	return TDecimal
}

func (o Decimal) Go() decimal.Decimal {
	return decimal.Decimal(o)
}

func (o Decimal) ToString() string {
	return o.Go().String()
}

// Equal implements Object interface.
func (o Decimal) Equal(right Object) bool {
	switch v := right.(type) {
	case Decimal:
		return o.Go().Equal(v.Go())
	case Int:
		return o.Go().Equal(decimal.NewFromInt(int64(v)))
	case Float:
		return o.Go().Equal(decimal.NewFromFloat(float64(v)))
	}
	return false
}

// IsFalsy implements Object interface.
func (o Decimal) IsFalsy() bool {
	return o.Go().IsZero()
}

// Float64 returns the nearest float64 value.
func (o Decimal) Float64() float64 {
	f, _ := o.Go().Float64()
	return f
}

// DecimalFromString parses v as a Decimal.
func DecimalFromString(v Str) (Decimal, error) {
	r, err := decimal.NewFromString(string(v))
	if err != nil {
		return Decimal{}, ErrType.NewError(err.Error())
	}
	return Decimal(r), nil
}

func MustDecimalFromString(v Str) Decimal {
	r, err := DecimalFromString(v)
	if err != nil {
		panic(err)
	}
	return r
}

// ToDecimal converts the numeric objects Int, Float and Decimal to a
// decimal.Decimal.
func ToDecimal(o Object) (decimal.Decimal, bool) {
	switch v := o.(type) {
	case Decimal:
		return v.Go(), true
	case Int:
		return decimal.NewFromInt(int64(v)), true
	case Float:
		return decimal.NewFromFloat(float64(v)), true
	}
	return decimal.Decimal{}, false
}

// ToFloat64 converts the numeric objects Int, Float and Decimal to a float64.
func ToFloat64(o Object) (float64, bool) {
	switch v := o.(type) {
	case Float:
		return float64(v), true
	case Int:
		return float64(v), true
	case Decimal:
		return v.Float64(), true
	}
	return 0, false
}

var DecimalZero = Decimal(decimal.Zero)
