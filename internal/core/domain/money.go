package domain

import (
	"github.com/shopspring/decimal"
)

// nanoScale is the fixed exponent of the fractional part of ScaledMoney.
const nanoScale = 9

var nanoFactor = decimal.New(1, nanoScale)

// ScaledMoney is the broker's fixed-point number: Units + Nano/1e9.
// Nano is always at a 9-digit scale regardless of sign.
type ScaledMoney struct {
	Units int64
	Nano  int32
}

// MoneyValue is a ScaledMoney amount tagged with a currency code.
type MoneyValue struct {
	Currency string
	ScaledMoney
}

// NewScaledMoney builds a ScaledMoney from its raw parts.
func NewScaledMoney(units int64, nano int32) ScaledMoney {
	return ScaledMoney{Units: units, Nano: nano}
}

// Abs decodes the value dropping its sign. Used for display fields such as
// balances and book prices where only the magnitude is shown.
func (m ScaledMoney) Abs() decimal.Decimal {
	return m.magnitude()
}

// Signed decodes the value keeping its sign. The sign comes from Units, or
// from Nano when Units is zero.
func (m ScaledMoney) Signed() decimal.Decimal {
	if m.negative() {
		return m.magnitude().Neg()
	}
	return m.magnitude()
}

// IsZero reports whether both parts are zero.
func (m ScaledMoney) IsZero() bool {
	return m.Units == 0 && m.Nano == 0
}

func (m ScaledMoney) negative() bool {
	if m.Units != 0 {
		return m.Units < 0
	}
	return m.Nano < 0
}

func (m ScaledMoney) magnitude() decimal.Decimal {
	units := decimal.NewFromInt(m.Units).Abs()
	nano := decimal.NewFromInt32(m.Nano).Abs().Div(nanoFactor)
	return units.Add(nano)
}

// ScaledMoneyFromDecimal splits d into units and nano parts carrying the same
// sign. Digits past the ninth fractional place are truncated.
func ScaledMoneyFromDecimal(d decimal.Decimal) ScaledMoney {
	units := d.Truncate(0)
	frac := d.Sub(units).Mul(nanoFactor).Truncate(0)
	return ScaledMoney{Units: units.IntPart(), Nano: int32(frac.IntPart())}
}
