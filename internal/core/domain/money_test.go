package domain_test

import (
	"testing"

	"github.com/SscSPs/invest_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScaledMoney_Decode(t *testing.T) {
	tests := []struct {
		name       string
		units      int64
		nano       int32
		wantAbs    string
		wantSigned string
	}{
		{name: "whole and half", units: 100, nano: 500000000, wantAbs: "100.5", wantSigned: "100.5"},
		{name: "negative units positive nano", units: -50, nano: 250000000, wantAbs: "50.25", wantSigned: "-50.25"},
		{name: "negative units negative nano", units: -50, nano: -250000000, wantAbs: "50.25", wantSigned: "-50.25"},
		{name: "leading zeros in nano are kept", units: 1, nano: 5, wantAbs: "1.000000005", wantSigned: "1.000000005"},
		{name: "zero units negative nano", units: 0, nano: -500000000, wantAbs: "0.5", wantSigned: "-0.5"},
		{name: "zero", units: 0, nano: 0, wantAbs: "0", wantSigned: "0"},
		{name: "integer only", units: 42, nano: 0, wantAbs: "42", wantSigned: "42"},
		{name: "max nano", units: 0, nano: 999999999, wantAbs: "0.999999999", wantSigned: "0.999999999"},
		{name: "oversized nano carries into units", units: 1, nano: 1500000000, wantAbs: "2.5", wantSigned: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.NewScaledMoney(tt.units, tt.nano)
			assert.True(t, decimal.RequireFromString(tt.wantAbs).Equal(m.Abs()), "abs: got %s", m.Abs())
			assert.True(t, decimal.RequireFromString(tt.wantSigned).Equal(m.Signed()), "signed: got %s", m.Signed())
		})
	}
}

func TestScaledMoney_NonNegativeMatchesFormula(t *testing.T) {
	for _, units := range []int64{0, 1, 7, 123456789} {
		for _, nano := range []int32{0, 1, 10, 999, 123456789, 999999999} {
			m := domain.NewScaledMoney(units, nano)
			want := decimal.NewFromInt(units).Add(decimal.New(int64(nano), -9))
			assert.True(t, want.Equal(m.Abs()), "units=%d nano=%d", units, nano)
			assert.True(t, want.Equal(m.Signed()), "units=%d nano=%d", units, nano)
		}
	}
}

func TestScaledMoney_NegativeUnits(t *testing.T) {
	for _, units := range []int64{-1, -50, -987654321} {
		for _, nano := range []int32{0, 1, 250000000, 999999999} {
			m := domain.NewScaledMoney(units, nano)
			frac := decimal.New(int64(nano), -9)
			assert.True(t, decimal.NewFromInt(units).Sub(frac).Equal(m.Signed()), "units=%d nano=%d", units, nano)
			assert.True(t, decimal.NewFromInt(-units).Add(frac).Equal(m.Abs()), "units=%d nano=%d", units, nano)
		}
	}
}

func TestScaledMoneyFromDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ScaledMoney
	}{
		{in: "100.5", want: domain.NewScaledMoney(100, 500000000)},
		{in: "-50.25", want: domain.NewScaledMoney(-50, -250000000)},
		{in: "0.000000005", want: domain.NewScaledMoney(0, 5)},
		{in: "12", want: domain.NewScaledMoney(12, 0)},
		{in: "1.0000000019", want: domain.NewScaledMoney(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ScaledMoneyFromDecimal(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestScaledMoney_IsZero(t *testing.T) {
	assert.True(t, domain.ScaledMoney{}.IsZero())
	assert.False(t, domain.NewScaledMoney(0, 1).IsZero())
}
