package launchpad

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountUSDT(t *testing.T) {
	testCases := []struct {
		units int64
		want  string
	}{
		{1_200_000, "₮12.00"},
		{100_000, "₮1.00"},
		{150_000, "₮1.50"},
		{0, "₮0.00"},
		{123_456_789_000, "₮1,234,567.89"},
	}
	for _, tc := range testCases {
		if got := A(tc.units).USDT(); got != tc.want {
			t.Errorf("A(%d).USDT() = %q, want %q", tc.units, got, tc.want)
		}
	}
}

func TestAmountCompact(t *testing.T) {
	testCases := []struct {
		units int64
		want  string
	}{
		{120_000_000_000, "1.2M"},
		{42_500_000_000, "425.0K"},
		{100_000, "1"},
		{0, "0"},
	}
	for _, tc := range testCases {
		if got := A(tc.units).Compact(); got != tc.want {
			t.Errorf("A(%d).Compact() = %q, want %q", tc.units, got, tc.want)
		}
	}
}

func TestFormatAdaptive(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"12.3456", "12.35"},
		{"1", "1.00"},
		{"0.5", "0.5000"},
		{"0.012345", "0.0123"},
		{"0.00012345", "0.000123"},
		{"0.00000125", "0.00000125"},
		{"0.000000125", "1.25e-7"},
		{"0.00000000015625", "1.56e-10"},
		{"-0.000000125", "-1.25e-7"},
	}
	for _, tc := range testCases {
		d := decimal.RequireFromString(tc.in)
		if got := formatAdaptive(d); got != tc.want {
			t.Errorf("formatAdaptive(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
