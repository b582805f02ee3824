package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{148800, "$148,800"},
		{1234567, "$1,234,567"},
		{-2500.5, "-$2,500.50"},
		{19.99, "$19.99"},
		{-89280, "-$89,280"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12400, "12,400"},
		{2612.5, "2,612.5"},
		{0, "0"},
		{-300, "-300"},
	}
	for _, tc := range cases {
		if got := FormatUnits(tc.in); got != tc.want {
			t.Errorf("FormatUnits(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(0.6); got != "0.6" {
		t.Errorf("FormatRatio(0.6) = %q", got)
	}
	if got := FormatRatio(2); got != "2" {
		t.Errorf("FormatRatio(2) = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100); got != "+$50" {
		t.Errorf("FormatDelta = %q, want +$50", got)
	}
	if got := FormatDelta(100, 150); got != "-$50" {
		t.Errorf("FormatDelta = %q, want -$50", got)
	}
}
