package util

import "testing"

func TestParsePaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"500", 50000},
		{"12.34", 1234},
		{"0", 0},
		{"0.01", 1},
		{"99.999", 10000}, // rounds to nearest paise
	}
	for _, tc := range cases {
		got, err := ParsePaise(tc.in)
		if err != nil {
			t.Fatalf("ParsePaise(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePaise(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParsePaise("abc"); err == nil {
		t.Error("non-numeric amount must fail")
	}
	if _, err := ParsePaise(""); err == nil {
		t.Error("empty amount must fail")
	}
}

func TestFormatPaise(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{50000, "500.00"},
		{1234, "12.34"},
		{0, "0.00"},
		{-2500, "-25.00"},
	}
	for _, tc := range cases {
		if got := FormatPaise(tc.in); got != tc.want {
			t.Errorf("FormatPaise(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
