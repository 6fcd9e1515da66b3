package utils

import "testing"

func TestParseInt(t *testing.T) {
	cases := []struct {
		value string
		def   int
		want  int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-3", 10, 10},
	}

	for _, tc := range cases {
		if got := ParseInt(tc.value, tc.def); got != tc.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tc.value, tc.def, got, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{7.556, 7.56},
		{7.554, 7.55},
		{50, 50},
		{0, 0},
		{1.23456, 1.23},
	}

	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 0, 0},
	}

	for _, tc := range cases {
		if got := CalculateTotalPages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}
