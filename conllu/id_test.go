package conllu

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b ID
		want int
	}{
		{"plain ascending", "1", "2", -1},
		{"plain equal", "7", "7", 0},
		{"plain numeric not lexical", "2", "10", -1},
		{"range start first", "3-4", "5-6", -1},
		{"plain before covering range", "3", "3-4", -1},
		{"range end breaks tie", "3-4", "3-5", -1},
		{"decimal after plain", "3", "3.1", -1},
		{"decimal ordering", "3.2", "3.10", -1},
		{"decimal vs next plain", "3.1", "4", -1},
		{"missing fractional is zero", "3.0", "3", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sign(Compare(tc.a, tc.b)); got != tc.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := sign(Compare(tc.b, tc.a)); got != -tc.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestIDShape(t *testing.T) {
	if !ID("3-4").IsRange() || ID("3").IsRange() {
		t.Error("IsRange")
	}
	if !ID("3.1").IsDecimal() || ID("3").IsDecimal() {
		t.Error("IsDecimal")
	}
}
