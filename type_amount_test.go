package launchpad

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Amount
		wantErr bool
	}{
		{name: "plain integer", input: "1200000", want: A(1_200_000)},
		{name: "zero", input: "0", want: A(0)},
		{name: "empty is zero", input: "", want: A(0)},
		{name: "negative", input: "-42", want: A(-42)},
		{name: "beyond int64", input: "18446744073709551615", want: A(uint64(18446744073709551615))},
		{name: "fractional rejected", input: "12.5", wantErr: true},
		{name: "garbage rejected", input: "12a", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) succeeded, want error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmountQuoTruncates(t *testing.T) {
	testCases := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -3}, // toward zero, not floor
		{100, 3, 33},
		{1, 2, 0},
	}
	for _, tc := range testCases {
		if got := A(tc.a).Quo(A(tc.b)); !got.Equal(A(tc.want)) {
			t.Errorf("A(%d).Quo(A(%d)) = %s, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestQuantityMulQuoTruncatesOnce(t *testing.T) {
	// 8M * 83333 / 1M: a single truncation at the end gives 666664.
	// Truncating the intermediate division first would give 666640.
	got := Q(8_000_000).MulQuo(A(83_333), A(1_000_000))
	if !got.Equal(Q(666_664)) {
		t.Errorf("MulQuo = %s, want 666664", got)
	}
}

func TestQuantityScale(t *testing.T) {
	if got := Q(10_000_000).Scale(80, 100); !got.Equal(Q(8_000_000)) {
		t.Errorf("Scale(80,100) = %s, want 8000000", got)
	}
	// Truncation, not rounding.
	if got := Q(7).Scale(80, 100); !got.Equal(Q(5)) {
		t.Errorf("Scale(80,100) of 7 = %s, want 5", got)
	}
}

func TestAmountJSON(t *testing.T) {
	// Amounts travel as quoted decimal strings.
	b, err := A(1_200_000).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"1200000"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"1200000"`)
	}

	var a Amount
	if err := a.UnmarshalJSON([]byte(`"83333"`)); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(83_333)) {
		t.Errorf("UnmarshalJSON = %s, want 83333", a)
	}
	// Bare numbers are accepted too.
	if err := a.UnmarshalJSON([]byte(`42`)); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(A(42)) {
		t.Errorf("UnmarshalJSON = %s, want 42", a)
	}
}
