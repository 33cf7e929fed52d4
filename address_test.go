package launchpad

import "testing"

func TestParseWideAddress(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    WideAddress
		wantErr bool
	}{
		{name: "small decimal", in: "42", want: WideAddress{Hi: 0, Lo: 42}},
		{name: "small hex", in: "0x2a", want: WideAddress{Hi: 0, Lo: 42}},
		{name: "split halves", in: "0x10000000000000000", want: WideAddress{Hi: 1, Lo: 0}},
		{
			name: "full eth address",
			in:   "0xdeadbeef00000000cafebabe11223344",
			want: WideAddress{Hi: 0xdeadbeef00000000, Lo: 0xcafebabe11223344},
		},
		{name: "max 128-bit", in: "340282366920938463463374607431768211455", want: WideAddress{Hi: ^uint64(0), Lo: ^uint64(0)}},
		{name: "overflows 128 bits", in: "340282366920938463463374607431768211456", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "garbage", in: "0xzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseWideAddress(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseWideAddress(%q) succeeded, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWideAddress(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseWideAddress(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWideAddressString(t *testing.T) {
	a, err := ParseWideAddress("0xdeadbeef00000000cafebabe11223344")
	if err != nil {
		t.Fatal(err)
	}
	if got := a.String(); got != "0xdeadbeef00000000cafebabe11223344" {
		t.Errorf("String() = %q", got)
	}
}
