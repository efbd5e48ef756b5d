package bitmap

import (
	"bytes"
	"testing"
)

func mustDense(t *testing.T, s string) Dense {
	d, err := FromString(s)
	if err != nil {
		t.Fatalf("bugged test setup: %v", err)
	}
	return d
}

func TestSelect(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		mask Dense
		eout Dense
	}{
		{
			name: "all",
			data: mustDense(t, "101"),
			mask: mustDense(t, "111"),
			eout: mustDense(t, "101"),
		}, {
			name: "some",
			data: mustDense(t, "10100011"),
			mask: mustDense(t, "11111100"),
			eout: mustDense(t, "101000"),
		}, {
			name: "none",
			data: mustDense(t, "10100011 111"),
			mask: mustDense(t, "00000000 000"),
			eout: mustDense(t, ""),
		}, {
			name: "alternating",
			data: mustDense(t, "10100011 101"),
			mask: mustDense(t, "10101010 101"),
			eout: mustDense(t, "110111"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := Select(tc.data, tc.mask)
			if out.len != tc.eout.len {
				t.Errorf("got bitmap of len %d, want %d", out.len, tc.eout.len)
			}
			if !bytes.Equal(out.bits, tc.eout.bits) {
				t.Errorf("Select(%v, %v) == %v, want %v", tc.data.bits, tc.mask.bits, out.bits, tc.eout.bits)
			}
		})
	}
}

func TestCountOnes(t *testing.T) {
	tcs := []struct {
		name string
		data Dense
		eout int
	}{
		{"short", mustDense(t, "101"), 2},
		{"empty", mustDense(t, ""), 0},
		{"multibyte one", mustDense(t, "1111 1111 11"), 10},
		{"multibyte two", mustDense(t, "1011 1011 10"), 7},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := CountOnes(tc.data)
			if out != tc.eout {
				t.Errorf("CountOnes(%v) == %v, want %v", tc.data.bits, out, tc.eout)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tcs := []struct {
		name string
		a, b Dense
		eout bool
	}{
		{"identical", mustDense(t, "10110"), mustDense(t, "10110"), true},
		{"different bits", mustDense(t, "10110"), mustDense(t, "10111"), false},
		{"different lengths", mustDense(t, "01"), mustDense(t, "010"), false},
		{"both empty", mustDense(t, ""), mustDense(t, ""), true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if out := Equal(tc.a, tc.b); out != tc.eout {
				t.Errorf("Equal(%v, %v) == %v, want %v", tc.a.bits, tc.b.bits, out, tc.eout)
			}
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	if _, err := FromString("01x1"); err == nil {
		t.Errorf("FromString accepted a non-bit character")
	}
}

func TestBytesFor(t *testing.T) {
	tcs := []struct {
		bits  int
		ebyte int
	}{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3},
	}
	for _, tc := range tcs {
		if out := BytesFor(tc.bits); out != tc.ebyte {
			t.Errorf("BytesFor(%d) == %d, want %d", tc.bits, out, tc.ebyte)
		}
	}
}
