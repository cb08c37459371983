package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type scanTest struct {
	in  string
	rec Record
	n   int
}

func TestScan(t *testing.T) {
	tests := []scanTest{
		{in: "S0007command\n", rec: Record{Marker: MRootOpen, Name: "command"}, n: 13},
		{in: "s\n", rec: Record{Marker: MRootClose}, n: 2},
		{in: "b\nb\n", rec: Record{Marker: MBranchClose}, n: 2},
		{in: "B0000\n", rec: Record{Marker: MBranchOpen}, n: 6},
		{in: "V0002idI1234\ns\n", rec: Record{Marker: MValue, Name: "id", Indicator: IInt, Payload: []byte("1234")}, n: 13},
		{in: "V0001xF2\n", rec: Record{Marker: MValue, Name: "x", Indicator: IFloat, Payload: []byte("2")}, n: 9},
		{in: "A0004attrT000000000001a\n", rec: Record{Marker: MAttr, Name: "attr", Indicator: IText, Payload: []byte("a")}, n: 24},
		{
			in:  "V0004foo2T000000000007bar\nbar\n",
			rec: Record{Marker: MValue, Name: "foo2", Indicator: IText, Payload: []byte("bar\nbar")},
			n:   30,
		},
		{in: "V0001rR000000000000\n", rec: Record{Marker: MValue, Name: "r", Indicator: IRaw, Payload: []byte{}}, n: 20},
	}
	for _, st := range tests {
		rec, n, err := Scan([]byte(st.in))
		if err != nil {
			t.Errorf("%q: %v", st.in, err)
			continue
		}
		if n != st.n {
			t.Errorf("%q: got n=%d want %d", st.in, n, st.n)
		}
		if diff := cmp.Diff(st.rec, rec); diff != "" {
			t.Errorf("%q (-want +got):\n%s", st.in, diff)
		}
	}
}

func TestScanIncomplete(t *testing.T) {
	full := []string{
		"S0007command\n",
		"s\n",
		"V0002idI1234\n",
		"A0004attrT000000000001a\n",
		"V0004foo3T000000000009bar\nbar2\n\n",
	}
	for _, in := range full {
		for i := 0; i < len(in); i++ {
			_, n, err := Scan([]byte(in[:i]))
			if err != nil {
				t.Errorf("%q[:%d]: %v", in, i, err)
			}
			if n != 0 {
				t.Errorf("%q[:%d]: consumed %d", in, i, n)
			}
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"X", ErrMalformedRecord},
		{"\n", ErrMalformedRecord},
		{"sx", ErrMalformedRecord},
		{"S00a1", ErrMalformedRecord},
		{"S0001ab", ErrMalformedRecord},
		{"V0001xQ", ErrUnrecognizedValueType},
		{"A0001xB", ErrUnrecognizedValueType},
		{"A0001xS", ErrUnrecognizedValueType},
		{"A0001xR", ErrUnrecognizedValueType},
		{"V0001xT00000000000x", ErrMalformedRecord},
		{"A0001xT000000000002abc\n", ErrAttributeLengthMismatch},
		{"V0001xT000000000002abc\n", ErrMalformedRecord},
	}
	for _, et := range tests {
		_, _, err := Scan([]byte(et.in))
		if !errors.Is(err, et.err) {
			t.Errorf("%q: got %v want %v", et.in, err, et.err)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	tests := []struct {
		in   string
		want int64
	}{
		{"1280449171", 1280449171},
		{"1280449171.9", 1280449171},
		{"-5", -5},
		{"3400000000", 3400000000},
		{"3400000001", -1},
		{"99999999999999999999", -1},
		{"1e30", -1},
		{"1e400", -1},
		{"9223372036854775807", -1},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp([]byte(tt.in), now)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %d want %d", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"soon", "NaN", "Inf", "-99999999999999999999"} {
		if _, err := ParseTimestamp([]byte(in), now); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestParseScalars(t *testing.T) {
	if v, err := ParseInt([]byte("-42")); err != nil || v != -42 {
		t.Errorf("ParseInt: %d %v", v, err)
	}
	if _, err := ParseInt([]byte("4.2")); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("ParseInt fraction: %v", err)
	}
	if v, err := ParseFloat([]byte("5.500000")); err != nil || v != 5.5 {
		t.Errorf("ParseFloat: %g %v", v, err)
	}
	for in, want := range map[string]bool{"0": false, "1": true, "7": true} {
		if v, err := ParseBool([]byte(in)); err != nil || v != want {
			t.Errorf("ParseBool(%q): %t %v", in, v, err)
		}
	}
}
