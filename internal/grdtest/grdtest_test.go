package grdtest

import (
	"bytes"
	"testing"
)

func TestASCIIBytes(t *testing.T) {
	a := ASCII{
		NCol: 2, NRow: 2,
		XMin: 0, XMax: 1,
		YMin: 5, YMax: 6.5,
		ZMin: -1, ZMax: 1e38,
		Rows: [][]float64{{1, 2}, {3.25, 4}},
	}

	expected := "DSAA\n2 2\n0 1\n5 6.5\n-1 1e+38\n1 2\n3.25 4\n"
	if got := string(a.Bytes()); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestSurfer6Bytes(t *testing.T) {
	b := Surfer6{NX: 2, NY: 3, Values: Ramp32(6)}.Bytes()

	if len(b) != 56+6*4 {
		t.Fatalf("expected %d bytes, got %d", 56+6*4, len(b))
	}
	if !bytes.HasPrefix(b, []byte("DSBB\x02\x00\x03\x00")) {
		t.Errorf("unexpected header prefix % x", b[:8])
	}
}

func TestSurfer7Bytes(t *testing.T) {
	b := Surfer7{NRow: 2, NCol: 3, Values: Ramp(6)}.Bytes()

	if len(b) != 12+8+72+8+6*8 {
		t.Fatalf("unexpected length %d", len(b))
	}
	if string(b[0:4]) != "DSRB" || string(b[12:16]) != "GRID" || string(b[92:96]) != "DATA" {
		t.Errorf("unexpected tags in % x", b[:100])
	}
	// GRID length, then DATA length of ncol*nrow*8.
	if b[16] != 72 || b[96] != 48 {
		t.Errorf("unexpected section lengths %d, %d", b[16], b[96])
	}
}

func TestSurfer7Overrides(t *testing.T) {
	b := Surfer7{Magic: "DSBB", GridTag: "GRXD", GridSize: 64, DataTag: "XXXX", DataSize: 7, NRow: 2, NCol: 2}.Bytes()

	if string(b[0:4]) != "DSBB" || string(b[12:16]) != "GRXD" || string(b[92:96]) != "XXXX" {
		t.Errorf("overrides not applied: % x", b)
	}
	if b[16] != 64 || b[96] != 7 {
		t.Errorf("size overrides not applied: %d, %d", b[16], b[96])
	}
}
