package imghash

import "testing"

func TestNewMatrixFromBytes(t *testing.T) {
	buf := []uint8{1, 2, 3, 4, 5, 6}

	m := newMatrixFromBytes(buf, 3, 2)

	if m.cols != 3 || m.rows != 2 {
		t.Fatalf("expected 3x2 matrix, got %dx%d", m.cols, m.rows)
	}
	// Row-major: second row starts at sample 4.
	if m.at(0, 0) != 1 || m.at(0, 2) != 3 || m.at(1, 0) != 4 || m.at(1, 2) != 6 {
		t.Errorf("unexpected layout: %v", m.data)
	}
}

func TestNewMatrixFromBytesLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched buffer length")
		}
	}()

	newMatrixFromBytes([]uint8{1, 2, 3}, 2, 2)
}

func TestMatrixSet(t *testing.T) {
	m := newMatrix(4, 3)

	m.set(2, 1, 42)

	if m.at(2, 1) != 42 {
		t.Errorf("at(2,1) = %v; want 42", m.at(2, 1))
	}
	if m.data[2*4+1] != 42 {
		t.Errorf("expected flat index 9 to hold 42, got %v", m.data[2*4+1])
	}
}

func TestMatrixCrop(t *testing.T) {
	m := newMatrixFromBytes([]uint8{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, 4, 3)

	c := m.crop(2, 2)

	if c.cols != 2 || c.rows != 2 {
		t.Fatalf("expected 2x2 crop, got %dx%d", c.cols, c.rows)
	}
	want := []float64{1, 2, 5, 6}
	for i, v := range want {
		if c.data[i] != v {
			t.Errorf("crop.data[%d] = %v; want %v", i, c.data[i], v)
		}
	}
}
