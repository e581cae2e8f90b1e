package cellmap

import "testing"

func TestKeyStringAndParseKeyRoundTrip(t *testing.T) {
	k := Key{Row: -3, Col: 17}
	s := k.String()
	if s != "-3|17" {
		t.Errorf("String() = %q, want %q", s, "-3|17")
	}
	got, err := ParseKey(s)
	if err != nil {
		t.Fatalf("ParseKey(%q) error = %v", s, err)
	}
	if got != k {
		t.Errorf("ParseKey(%q) = %v, want %v", s, got, k)
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	if _, err := ParseKey("not-a-key"); err == nil {
		t.Error("expected an error for a malformed key")
	}
}

func TestKeyLessOrdersRowThenCol(t *testing.T) {
	a := Key{Row: 1, Col: 5}
	b := Key{Row: 1, Col: 9}
	c := Key{Row: 2, Col: 0}
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if !b.Less(c) {
		t.Errorf("expected %v < %v", b, c)
	}
	if c.Less(a) {
		t.Errorf("expected %v not < %v", c, a)
	}
}

func TestSortedKeysIsDeterministic(t *testing.T) {
	m := map[Key]Stack{
		{Row: 2, Col: 0}: nil,
		{Row: 1, Col: 9}: nil,
		{Row: 1, Col: 5}: nil,
	}
	keys := SortedKeys(m)
	want := []Key{{1, 5}, {1, 9}, {2, 0}}
	if len(keys) != len(want) {
		t.Fatalf("len(SortedKeys) = %d, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("SortedKeys()[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestStackCloneIsIndependent(t *testing.T) {
	s := Stack{{TerrainTypeID: "wall", Height: 10}}
	clone := s.Clone()
	clone[0].Height = 99
	if s[0].Height != 10 {
		t.Errorf("mutating the clone affected the original: %v", s[0])
	}
}

func TestPaintModeStringRoundTrip(t *testing.T) {
	for _, m := range []PaintMode{TotalReplace, DestructiveMerge, AdditiveMerge} {
		got, err := ParsePaintMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePaintMode(%q) = %v, %v, want %v, nil", m.String(), got, err, m)
		}
	}
}

func TestFillBoundaryStringRoundTrip(t *testing.T) {
	for _, b := range []FillBoundary{ApplicableBoundary, StrictBoundary} {
		got, err := ParseFillBoundary(b.String())
		if err != nil || got != b {
			t.Errorf("ParseFillBoundary(%q) = %v, %v, want %v, nil", b.String(), got, err, b)
		}
	}
}
