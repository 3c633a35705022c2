package chrpos

import "testing"

func TestChunk(t *testing.T) {
	parts, err := Chunk(Region{Chrom: "1", Start: 1, End: 2500}, 1000)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Locus{
		MakeLocus("1", 1, 1001),
		MakeLocus("1", 1001, 2001),
		MakeLocus("1", 2001, 2501),
	}
	if len(parts) != len(expected) {
		t.Fatalf("Expected %d chunks, got %d: %v", len(expected), len(parts), parts)
	}
	for i := range expected {
		if parts[i] != expected[i] {
			t.Errorf("Chunk %d: expected %v, got %v", i, expected[i], parts[i])
		}
	}
}

func TestChunkSinglePosition(t *testing.T) {
	parts, err := Chunk(Region{Chrom: "X", Start: 5, End: 5}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 1 || parts[0].Start() != 5 || parts[0].End() != 6 {
		t.Errorf("Got %v", parts)
	}
}

func TestChunkRejectsBadSize(t *testing.T) {
	if _, err := Chunk(Region{Chrom: "1", Start: 1, End: 10}, 0); err == nil {
		t.Error("Expected an error")
	}
}
