package protocol

import "testing"

func TestIDAllocator_Monotonic(t *testing.T) {
	var a IDAllocator
	first := a.Next()
	second := a.Next()
	if first == 0 {
		t.Fatalf("first ID should be non-zero, got %d", first)
	}
	if second <= first {
		t.Fatalf("second ID %d should be greater than first %d", second, first)
	}
}

func TestAnchor_Kinds(t *testing.T) {
	if k := AbsoluteByte(42).Kind(); k != "absolute" {
		t.Fatalf("AbsoluteByte.Kind() = %q", k)
	}
	if k := RelativeLines(10, -3).Kind(); k != "relative" {
		t.Fatalf("RelativeLines.Kind() = %q", k)
	}
	if k := EndOfFile().Kind(); k != "end_of_file" {
		t.Fatalf("EndOfFile.Kind() = %q", k)
	}

	rel := RelativeLines(100, -5)
	if rel.Absolute() != 100 || rel.RelativeDelta() != -5 {
		t.Fatalf("RelativeLines fields = %d,%d, want 100,-5", rel.Absolute(), rel.RelativeDelta())
	}
}
