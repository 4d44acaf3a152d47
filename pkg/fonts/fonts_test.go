package fonts

import "testing"

func TestFace(t *testing.T) {
	f, err := Face(12)
	if err != nil {
		t.Fatalf("Face(12): %v", err)
	}
	if f.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
	again, _ := Face(12.1)
	if again != f {
		t.Error("sizes within a quarter pixel should share a face")
	}
	tiny, err := Face(0)
	if err != nil || tiny == nil {
		t.Errorf("Face(0) = %v, %v", tiny, err)
	}
}
