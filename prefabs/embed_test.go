package prefabs

import "testing"

func TestModTimeMissingDiskCopy(t *testing.T) {
	if _, ok := ModTime("definitely-not-here.yaml"); ok {
		t.Fatalf("expected no mod time for a missing disk copy")
	}
}
