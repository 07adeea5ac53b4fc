package service

import (
	"strings"
	"testing"
)

func TestGenerateReferenceFormat(t *testing.T) {
	ref := GenerateReference()

	if !strings.HasPrefix(ref, "MNTLE-") {
		t.Errorf("Expected reference to start with 'MNTLE-', got '%s'", ref)
	}

	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		t.Fatalf("Expected reference of form MNTLE-<ts>-<hex>, got '%s'", ref)
	}
	if len(parts[2]) != 8 {
		t.Errorf("Expected 8 hex chars of random suffix, got '%s'", parts[2])
	}
}

func TestGenerateReferenceUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ref := GenerateReference()
		if _, dup := seen[ref]; dup {
			t.Fatalf("Duplicate reference generated: %s", ref)
		}
		seen[ref] = struct{}{}
	}
}
