package random

import "testing"

func TestNewSeed(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}

	second, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}

	if first == second {
		t.Errorf("two seeds came out identical: %d", first)
	}
}
