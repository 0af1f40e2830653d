//go:build !android

package utils

import "testing"

func TestPrepareStorage_Desktop(t *testing.T) {
	dir, err := PrepareStorage()
	if err != nil {
		t.Fatalf("PrepareStorage() error = %v", err)
	}
	if dir != "" {
		t.Errorf("Expected no prepared directory on desktop, got %q", dir)
	}
}
