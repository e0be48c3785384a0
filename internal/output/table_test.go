package output

import (
	"strings"
	"testing"
)

func TestKV_AlignsValues(t *testing.T) {
	SetNoColor(true)

	kv := NewKV()
	kv.Add("Product ID", "TF-1001")
	kv.Add("Vendor", "Apex Rail Supply")

	out := kv.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	// Values line up at the same column.
	idCol := strings.Index(lines[0], "TF-1001")
	vendorCol := strings.Index(lines[1], "Apex Rail Supply")
	if idCol != vendorCol {
		t.Errorf("values not aligned: %d vs %d\n%s", idCol, vendorCol, out)
	}
}

func TestKV_Empty(t *testing.T) {
	if got := NewKV().Render(); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}

func TestConditionStyle_NoColorPassthrough(t *testing.T) {
	SetNoColor(true)

	for _, cond := range []string{"GOOD", "WARNING", "CRITICAL"} {
		if got := ConditionStyle(cond).Render(cond); got != cond {
			t.Errorf("expected plain %q with color disabled, got %q", cond, got)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad should not truncate, got %q", got)
	}
}
