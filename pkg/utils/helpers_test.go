package utils

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Expected 0, got %.2f", got)
	}
	if got := Clamp(105, 0, 100); got != 100 {
		t.Errorf("Expected 100, got %.2f", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("Expected 42, got %.2f", got)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(31.1418, 1); got != 31.1 {
		t.Errorf("Expected 31.1, got %v", got)
	}
	if got := RoundTo(2.675, 0); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
}

func TestFormatAverage(t *testing.T) {
	if got := FormatAverage(nil); got != "0" {
		t.Errorf("Expected \"0\" for no values, got %q", got)
	}
	if got := FormatAverage([]float64{7, 8}); got != "7.5" {
		t.Errorf("Expected \"7.5\", got %q", got)
	}
	if got := FormatAverage([]float64{150}); got != "150.0" {
		t.Errorf("Expected \"150.0\", got %q", got)
	}
}
