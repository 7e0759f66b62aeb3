package core

import (
	"math"
	"testing"
)

func colorEqual(a, b Color) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func TestColorArithmetic(t *testing.T) {
	a := NewColor(0.1, 0.2, 0.3)
	b := NewColor(0.5, 0.5, 2.0)

	if got := a.Add(b); !colorEqual(got, NewColor(0.6, 0.7, 2.3)) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Mul(b); !colorEqual(got, NewColor(0.05, 0.1, 0.6)) {
		t.Errorf("Mul() = %v", got)
	}
	if got := a.Scale(2); !colorEqual(got, NewColor(0.2, 0.4, 0.6)) {
		t.Errorf("Scale() = %v", got)
	}
}

func TestColorGamma(t *testing.T) {
	tests := []struct {
		name     string
		in       Color
		expected Color
	}{
		{"quarter becomes half", NewColor(0.25, 0.25, 0.25), NewColor(0.5, 0.5, 0.5)},
		{"unit unchanged", White, White},
		{"negative clamps to zero", NewColor(-1, 0, 0), Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Gamma(); !colorEqual(got, tt.expected) {
				t.Errorf("Gamma() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestColorClamp(t *testing.T) {
	c := NewColor(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !colorEqual(c, NewColor(0, 0.5, 1)) {
		t.Errorf("Clamp() = %v, want (0, 0.5, 1)", c)
	}
}
