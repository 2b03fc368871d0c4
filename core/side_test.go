package core

import (
	"encoding/json"
	"testing"
)

func TestSideOf(t *testing.T) {
	tests := []struct {
		v    float64
		want Side
	}{
		{0.3, SideRight},
		{-0.3, SideLeft},
		{0, SideLeft},
		{1e-12, SideRight},
	}
	for _, tt := range tests {
		if got := SideOf(tt.v); got != tt.want {
			t.Errorf("SideOf(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSideHelpers(t *testing.T) {
	if SideRight.Sign() != 1 || SideLeft.Sign() != -1 || SideNone.Sign() != 0 {
		t.Error("Expected Sign to return 1, -1, 0")
	}
	if SideRight.Opposite() != SideLeft || SideNone.Opposite() != SideNone {
		t.Error("Expected Opposite to flip left/right and keep none")
	}
	if SideLeft.Index() != 0 || SideRight.Index() != 1 || SideNone.Index() != -1 {
		t.Error("Expected Index 0 for left, 1 for right, -1 for none")
	}
	if SideRight.String() != "right" || SideLeft.String() != "left" || SideNone.String() != "none" {
		t.Errorf("Unexpected String values: %s %s %s", SideRight, SideLeft, SideNone)
	}
}

func TestSideJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Side Side `json:"side"`
	}{SideLeft})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"side":"left"}` {
		t.Errorf("Expected side encoded by name, got %s", data)
	}
}
