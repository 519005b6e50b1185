package voxel

import "testing"

func TestConnectedComponents_TwoIslands(t *testing.T) {
	shape := Shape{X: 10, Y: 1, Z: 1}
	mask, err := NewMask(shape)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	for x := 0; x < 3; x++ {
		mask.Set(x, 0, 0, true)
	}
	for x := 6; x < 10; x++ {
		mask.Set(x, 0, 0, true)
	}

	labels, count := ConnectedComponents(mask)
	if count != 2 {
		t.Fatalf("expected 2 components, got %d", count)
	}
	for x := 0; x < 3; x++ {
		if labels[shape.Index(x, 0, 0)] != labels[shape.Index(0, 0, 0)] {
			t.Errorf("expected voxel %d to share a component with the first island", x)
		}
	}
	for x := 6; x < 10; x++ {
		if labels[shape.Index(x, 0, 0)] != labels[shape.Index(6, 0, 0)] {
			t.Errorf("expected voxel %d to share a component with the second island", x)
		}
	}
	if labels[shape.Index(0, 0, 0)] == labels[shape.Index(6, 0, 0)] {
		t.Errorf("expected the two islands to have distinct component ids")
	}
	for x := 3; x < 6; x++ {
		if labels[shape.Index(x, 0, 0)] != -1 {
			t.Errorf("expected gap voxel %d to be unlabeled, got %d", x, labels[shape.Index(x, 0, 0)])
		}
	}
}

func TestConnectedComponents_DiagonalConnectivity(t *testing.T) {
	shape := Shape{X: 3, Y: 3, Z: 1}
	mask, err := NewMask(shape)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	mask.Set(0, 0, 0, true)
	mask.Set(1, 1, 0, true) // diagonal neighbor of (0,0,0) under 26-connectivity
	mask.Set(2, 2, 0, true)

	_, count := ConnectedComponents(mask)
	if count != 1 {
		t.Fatalf("expected diagonal chain to form 1 component, got %d", count)
	}
}

func TestConnectedComponents_EmptyMask(t *testing.T) {
	shape := Shape{X: 4, Y: 4, Z: 4}
	mask, _ := NewMask(shape)
	labels, count := ConnectedComponents(mask)
	if count != 0 {
		t.Fatalf("expected 0 components, got %d", count)
	}
	for _, l := range labels {
		if l != -1 {
			t.Fatalf("expected all labels -1, got %d", l)
		}
	}
}
