package rootselect_test

import (
	"testing"

	"github.com/voxelskel/teasar/rootselect"
	"github.com/voxelskel/teasar/voxel"
)

func identityEDT(mask *voxel.Mask, aniso voxel.Anisotropy) (*voxel.Field, error) {
	f, _ := voxel.NewField(mask.Shape)
	for i, v := range mask.Data {
		if v {
			f.Data[i] = 1
		}
	}

	return f, nil
}

func identityFillHoles(mask *voxel.Mask) (*voxel.Mask, error) {
	return mask, nil
}

func TestSelect_EmptyMask(t *testing.T) {
	shape := voxel.Shape{X: 3, Y: 3, Z: 3}
	mask, _ := voxel.NewMask(shape)
	dbf, _ := voxel.NewField(shape)

	res, err := rootselect.Select(mask, dbf, voxel.DefaultAnisotropy(), 5000, 0.5, 0, identityEDT, identityFillHoles)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if res.Found {
		t.Fatalf("expected Found=false for an empty mask")
	}
}

func TestSelect_NonSoma_RodTip(t *testing.T) {
	shape := voxel.Shape{X: 10, Y: 1, Z: 1}
	mask, _ := voxel.NewMask(shape)
	dbf, _ := voxel.NewField(shape)
	for x := 0; x < 10; x++ {
		mask.Set(x, 0, 0, true)
		dbf.Set(x, 0, 0, 1)
	}

	res, err := rootselect.Select(mask, dbf, voxel.DefaultAnisotropy(), 5000, 0.5, 0, identityEDT, identityFillHoles)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !res.Found {
		t.Fatalf("expected a root")
	}
	if res.Mode != rootselect.NonSoma {
		t.Fatalf("expected NonSoma mode")
	}
	x, y, z := shape.Coord(res.Index)
	if y != 0 || z != 0 || (x != 0 && x != 9) {
		t.Errorf("expected root at one rod tip, got (%d,%d,%d)", x, y, z)
	}
}

func TestSelect_Soma_ArgmaxDBF(t *testing.T) {
	shape := voxel.Shape{X: 7, Y: 7, Z: 7}
	mask, _ := voxel.NewMask(shape)
	dbf, _ := voxel.NewField(shape)
	for z := 0; z < 7; z++ {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				mask.Set(x, y, z, true)
			}
		}
	}
	// Peak DBF at the center, simulating a soma-like object: it pushes
	// dbf_max past the detection threshold. Select then recomputes DBF with
	// the EDT collaborator, and the root is the argmax of that recomputed DBF.
	center := shape.Index(3, 3, 3)
	dbf.Data[center] = 6000
	for i := range dbf.Data {
		if i != center {
			dbf.Data[i] = 10
		}
	}

	res, err := rootselect.Select(mask, dbf, voxel.DefaultAnisotropy(), 5000, 0.5, 0, identityEDT, identityFillHoles)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !res.Found || res.Mode != rootselect.Soma {
		t.Fatalf("expected soma mode, got %+v", res)
	}
	if want, _ := voxel.ArgMaxMasked(res.DBF, res.Mask); res.Index != want {
		t.Errorf("expected root at argmax of the recomputed DBF (%d), got %d", want, res.Index)
	}
}
