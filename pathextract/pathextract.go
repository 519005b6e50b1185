package pathextract

import (
	"errors"
	"math"

	"github.com/voxelskel/teasar/voxel"
)

// ErrCycleDetected indicates the Parents chain did not reach the root within
// Shape.Len() steps — a corrupted or non-tree predecessor field. This should
// never occur for a Parents array produced by traversal.PredecessorField.
var ErrCycleDetected = errors.New("pathextract: predecessor chain did not terminate at root")

// Options configures path extraction and rolling invalidation.
type Options struct {
	// Scale multiplies DBF[v] to get the rolling-ball/cube radius.
	Scale float32
	// Const is the minimum invalidation radius, in physical units.
	Const float32
	// Anisotropy is the grid's physical voxel spacing.
	Anisotropy voxel.Anisotropy
	// SomaMode enables soma suppression of path interiors and marks Root
	// pre-invalidated.
	SomaMode bool
	// Root is the flat index of the traversal root.
	Root int
	// SomaRadius is the soma-suppression distance threshold (ignored unless
	// SomaMode is set).
	SomaRadius float32
	// PathDownsample is the stride applied to each extracted path before it
	// is returned (>= 1).
	PathDownsample uint32
}

// Extract repeatedly selects the in-mask voxel maximizing pdrfField, walks
// parents back to Root, applies soma suppression (if enabled), clears a
// rolling invalidation tube around the path, and records the (possibly
// downsampled) path, until no voxel with finite PDRF remains in mask.
//
// mask is mutated in place (rolling invalidation). dbf and pdrfField are
// read-only. parents must be aligned to mask.Shape and already built from
// pdrfField with source == opts.Root.
//
// Complexity: O(P) iterations where P is the number of extracted paths; each
// iteration is O(Len) for target selection plus O(path length x tube volume)
// for invalidation.
func Extract(mask *voxel.Mask, dbf, pdrfField *voxel.Field, parents *voxel.ParentField, opts Options) ([][]int, error) {
	shape := mask.Shape

	// Restrict the working mask to the root's own reachable component before
	// extraction begins (spec section 9, Open Question #1, option (a)): a
	// voxel in a different component could never be selected as a target
	// anyway (its PDRF is +Inf, so voxel.ArgMaxMasked always skips it), but
	// clearing it here means it does not linger as a stray "true" entry in
	// mask once extraction completes. In soma mode the ball invalidation has
	// already cleared the root, so it carries no component label; the
	// restriction is then skipped and the +Inf skip alone applies.
	labels, _ := voxel.ConnectedComponents(mask)
	if rootLabel := labels[opts.Root]; rootLabel != -1 {
		for i, inMask := range mask.Data {
			if inMask && labels[i] != rootLabel {
				mask.SetIndex(i, false)
			}
		}
	}

	invalidVertices := make(map[int]bool)

	if opts.SomaMode {
		invalidVertices[opts.Root] = true
	}

	var paths [][]int

	for {
		target, ok := voxel.ArgMaxMasked(pdrfField, mask)
		if !ok {
			break // no in-mask voxel with finite PDRF remains: extraction is complete
		}

		path, err := reconstructPath(parents, target, opts.Root, shape.Len())
		if err != nil {
			return nil, err
		}

		if opts.SomaMode {
			path = somaSuppress(path, opts.Root, shape, opts.Anisotropy, opts.SomaRadius)
		}

		invalidateCube(mask, dbf, path, opts.Scale, opts.Const, opts.Anisotropy, invalidVertices)

		for _, v := range path {
			invalidVertices[v] = true
		}

		paths = append(paths, downsample(path, opts.PathDownsample))
	}

	return paths, nil
}

// reconstructPath walks the Parents chain from target back to root,
// producing a target-first, root-last sequence (spec section 9: "the source
// appends target-first paths"). limit bounds the walk to detect a corrupted
// (cyclic) predecessor field rather than looping forever.
func reconstructPath(parents *voxel.ParentField, target, root, limit int) ([]int, error) {
	path := []int{target}
	cur := target
	for cur != root {
		next := parents.Data[cur]
		if next == voxel.Unvisited {
			// Parents always builds a tree rooted at opts.Root over the
			// voxels that feed target selection, so this should be
			// unreachable; treat it defensively as a cycle.
			return nil, ErrCycleDetected
		}
		cur = int(next)
		path = append(path, cur)
		if len(path) > limit {
			return nil, ErrCycleDetected
		}
	}

	return path, nil
}

// somaSuppress keeps path[0] (the tip) unconditionally and drops every other
// vertex within soma_radius of root, per spec section 4.4 step 3. root
// itself always terminates the returned path: every extracted path must
// still reach root so skeltree.Assemble can attach it back to the shared
// hub, and root is within soma_radius of itself (distance 0) so the
// near-root filter alone would otherwise drop it along with the rest of the
// suppressed interior.
func somaSuppress(path []int, root int, shape voxel.Shape, aniso voxel.Anisotropy, somaRadius float32) []int {
	if len(path) == 0 {
		return path
	}
	rx, ry, rz := shape.Coord(root)
	out := make([]int, 1, len(path)+1)
	out[0] = path[0]
	for _, v := range path[1:] {
		if anisoDistance(shape, v, rx, ry, rz, aniso) > somaRadius {
			out = append(out, v)
		}
	}
	if out[len(out)-1] != root {
		out = append(out, root)
	}

	return out
}

func anisoDistance(shape voxel.Shape, v, rx, ry, rz int, aniso voxel.Anisotropy) float32 {
	vx, vy, vz := shape.Coord(v)
	dx := aniso.X * float32(vx-rx)
	dy := aniso.Y * float32(vy-ry)
	dz := aniso.Z * float32(vz-rz)

	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// invalidateCube clears, for every vertex v in path not already in
// invalidVertices, all in-mask voxels inside the axis-aligned cuboid
// centered at v with per-axis half-width max(DBF[v]*scale,const)/aniso_axis,
// and returns the total number of voxels cleared (spec section 4.4 step 4).
func invalidateCube(mask *voxel.Mask, dbf *voxel.Field, path []int, scale, cst float32, aniso voxel.Anisotropy, invalidVertices map[int]bool) int {
	shape := mask.Shape
	cleared := 0
	for _, v := range path {
		if invalidVertices[v] {
			continue
		}
		radius := dbf.AtIndex(v) * scale
		if cst > radius {
			radius = cst
		}
		vx, vy, vz := shape.Coord(v)
		hx := halfWidth(radius, aniso.X)
		hy := halfWidth(radius, aniso.Y)
		hz := halfWidth(radius, aniso.Z)

		for dz := -hz; dz <= hz; dz++ {
			for dy := -hy; dy <= hy; dy++ {
				for dx := -hx; dx <= hx; dx++ {
					x, y, z := vx+dx, vy+dy, vz+dz
					if !shape.InBounds(x, y, z) {
						continue
					}
					idx := shape.Index(x, y, z)
					if mask.AtIndex(idx) {
						mask.SetIndex(idx, false)
						cleared++
					}
				}
			}
		}
	}

	return cleared
}

// InvalidateBall clears all in-mask voxels within an anisotropic Euclidean
// radius of center, returning the count cleared. Used once, before path
// extraction begins, in soma mode (spec section 4.4, "Rolling invalidation
// (ball, soma only)").
func InvalidateBall(mask *voxel.Mask, center int, radius float32, aniso voxel.Anisotropy) int {
	shape := mask.Shape
	cx, cy, cz := shape.Coord(center)
	hx := halfWidth(radius, aniso.X)
	hy := halfWidth(radius, aniso.Y)
	hz := halfWidth(radius, aniso.Z)

	cleared := 0
	for dz := -hz; dz <= hz; dz++ {
		for dy := -hy; dy <= hy; dy++ {
			for dx := -hx; dx <= hx; dx++ {
				x, y, z := cx+dx, cy+dy, cz+dz
				if !shape.InBounds(x, y, z) {
					continue
				}
				ddx := aniso.X * float32(dx)
				ddy := aniso.Y * float32(dy)
				ddz := aniso.Z * float32(dz)
				dist := float32(math.Sqrt(float64(ddx*ddx + ddy*ddy + ddz*ddz)))
				if dist > radius {
					continue
				}
				idx := shape.Index(x, y, z)
				if mask.AtIndex(idx) {
					mask.SetIndex(idx, false)
					cleared++
				}
			}
		}
	}

	return cleared
}

// halfWidth converts a physical-unit radius into an integer voxel half-width
// along one axis, rounding up so the invalidation tube never under-covers
// the requested physical radius.
func halfWidth(radius, axisSpacing float32) int {
	if radius <= 0 || axisSpacing <= 0 {
		return 0
	}

	return int(math.Ceil(float64(radius / axisSpacing)))
}

// downsample reproduces the original source's exact stride behavior:
// path[0:len-2:stride] followed by unconditionally appending the final
// vertex. As documented in spec section 9, this always drops the
// second-to-last vertex, at every stride including 1, because the strided
// range stops before it (for a two-vertex path that vertex is the first
// one) — observed behavior, preserved rather than "fixed".
func downsample(path []int, stride uint32) []int {
	n := len(path)
	if n == 0 {
		return path
	}
	if stride < 1 {
		stride = 1
	}

	end := n - 2
	if end < 0 {
		end = 0
	}

	out := make([]int, 0, n)
	for i := 0; i < end; i += int(stride) {
		out = append(out, path[i])
	}
	out = append(out, path[n-1])

	return out
}
