package model

import (
	"errors"

	"github.com/Faultbox/fbxmesh/pkg/formats"
	"github.com/Faultbox/fbxmesh/pkg/math"
)

// ErrNoTriangles is returned when the polygon data yields no triangles.
var ErrNoTriangles = errors.New("polygon data contains no triangles")

// BuildOptions configures BuildModel.
type BuildOptions struct {
	// Name is the display name of the model. Empty defaults to "FBXModel".
	Name string
}

// Every synthesized triangle reuses the same corner attributes: a fixed UV
// cycle and a +Z normal. Layer data from the file is not sampled.
var (
	placeholderUVs = [3]math.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
	}
	placeholderNormal = math.Vec3{X: 0, Y: 0, Z: 1}
)

// BuildModel triangulates parsed FBX geometry into a single-mesh model.
//
// Each polygon is fan-triangulated around its first vertex, and every
// triangle gets three fresh vertices; corners shared between polygons are
// not deduplicated. Triangles referencing a position index outside the
// vertex array are dropped. Returns ErrNoTriangles if nothing survives.
func BuildModel(doc *formats.FBX, opts BuildOptions) (*Model, error) {
	name := opts.Name
	if name == "" {
		name = "FBXModel"
	}

	posCount := int32(len(doc.Positions) / 3)

	// Count triangles first so the vertex and index slices are sized once.
	triangles := 0
	polyLen := 0
	for _, raw := range doc.PolygonIndices {
		polyLen++
		if raw < 0 {
			if polyLen >= 3 {
				triangles += polyLen - 2
			}
			polyLen = 0
		}
	}
	if triangles == 0 {
		return nil, ErrNoTriangles
	}

	mesh := Mesh{
		Vertices: make([]Vertex, 0, triangles*3),
		Indices:  make([]uint32, 0, triangles*3),
	}

	var poly []int32
	for _, raw := range doc.PolygonIndices {
		idx := raw
		last := false
		if idx < 0 {
			idx = -idx - 1
			last = true
		}
		poly = append(poly, idx)
		if !last {
			continue
		}

		for k := 1; k+1 < len(poly); k++ {
			emitTriangle(&mesh, doc.Positions, posCount, poly[0], poly[k], poly[k+1])
		}
		poly = poly[:0]
	}

	if len(mesh.Indices) == 0 {
		return nil, ErrNoTriangles
	}

	mdl := &Model{
		Name:   name,
		Meshes: []Mesh{mesh},
	}
	mdl.ComputeBounds()
	mdl.ComputeCenterAndRadius()
	return mdl, nil
}

// emitTriangle appends one triangle as three fresh vertices. Triangles with
// any corner index outside the position array are dropped.
func emitTriangle(mesh *Mesh, positions []float32, posCount int32, a, b, c int32) {
	if a < 0 || a >= posCount || b < 0 || b >= posCount || c < 0 || c >= posCount {
		return
	}

	base := uint32(len(mesh.Vertices))
	corners := [3]int32{a, b, c}
	for slot, idx := range corners {
		mesh.Vertices = append(mesh.Vertices, cornerVertex(positions, idx, slot))
		mesh.Indices = append(mesh.Indices, base+uint32(slot))
	}
}

// cornerVertex builds the vertex for one triangle corner. slot selects the
// placeholder UV for the corner's position in the triangle.
func cornerVertex(positions []float32, idx int32, slot int) Vertex {
	o := idx * 3
	return Vertex{
		Position: math.Vec3{
			X: positions[o],
			Y: positions[o+1],
			Z: positions[o+2],
		},
		TexCoord: placeholderUVs[slot],
		Normal:   placeholderNormal,
	}
}
