// Package model builds renderable triangle meshes from parsed format data.
package model

import (
	"fmt"
	"strings"

	"github.com/Faultbox/fbxmesh/pkg/math"
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Position math.Vec3
	TexCoord math.Vec2
	Normal   math.Vec3
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Model is a named collection of meshes with derived bounding data.
type Model struct {
	Name   string
	Meshes []Mesh

	// Axis-aligned bounding box over all mesh vertices.
	BoundsMin math.Vec3
	BoundsMax math.Vec3

	// Bounding sphere, derived from the box center.
	Center math.Vec3
	Radius float32
}

// VertexCount returns the total vertex count across all meshes.
func (m *Model) VertexCount() int {
	count := 0
	for i := range m.Meshes {
		count += len(m.Meshes[i].Vertices)
	}
	return count
}

// TriangleCount returns the total triangle count across all meshes.
func (m *Model) TriangleCount() int {
	count := 0
	for i := range m.Meshes {
		count += m.Meshes[i].TriangleCount()
	}
	return count
}

// Summary returns a multi-line human-readable description of the model.
func (m *Model) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Model:  %s\n", m.Name)
	fmt.Fprintf(&b, "Meshes: %d\n", len(m.Meshes))
	fmt.Fprintf(&b, "Bounds: min [%.6f, %.6f, %.6f]\n", m.BoundsMin.X, m.BoundsMin.Y, m.BoundsMin.Z)
	fmt.Fprintf(&b, "        max [%.6f, %.6f, %.6f]\n", m.BoundsMax.X, m.BoundsMax.Y, m.BoundsMax.Z)
	fmt.Fprintf(&b, "Center: [%.6f, %.6f, %.6f]\n", m.Center.X, m.Center.Y, m.Center.Z)
	fmt.Fprintf(&b, "Radius: %.6f\n", m.Radius)

	for i := range m.Meshes {
		mesh := &m.Meshes[i]
		fmt.Fprintf(&b, "Mesh %d:\n", i)
		fmt.Fprintf(&b, "  Vertices:  %d\n", len(mesh.Vertices))
		fmt.Fprintf(&b, "  Indices:   %d\n", len(mesh.Indices))
		fmt.Fprintf(&b, "  Triangles: %d\n", mesh.TriangleCount())
		if len(mesh.Indices) >= 3 {
			fmt.Fprintf(&b, "  First triangle: [%d, %d, %d]\n",
				mesh.Indices[0], mesh.Indices[1], mesh.Indices[2])
		}
	}
	return b.String()
}

// ComputeBounds recalculates the axis-aligned bounding box from the mesh
// vertices. A model with no vertices gets a zero box at the origin.
func (m *Model) ComputeBounds() {
	first := true
	var lo, hi math.Vec3

	for i := range m.Meshes {
		for j := range m.Meshes[i].Vertices {
			p := m.Meshes[i].Vertices[j].Position
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}

	if first {
		m.BoundsMin = math.Vec3{}
		m.BoundsMax = math.Vec3{}
		return
	}
	m.BoundsMin = lo
	m.BoundsMax = hi
}

// ComputeCenterAndRadius recalculates the bounding sphere. The center is the
// box midpoint; the radius is the largest distance from the center to any
// vertex. Call ComputeBounds first.
func (m *Model) ComputeCenterAndRadius() {
	m.Center = m.BoundsMin.Add(m.BoundsMax).Scale(0.5)

	var radius float32
	for i := range m.Meshes {
		for j := range m.Meshes[i].Vertices {
			d := m.Center.Distance(m.Meshes[i].Vertices[j].Position)
			if d > radius {
				radius = d
			}
		}
	}
	m.Radius = radius
}
