package model

import (
	stdmath "math"
	"strings"
	"testing"

	"github.com/Faultbox/fbxmesh/pkg/formats"
)

// cubeDoc returns the parsed form of a unit cube: 8 corner positions and
// six quads, each closed with a sign-encoded final index.
func cubeDoc() *formats.FBX {
	return &formats.FBX{
		Positions: []float32{
			-0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.5, 0.5, -0.5,
			-0.5, 0.5, -0.5,
			-0.5, -0.5, 0.5,
			0.5, -0.5, 0.5,
			0.5, 0.5, 0.5,
			-0.5, 0.5, 0.5,
		},
		PolygonIndices: []int32{
			0, 3, 2, -2,
			4, 5, 6, -8,
			0, 1, 5, -5,
			1, 2, 6, -6,
			2, 3, 7, -7,
			3, 0, 4, -8,
		},
	}
}

func TestBuildModel_SingleTriangle(t *testing.T) {
	doc := &formats.FBX{
		Positions:      []float32{0, 0, 0, 1, 0, 0, 1, 1, 0},
		PolygonIndices: []int32{0, 1, -3},
	}

	mdl, err := BuildModel(doc, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	if len(mdl.Meshes) != 1 {
		t.Fatalf("mesh count = %d, want 1", len(mdl.Meshes))
	}
	mesh := &mdl.Meshes[0]
	if len(mesh.Vertices) != 3 || len(mesh.Indices) != 3 {
		t.Fatalf("got %d vertices / %d indices, want 3/3", len(mesh.Vertices), len(mesh.Indices))
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("triangle count = %d, want 1", mesh.TriangleCount())
	}

	// -3 decodes to position index 2.
	got := mesh.Vertices[2].Position
	if got.X != 1 || got.Y != 1 || got.Z != 0 {
		t.Errorf("third corner position = %+v, want {1 1 0}", got)
	}
}

func TestBuildModel_QuadFan(t *testing.T) {
	doc := &formats.FBX{
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		PolygonIndices: []int32{0, 1, 2, -4},
	}

	mdl, err := BuildModel(doc, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	mesh := &mdl.Meshes[0]
	if len(mesh.Vertices) != 6 || len(mesh.Indices) != 6 {
		t.Fatalf("got %d vertices / %d indices, want 6/6", len(mesh.Vertices), len(mesh.Indices))
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("triangle count = %d, want 2", mesh.TriangleCount())
	}

	// Fan around the first vertex: (0,1,2) then (0,2,3).
	wantPositions := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0},
		{0, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	for i, want := range wantPositions {
		got := mesh.Vertices[i].Position
		if got.X != want[0] || got.Y != want[1] || got.Z != want[2] {
			t.Errorf("vertex %d position = %+v, want %v", i, got, want)
		}
	}
}

func TestBuildModel_TriangleCounts(t *testing.T) {
	tests := []struct {
		name    string
		indices []int32
		want    int
	}{
		{"triangle", []int32{0, 1, -3}, 1},
		{"quad", []int32{0, 1, 2, -4}, 2},
		{"pentagon", []int32{0, 1, 2, 3, -5}, 3},
		{"hexagon", []int32{0, 1, 2, 3, 4, -6}, 4},
		{"two quads", []int32{0, 1, 2, -4, 4, 5, 6, -8}, 4},
	}

	doc := cubeDoc()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc.PolygonIndices = tt.indices
			mdl, err := BuildModel(doc, BuildOptions{})
			if err != nil {
				t.Fatalf("BuildModel failed: %v", err)
			}
			if got := mdl.TriangleCount(); got != tt.want {
				t.Errorf("triangle count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildModel_DegeneratePolygonSkipped(t *testing.T) {
	doc := cubeDoc()
	// A two-vertex polygon followed by a valid triangle.
	doc.PolygonIndices = []int32{0, -2, 0, 1, -3}

	mdl, err := BuildModel(doc, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	if got := mdl.TriangleCount(); got != 1 {
		t.Errorf("triangle count = %d, want 1", got)
	}
}

func TestBuildModel_NoTriangles(t *testing.T) {
	tests := []struct {
		name    string
		indices []int32
	}{
		{"single point", []int32{-1}},
		{"edges only", []int32{0, -2, 1, -3}},
		{"no closing index", []int32{0, 1, 2}},
	}

	doc := cubeDoc()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc.PolygonIndices = tt.indices
			if _, err := BuildModel(doc, BuildOptions{}); err != ErrNoTriangles {
				t.Errorf("error = %v, want ErrNoTriangles", err)
			}
		})
	}
}

func TestBuildModel_OutOfRangeDropped(t *testing.T) {
	doc := &formats.FBX{
		Positions:      []float32{0, 0, 0, 1, 0, 0, 1, 1, 0},
		PolygonIndices: []int32{0, 1, -100},
	}

	if _, err := BuildModel(doc, BuildOptions{}); err != ErrNoTriangles {
		t.Errorf("error = %v, want ErrNoTriangles when every triangle is dropped", err)
	}
}

func TestBuildModel_IndexInvariants(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	mesh := &mdl.Meshes[0]
	if len(mesh.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Errorf("index %d value %d exceeds vertex count %d", i, idx, len(mesh.Vertices))
		}
	}
}

func TestBuildModel_PlaceholderAttributes(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	mesh := &mdl.Meshes[0]
	for i, v := range mesh.Vertices {
		if v.Normal != placeholderNormal {
			t.Fatalf("vertex %d normal = %+v, want +Z", i, v.Normal)
		}
		if v.TexCoord != placeholderUVs[i%3] {
			t.Fatalf("vertex %d uv = %+v, want %+v", i, v.TexCoord, placeholderUVs[i%3])
		}
	}
}

func TestBuildModel_CubeBounds(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	if mdl.BoundsMin.X != -0.5 || mdl.BoundsMin.Y != -0.5 || mdl.BoundsMin.Z != -0.5 {
		t.Errorf("bounds min = %+v, want {-0.5 -0.5 -0.5}", mdl.BoundsMin)
	}
	if mdl.BoundsMax.X != 0.5 || mdl.BoundsMax.Y != 0.5 || mdl.BoundsMax.Z != 0.5 {
		t.Errorf("bounds max = %+v, want {0.5 0.5 0.5}", mdl.BoundsMax)
	}
	if mdl.Center.X != 0 || mdl.Center.Y != 0 || mdl.Center.Z != 0 {
		t.Errorf("center = %+v, want origin", mdl.Center)
	}

	wantRadius := float32(stdmath.Sqrt(0.75))
	if diff := mdl.Radius - wantRadius; diff < -1e-6 || diff > 1e-6 {
		t.Errorf("radius = %f, want %f", mdl.Radius, wantRadius)
	}
}

func TestBuildModel_RadiusCoversAllVertices(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	for i := range mdl.Meshes {
		for j, v := range mdl.Meshes[i].Vertices {
			if d := mdl.Center.Distance(v.Position); d > mdl.Radius+1e-5 {
				t.Errorf("vertex %d/%d at distance %f exceeds radius %f", i, j, d, mdl.Radius)
			}
		}
	}
}

func TestBuildModel_Deterministic(t *testing.T) {
	first, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	second, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("second BuildModel failed: %v", err)
	}

	fm, sm := &first.Meshes[0], &second.Meshes[0]
	if len(fm.Vertices) != len(sm.Vertices) || len(fm.Indices) != len(sm.Indices) {
		t.Fatal("rebuild produced different mesh sizes")
	}
	for i := range fm.Vertices {
		if fm.Vertices[i] != sm.Vertices[i] {
			t.Fatalf("vertex %d differs between rebuilds", i)
		}
	}
	for i := range fm.Indices {
		if fm.Indices[i] != sm.Indices[i] {
			t.Fatalf("index %d differs between rebuilds", i)
		}
	}
}

func TestBuildModel_Name(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	if mdl.Name != "FBXModel" {
		t.Errorf("default name = %q, want FBXModel", mdl.Name)
	}

	mdl, err = BuildModel(cubeDoc(), BuildOptions{Name: "crate"})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}
	if mdl.Name != "crate" {
		t.Errorf("name = %q, want crate", mdl.Name)
	}
}

func TestModel_Summary(t *testing.T) {
	mdl, err := BuildModel(cubeDoc(), BuildOptions{Name: "box"})
	if err != nil {
		t.Fatalf("BuildModel failed: %v", err)
	}

	s := mdl.Summary()
	for _, want := range []string{"Model:  box", "Meshes: 1", "Triangles: 12", "Radius:"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestModel_EmptyBounds(t *testing.T) {
	mdl := &Model{Name: "empty"}
	mdl.ComputeBounds()
	mdl.ComputeCenterAndRadius()

	zero := mdl.BoundsMin
	if zero.X != 0 || zero.Y != 0 || zero.Z != 0 {
		t.Errorf("empty model bounds min = %+v, want origin", mdl.BoundsMin)
	}
	if mdl.BoundsMax != mdl.BoundsMin {
		t.Errorf("empty model bounds max = %+v, want origin", mdl.BoundsMax)
	}
	if mdl.Radius != 0 {
		t.Errorf("empty model radius = %f, want 0", mdl.Radius)
	}
}
