package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/fbxmesh/internal/engine/model"
	"github.com/Faultbox/fbxmesh/pkg/math"
)

// manifestEntry describes one scanned model file in the manifest.
// Failed imports carry only File and Error.
type manifestEntry struct {
	File      string     `yaml:"file"`
	Name      string     `yaml:"name,omitempty"`
	Vertices  int        `yaml:"vertices,omitempty"`
	Indices   int        `yaml:"indices,omitempty"`
	Triangles int        `yaml:"triangles,omitempty"`
	BoundsMin [3]float32 `yaml:"bounds_min,flow"`
	BoundsMax [3]float32 `yaml:"bounds_max,flow"`
	Center    [3]float32 `yaml:"center,flow"`
	Radius    float32    `yaml:"radius"`
	Error     string     `yaml:"error,omitempty"`
}

func modelEntry(file string, mdl *model.Model) manifestEntry {
	indices := 0
	for i := range mdl.Meshes {
		indices += len(mdl.Meshes[i].Indices)
	}
	return manifestEntry{
		File:      file,
		Name:      mdl.Name,
		Vertices:  mdl.VertexCount(),
		Indices:   indices,
		Triangles: mdl.TriangleCount(),
		BoundsMin: vecArray(mdl.BoundsMin),
		BoundsMax: vecArray(mdl.BoundsMax),
		Center:    vecArray(mdl.Center),
		Radius:    mdl.Radius,
	}
}

func vecArray(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// writeManifest writes the scan results as YAML, creating parent
// directories as needed.
func writeManifest(path string, entries []manifestEntry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
