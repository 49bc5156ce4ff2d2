// FBX (ASCII) parser for single-mesh geometry: vertex positions, polygon
// vertex indices, and the optional normal/UV layer arrays.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// FBX format errors.
var (
	ErrBinaryFBX       = errors.New("binary FBX encoding is not supported")
	ErrMissingGeometry = errors.New("missing vertex positions or polygon indices")
)

// binaryFBXMagic is the fixed 23-byte header of the binary FBX encoding.
var binaryFBXMagic = []byte("Kaydara FBX Binary  \x00\x1a\x00")

// FBX holds the flat geometry arrays extracted from an ASCII FBX document.
//
// PolygonIndices uses the FBX sign convention: a negative value v marks the
// last vertex of a polygon, with the true position index being -v - 1.
type FBX struct {
	Positions      []float32 // flattened XYZ triplets
	PolygonIndices []int32   // sign-encoded polygon vertex indices
	Normals        []float32 // optional flattened XYZ triplets
	UVs            []float32 // optional flattened UV pairs
}

// ParseOptions controls optional FBX parse behavior.
type ParseOptions struct {
	// Log receives verbose per-block parse diagnostics at debug level.
	// Nil disables tracing.
	Log *zap.Logger
}

// IsBinaryFBX reports whether data starts with the binary FBX magic header.
// Inputs shorter than the header are classified as not binary; the ASCII
// parser rejects them on its own.
func IsBinaryFBX(data []byte) bool {
	if len(data) < len(binaryFBXMagic) {
		return false
	}
	return bytes.Equal(data[:len(binaryFBXMagic)], binaryFBXMagic)
}

// ParseFBX parses ASCII FBX data into its flat geometry arrays.
// Binary FBX input yields ErrBinaryFBX. A document without a vertex
// position array or a polygon index array yields ErrMissingGeometry;
// missing normal/UV layers are tolerated.
func ParseFBX(data []byte) (*FBX, error) {
	return ParseFBXWithOptions(data, ParseOptions{})
}

// ParseFBXFile parses an ASCII FBX file from disk.
func ParseFBXFile(path string) (*FBX, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading FBX file: %w", err)
	}
	return ParseFBX(data)
}

// captureTarget names the array a matched block marker is waiting to fill.
type captureTarget int

const (
	captureNone captureTarget = iota
	capturePositions
	captureIndices
	captureNormals
	captureUVs
)

// foundSet records which arrays have been captured. The first occurrence of
// each marker wins; later occurrences are ignored.
type foundSet struct {
	positions bool
	indices   bool
	normals   bool
	uvs       bool
}

// ParseFBXWithOptions parses ASCII FBX data with explicit options.
func ParseFBXWithOptions(data []byte, opts ParseOptions) (*FBX, error) {
	if IsBinaryFBX(data) {
		return nil, ErrBinaryFBX
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	toks := lexFBX(string(data))
	log.Debug("lexed FBX document", zap.Int("bytes", len(data)), zap.Int("tokens", len(toks)))

	doc := &FBX{}
	var found foundSet
	var blocks []string // open block name stack
	pending := captureNone
	nodeName := "" // name of the most recent "Name:" node at this point

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.kind {
		case tokOpenBrace:
			blocks = append(blocks, nodeName)
		case tokCloseBrace:
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
		case tokIdent:
			if i+1 >= len(toks) || toks[i+1].kind != tokColon {
				continue
			}
			nodeName = t.text
			switch t.text {
			case "a":
				if pending == captureNone {
					continue
				}
				i = captureArray(doc, toks, i+2, pending, log)
				// An empty run does not count as populated; a later
				// marker may still fill the array.
				markFound(doc, &found, pending)
				pending = captureNone
			case "Vertices":
				if !found.positions {
					log.Debug("found vertex position block", zap.Int("line", t.line))
					pending = capturePositions
				}
			case "PolygonVertexIndex":
				if !found.indices {
					log.Debug("found polygon index block", zap.Int("line", t.line))
					pending = captureIndices
				}
			case "Normals":
				if !found.normals && inBlock(blocks, "LayerElementNormal") {
					log.Debug("found normal layer array", zap.Int("line", t.line))
					pending = captureNormals
				}
			case "UV":
				if !found.uvs && inBlock(blocks, "LayerElementUV") {
					log.Debug("found UV layer array", zap.Int("line", t.line))
					pending = captureUVs
				}
			}
		}
	}

	log.Debug("FBX scan complete",
		zap.Int("positions", len(doc.Positions)),
		zap.Int("polygonIndices", len(doc.PolygonIndices)),
		zap.Int("normals", len(doc.Normals)),
		zap.Int("uvs", len(doc.UVs)))

	if len(doc.Positions) == 0 || len(doc.PolygonIndices) == 0 {
		return nil, ErrMissingGeometry
	}
	return doc, nil
}

// captureArray fills the pending target from the numeric run starting at
// token index start and returns the index of the last consumed token.
func captureArray(doc *FBX, toks []fbxToken, start int, target captureTarget, log *zap.Logger) int {
	switch target {
	case capturePositions:
		doc.Positions, start = scanFloatRun(toks, start)
		log.Debug("captured position array", zap.Int("values", len(doc.Positions)))
	case captureIndices:
		doc.PolygonIndices, start = scanIntRun(toks, start)
		log.Debug("captured polygon index array", zap.Int("values", len(doc.PolygonIndices)))
	case captureNormals:
		doc.Normals, start = scanFloatRun(toks, start)
		log.Debug("captured normal array", zap.Int("values", len(doc.Normals)))
	case captureUVs:
		doc.UVs, start = scanFloatRun(toks, start)
		log.Debug("captured UV array", zap.Int("values", len(doc.UVs)))
	}
	return start - 1
}

func markFound(doc *FBX, found *foundSet, target captureTarget) {
	switch target {
	case capturePositions:
		found.positions = len(doc.Positions) > 0
	case captureIndices:
		found.indices = len(doc.PolygonIndices) > 0
	case captureNormals:
		found.normals = len(doc.Normals) > 0
	case captureUVs:
		found.uvs = len(doc.UVs) > 0
	}
}

// inBlock reports whether name is one of the currently open blocks.
func inBlock(blocks []string, name string) bool {
	for _, b := range blocks {
		if b == name {
			return true
		}
	}
	return false
}

// scanFloatRun reads the comma-separated run of float literals starting at
// token index start. The run ends at the first token that is not a float
// literal, which also covers a missing array close brace. A count pass
// sizes the result exactly before the fill pass; both apply the same
// acceptance rule.
func scanFloatRun(toks []fbxToken, start int) ([]float32, int) {
	end := start
	count := 0
	for end < len(toks) {
		t := toks[end]
		if t.kind == tokComma {
			end++
			continue
		}
		if t.kind != tokNumber {
			break
		}
		count++
		end++
	}
	if count == 0 {
		return nil, end
	}

	out := make([]float32, 0, count)
	for k := start; k < end; k++ {
		if toks[k].kind != tokNumber {
			continue
		}
		v, err := strconv.ParseFloat(toks[k].text, 64)
		if err != nil {
			break
		}
		out = append(out, float32(v))
	}
	return out, end
}

// scanIntRun is scanFloatRun for signed integer literals. A float literal
// in the run ends it, matching the integer acceptance rule used to count.
func scanIntRun(toks []fbxToken, start int) ([]int32, int) {
	end := start
	count := 0
	for end < len(toks) {
		t := toks[end]
		if t.kind == tokComma {
			end++
			continue
		}
		if t.kind != tokNumber {
			break
		}
		if _, err := strconv.ParseInt(t.text, 10, 32); err != nil {
			break
		}
		count++
		end++
	}
	if count == 0 {
		return nil, end
	}

	out := make([]int32, 0, count)
	for k := start; k < end; k++ {
		if toks[k].kind != tokNumber {
			continue
		}
		v, err := strconv.ParseInt(toks[k].text, 10, 32)
		if err != nil {
			break
		}
		out = append(out, int32(v))
	}
	return out, end
}
