// Package formats provides parsers for 3D asset interchange file formats.
package formats

// Note: FBX ASCII parsing is implemented in fbx.go, with its lexer in lexer.go.
// Note: Binary FBX files are detected and rejected, never decoded.
