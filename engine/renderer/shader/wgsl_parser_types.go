package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo pairs a vertex format with its byte size for offset calculation.
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout is the byte size and alignment of a WGSL type in a host-shareable buffer.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is one member of a WGSL struct.
type parsedField struct {
	name      string
	typeName  string
	location  int // -1 without @location
	isBuiltin bool
}

// parsedStruct is a WGSL struct block.
type parsedStruct struct {
	name   string
	fields []parsedField
}
