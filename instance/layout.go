package instance

import "github.com/gogpu/gputypes"

// Byte strides per instance kind (float32 components, tightly packed).
const (
	fanStride   = fanFloats * 4
	quadStride  = quadFloats * 4
	cubicStride = cubicFloats * 4
)

// FanLayout returns the vertex buffer layout for fan triangle instances:
// anchor, from and to points stepped per instance.
func FanLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: fanStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // anchor
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // from
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // to
		},
	}
}

// QuadraticLayout returns the vertex buffer layout for monotonic quadratic
// instances.
func QuadraticLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: quadStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // start
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // control
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // end
		},
	}
}

// CubicLayout returns the vertex buffer layout shared by convex serpentine
// and convex loop instances; the two kinds differ only in the coverage
// shader bound with them.
func CubicLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: cubicStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // start
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // control 1
			{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // control 2
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 3}, // end
		},
	}
}
