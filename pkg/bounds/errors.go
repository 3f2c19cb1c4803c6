package bounds

import "errors"

var (
	// ErrIndexOutOfRange is returned by indexed vertex access outside [0, VertexCount())
	ErrIndexOutOfRange = errors.New("vertex index out of range")

	// ErrDegeneratePlane is returned when plane inputs do not define a normal
	ErrDegeneratePlane = errors.New("degenerate plane")
)
