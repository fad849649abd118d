package fontdemo

import (
	"errors"
	"fmt"
)

// ErrStaleUniforms is returned by a draw whose uniform table was not pushed
// for the current tick.
var ErrStaleUniforms = errors.New("uniforms not pushed for this tick")

// ErrSchedulerState is returned when Run is called on a scheduler that is not idle.
var ErrSchedulerState = errors.New("scheduler is not idle")

// ResolutionError reports a required GPU entry point the driver did not provide.
type ResolutionError struct {
	Symbol string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unresolved GPU entry point %q", e.Symbol)
}

// CompileError carries the driver's diagnostic for a failed shader compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError carries the driver's diagnostic for a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// TextureUploadError reports an atlas the device cannot accept.
type TextureUploadError struct {
	Width, Height int
	Max           int
	Reason        string
}

func (e *TextureUploadError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("atlas %dx%d rejected (max %d): %s", e.Width, e.Height, e.Max, e.Reason)
	}
	return fmt.Sprintf("atlas %dx%d rejected: %s", e.Width, e.Height, e.Reason)
}

// BindingError reports a required uniform missing from the linked program.
type BindingError struct {
	Name string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("required uniform %q not found in program", e.Name)
}
