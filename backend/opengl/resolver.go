package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fontdemo"
)

// GLFWResolver looks entry points up through the driver, using the
// context current on the calling thread.
type GLFWResolver struct{}

// ProcAddress implements fontdemo.ProcResolver.
func (GLFWResolver) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// Init loads the go-gl bindings from table. The context the table was
// resolved against must be current.
func Init(table *fontdemo.FunctionTable) error {
	if err := gl.InitWithProcAddrFunc(table.ProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// ResolveAndInit resolves the pipeline's entry points with r and loads the
// bindings from the result.
func ResolveAndInit(r fontdemo.ProcResolver) (*fontdemo.FunctionTable, error) {
	table, err := fontdemo.Resolve(r, fontdemo.RequiredEntryPoints, fontdemo.ReservedEntryPoints)
	if err != nil {
		return nil, err
	}
	if err := Init(table); err != nil {
		return nil, err
	}
	return table, nil
}
