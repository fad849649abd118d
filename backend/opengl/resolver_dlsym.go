//go:build (darwin || freebsd || linux) && !android

package opengl

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/go-theft-auto/fontdemo"
)

// DlsymResolver looks entry points up in the system GL library.
type DlsymResolver struct {
	handle uintptr
	path   string
}

func libraryPaths() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	}
	return []string{"libGL.so.1", "libGL.so"}
}

// OpenDlsymResolver opens the first loadable library of paths, or the
// platform's GL library when paths is empty.
func OpenDlsymResolver(paths ...string) (*DlsymResolver, error) {
	if len(paths) == 0 {
		paths = libraryPaths()
	}
	var lastErr error
	for _, p := range paths {
		h, err := purego.Dlopen(p, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			return &DlsymResolver{handle: h, path: p}, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("open GL library: %w", lastErr)
}

// Path returns the library the resolver opened.
func (r *DlsymResolver) Path() string { return r.path }

// ProcAddress implements fontdemo.ProcResolver.
func (r *DlsymResolver) ProcAddress(name string) unsafe.Pointer {
	addr, err := purego.Dlsym(r.handle, name)
	if err != nil || addr == 0 {
		return nil
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

// Close releases the library handle.
func (r *DlsymResolver) Close() error {
	return purego.Dlclose(r.handle)
}

// DefaultResolver looks symbols up in the GL library first and falls back
// to the driver for anything it does not export.
func DefaultResolver() fontdemo.ProcResolver {
	lib, err := OpenDlsymResolver()
	if err != nil {
		return GLFWResolver{}
	}
	return fontdemo.ChainResolver{lib, GLFWResolver{}}
}
