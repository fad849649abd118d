//go:build !((darwin || freebsd || linux) && !android)

package opengl

import "github.com/go-theft-auto/fontdemo"

// DefaultResolver uses the driver's lookup.
func DefaultResolver() fontdemo.ProcResolver {
	return GLFWResolver{}
}
