package fontdemo

import "unsafe"

// ProcResolver looks up a GPU entry point by name.
// It returns nil when the driver does not provide the symbol.
type ProcResolver interface {
	ProcAddress(name string) unsafe.Pointer
}

// ProcResolverFunc adapts a function to ProcResolver.
type ProcResolverFunc func(name string) unsafe.Pointer

// ProcAddress calls f(name).
func (f ProcResolverFunc) ProcAddress(name string) unsafe.Pointer { return f(name) }

// RequiredEntryPoints are the entry points the pipeline calls through the
// extension mechanism. Any of them missing is fatal.
var RequiredEntryPoints = []string{
	"glCreateShader",
	"glShaderSource",
	"glCompileShader",
	"glGetShaderiv",
	"glGetShaderInfoLog",
	"glCreateProgram",
	"glAttachShader",
	"glLinkProgram",
	"glGetProgramiv",
	"glGetProgramInfoLog",
	"glUseProgram",
	"glGetUniformLocation",
	"glUniform1f",
	"glUniform2f",
	"glUniform1i",
	"glActiveTexture",
	"glGenVertexArrays",
	"glBindVertexArray",
	"glGenBuffers",
	"glBindBuffer",
	"glBufferData",
	"glVertexAttribPointer",
	"glEnableVertexAttribArray",
}

// ReservedEntryPoints are resolved when present but never required.
// They are kept for offscreen targets.
var ReservedEntryPoints = []string{
	"glGenFramebuffers",
	"glBindFramebuffer",
	"glFramebufferTexture2D",
	"glNamedRenderbufferStorage",
}

// FunctionTable maps entry point names to resolved addresses.
// It is populated once by Resolve and never modified afterwards.
type FunctionTable struct {
	procs    map[string]unsafe.Pointer
	fallback ProcResolver
}

// Resolve looks up every required and optional name with r.
// The first required name that resolves to nil yields a *ResolutionError.
func Resolve(r ProcResolver, required, optional []string) (*FunctionTable, error) {
	t := &FunctionTable{
		procs:    make(map[string]unsafe.Pointer, len(required)+len(optional)),
		fallback: r,
	}
	for _, name := range required {
		p := r.ProcAddress(name)
		if p == nil {
			return nil, &ResolutionError{Symbol: name}
		}
		t.procs[name] = p
	}
	for _, name := range optional {
		if p := r.ProcAddress(name); p != nil {
			t.procs[name] = p
		}
	}
	return t, nil
}

// ProcAddress returns the resolved address for name. Names outside the
// table are forwarded to the resolver the table was built from, so the
// table can seed a full binding loader.
func (t *FunctionTable) ProcAddress(name string) unsafe.Pointer {
	if p, ok := t.procs[name]; ok {
		return p
	}
	if t.fallback == nil {
		return nil
	}
	return t.fallback.ProcAddress(name)
}

// Has reports whether name was resolved into the table.
func (t *FunctionTable) Has(name string) bool {
	_, ok := t.procs[name]
	return ok
}

// Len returns the number of resolved entries.
func (t *FunctionTable) Len() int { return len(t.procs) }

// ChainResolver tries each resolver in order and returns the first non-nil address.
type ChainResolver []ProcResolver

// ProcAddress implements ProcResolver.
func (c ChainResolver) ProcAddress(name string) unsafe.Pointer {
	for _, r := range c {
		if r == nil {
			continue
		}
		if p := r.ProcAddress(name); p != nil {
			return p
		}
	}
	return nil
}
