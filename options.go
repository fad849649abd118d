package fontdemo

import "log/slog"

// Build-time defaults.
const (
	DefaultWidth       = 1366
	DefaultHeight      = 768
	DefaultFrameRate   = 60
	DefaultTextureUnit = 0
)

// Config holds the fixed parameters of a run.
type Config struct {
	Viewport         Viewport
	FrameRate        int
	TextureUnit      uint32
	Names            UniformNames
	RequiredUniforms []string
	ExitPolicy       ExitPolicy
	Logger           *slog.Logger
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the build defaults.
func DefaultConfig() Config {
	return Config{
		Viewport:    Viewport{Width: DefaultWidth, Height: DefaultHeight},
		FrameRate:   DefaultFrameRate,
		TextureUnit: DefaultTextureUnit,
		Names:       DefaultUniformNames(),
		ExitPolicy:  ExitOnEscape,
		Logger:      slog.Default(),
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Names = cfg.Names.WithDefaults()
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	return cfg
}

// WithViewport sets the drawable size.
func WithViewport(width, height int) Option {
	return func(c *Config) { c.Viewport = Viewport{Width: width, Height: height} }
}

// WithFrameRate sets the target tick rate in Hz.
func WithFrameRate(rate int) Option {
	return func(c *Config) { c.FrameRate = rate }
}

// WithTextureUnit sets the texture unit the atlas is bound to.
func WithTextureUnit(unit uint32) Option {
	return func(c *Config) { c.TextureUnit = unit }
}

// WithUniformNames sets the shader parameter names. Empty fields keep the defaults.
func WithUniformNames(names UniformNames) Option {
	return func(c *Config) { c.Names = names }
}

// WithRequiredUniforms lists uniform names whose absence aborts setup.
func WithRequiredUniforms(names ...string) Option {
	return func(c *Config) { c.RequiredUniforms = append(c.RequiredUniforms, names...) }
}

// WithExitPolicy sets which key presses end the run.
func WithExitPolicy(p ExitPolicy) Option {
	return func(c *Config) { c.ExitPolicy = p }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
