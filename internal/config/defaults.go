package config

// DefaultConfiguration returns the configuration used when no .glitterrc
// exists at the default location: no overrides, no custom tasks, and the
// default commit message template. The marker distinguishes it from a real
// document so callers can say "running on defaults" in diagnostics.
func DefaultConfiguration() *GlitterRc {
	return &GlitterRc{Default: true}
}
