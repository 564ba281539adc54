package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseError reports a .glitterrc document the YAML parser rejected.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing config: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the configuration at path. An empty path means the default
// location: when .glitterrc is missing there, the built-in defaults are
// returned instead of an error, with the default marker set. A path the
// caller asked for explicitly must exist.
func Load(path string) (*GlitterRc, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultRCName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return DefaultConfiguration(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	rc, err := LoadFromBytes(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return rc, nil
}

// LoadFromBytes parses and validates configuration from raw bytes. JSON
// documents parse too since YAML is a superset.
func LoadFromBytes(data []byte) (*GlitterRc, error) {
	var rc GlitterRc
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := validate(&rc); err != nil {
		return nil, err
	}
	return &rc, nil
}
