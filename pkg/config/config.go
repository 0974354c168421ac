// Package config reads defaults from a TOML file. Everything in the
// file can be overridden on the command line. A file might look like
//
//	# labogrid defaults
//	scale = 2.5
//	log = "labogrid.log"
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml"
)

const DfltScale = 2.0

// Config holds the values that can come from a file
type Config struct {
	Scale float64 // scale factor for box size
	Log   string  // where debugging output goes
}

// Default is what you get with no config file
func Default() Config { return Config{Scale: DfltScale} }

// Error says which key in which file was wrong
type Error struct {
	Path string
	Key  string
	Msg  string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return e.Path + ": " + e.Msg
	}
	return e.Path + ": " + e.Key + ": " + e.Msg
}

var known = map[string]bool{"scale": true, "log": true}

// Parse reads the contents of a config file on top of the defaults.
// path is only used in messages.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return cfg, &Error{Path: path, Msg: err.Error()}
	}
	for _, k := range tree.Keys() {
		if !known[k] {
			return cfg, &Error{Path: path, Key: k, Msg: "unknown key"}
		}
	}
	if v := tree.Get("scale"); v != nil {
		switch x := v.(type) { // toml keeps 2 and 2.0 apart
		case int64:
			cfg.Scale = float64(x)
		case float64:
			cfg.Scale = x
		default:
			return cfg, &Error{Path: path, Key: "scale", Msg: fmt.Sprintf("want a number, got %v", v)}
		}
		if !(cfg.Scale > 0) || math.IsInf(cfg.Scale, 1) {
			return cfg, &Error{Path: path, Key: "scale", Msg: "must be above zero"}
		}
	}
	if v := tree.Get("log"); v != nil {
		s, ok := v.(string)
		if !ok {
			return cfg, &Error{Path: path, Key: "log", Msg: fmt.Sprintf("want a string, got %v", v)}
		}
		cfg.Log = s
	}
	return cfg, nil
}

// Load reads a config file. An empty path gives the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), &Error{Path: path, Msg: err.Error()}
	}
	return Parse(path, data)
}
