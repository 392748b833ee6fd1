package zoomer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// optionsFile holds the boolean keys of an options file. max is read from
// the tree directly so both integer and float values are accepted.
type optionsFile struct {
	Disabled bool `toml:"disabled"`
	Debug    bool `toml:"debug"`
}

// LoadOptions reads Options from a TOML file. Keys that are absent keep
// their DefaultOptions value.
//
//	disabled = false
//	max = 5
//	debug = true
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes TOML data into Options on top of DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	var file optionsFile
	if err := tree.Unmarshal(&file); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}

	opts := DefaultOptions()
	opts.Disabled = file.Disabled
	opts.Debug = file.Debug
	switch v := tree.Get("max").(type) {
	case nil:
	case int64:
		opts.Max = float64(v)
	case float64:
		opts.Max = v
	default:
		return Options{}, fmt.Errorf("parse options: max must be a number, got %T", v)
	}
	return opts, nil
}
